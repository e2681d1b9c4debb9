package activity

import "context"

// Repository appends audit rows. Writes join the caller's transaction so a
// rolled-back mutation never leaves a stray log entry.
type Repository interface {
	Append(ctx context.Context, email, action, details string) error
}
