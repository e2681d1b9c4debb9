package identity

import "context"

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	// GetByEmail looks up by case-insensitive email. Returns pgx.ErrNoRows
	// when no account exists.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// UpdateProfile overwrites name/age/bio for the account and reports how
	// many rows matched.
	UpdateProfile(ctx context.Context, email, name, age, bio string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
