package healthrecord

import "context"

type RecordRepository interface {
	// Upsert inserts the user's record or overwrites the existing one,
	// refreshing updated_at. The unique key on user_email keeps the row
	// singular.
	Upsert(ctx context.Context, r *Record) error
	// GetByEmail returns pgx.ErrNoRows when the user has no record yet.
	GetByEmail(ctx context.Context, email string) (*Record, error)
}
