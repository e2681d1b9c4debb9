package medication

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthassist/healthassist/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type medicationRepoPG struct{ pool *pgxpool.Pool }

func NewMedicationRepoPG(pool *pgxpool.Pool) MedicationRepository {
	return &medicationRepoPG{pool: pool}
}

func (r *medicationRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *medicationRepoPG) Create(ctx context.Context, m *Medication) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medications (user_email, name, dosage, frequency, duration)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		m.UserEmail, m.Name, m.Dosage, m.Frequency, m.Duration).Scan(&m.ID, &m.CreatedAt)
}

func (r *medicationRepoPG) ListByEmail(ctx context.Context, email string) ([]*Medication, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, user_email, name, dosage, frequency, duration, created_at
		FROM medications
		WHERE lower(user_email) = lower($1)
		ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meds := []*Medication{}
	for rows.Next() {
		var m Medication
		if err := rows.Scan(&m.ID, &m.UserEmail, &m.Name, &m.Dosage, &m.Frequency, &m.Duration, &m.CreatedAt); err != nil {
			return nil, err
		}
		meds = append(meds, &m)
	}
	return meds, rows.Err()
}

func (r *medicationRepoPG) DeleteOwned(ctx context.Context, id int64, email string) (int64, error) {
	tag, err := r.conn(ctx).Exec(ctx, `
		DELETE FROM medications
		WHERE id = $1 AND lower(user_email) = lower($2)`, id, email)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
