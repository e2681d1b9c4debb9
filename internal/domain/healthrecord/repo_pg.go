package healthrecord

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

type recordRepoPG struct{ pool *pgxpool.Pool }

func NewRecordRepoPG(pool *pgxpool.Pool) RecordRepository {
	return &recordRepoPG{pool: pool}
}

func (r *recordRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const recordCols = `id, user_email, blood_group, height, weight,
	emergency_name, emergency_relation, emergency_phone,
	medical_conditions, allergies, updated_at`

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.UserEmail, &rec.BloodGroup, &rec.Height, &rec.Weight,
		&rec.EmergencyName, &rec.EmergencyRelation, &rec.EmergencyPhone,
		&rec.MedicalConditions, &rec.Allergies, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recordRepoPG) Upsert(ctx context.Context, rec *Record) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO health_records (user_email, blood_group, height, weight,
			emergency_name, emergency_relation, emergency_phone,
			medical_conditions, allergies)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_email) DO UPDATE SET
			blood_group = EXCLUDED.blood_group,
			height = EXCLUDED.height,
			weight = EXCLUDED.weight,
			emergency_name = EXCLUDED.emergency_name,
			emergency_relation = EXCLUDED.emergency_relation,
			emergency_phone = EXCLUDED.emergency_phone,
			medical_conditions = EXCLUDED.medical_conditions,
			allergies = EXCLUDED.allergies,
			updated_at = NOW()
		RETURNING id, updated_at`,
		rec.UserEmail, rec.BloodGroup, rec.Height, rec.Weight,
		rec.EmergencyName, rec.EmergencyRelation, rec.EmergencyPhone,
		rec.MedicalConditions, rec.Allergies).Scan(&rec.ID, &rec.UpdatedAt)
}

func (r *recordRepoPG) GetByEmail(ctx context.Context, email string) (*Record, error) {
	row := r.conn(ctx).QueryRow(ctx, `
		SELECT `+recordCols+`
		FROM health_records
		WHERE lower(user_email) = lower($1)`, email)
	return scanRecord(row)
}
