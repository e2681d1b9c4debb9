package admin

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

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *repoPG) count(ctx context.Context, query string) (int64, error) {
	var n int64
	err := r.conn(ctx).QueryRow(ctx, query).Scan(&n)
	return n, err
}

func (r *repoPG) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *repoPG) CountAppointments(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM appointments`)
}

func (r *repoPG) CountMedications(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM medications`)
}

func (r *repoPG) TodayActivity(ctx context.Context) ([]ActionCount, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT action, COUNT(*)
		FROM activity_logs
		WHERE timestamp::date = CURRENT_DATE
		GROUP BY action`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []ActionCount{}
	for rows.Next() {
		var ac ActionCount
		if err := rows.Scan(&ac.Action, &ac.Count); err != nil {
			return nil, err
		}
		counts = append(counts, ac)
	}
	return counts, rows.Err()
}

func (r *repoPG) AllAppointments(ctx context.Context, limit, offset int) ([]*AppointmentRow, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT a.id, u.name AS patient_name, u.age, a.doctor, a.date, a.time, a.user_email
		FROM appointments a
		JOIN users u ON a.user_email = u.email
		ORDER BY a.date DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*AppointmentRow{}
	for rows.Next() {
		var row AppointmentRow
		if err := rows.Scan(&row.ID, &row.PatientName, &row.Age, &row.Doctor, &row.Date, &row.Time, &row.UserEmail); err != nil {
			return nil, err
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}

func (r *repoPG) AllMedications(ctx context.Context, limit, offset int) ([]*MedicationRow, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT m.id, u.name AS patient_name, m.name AS med_name,
			m.dosage, m.frequency, m.duration, m.user_email
		FROM medications m
		JOIN users u ON m.user_email = u.email
		ORDER BY m.created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*MedicationRow{}
	for rows.Next() {
		var row MedicationRow
		if err := rows.Scan(&row.ID, &row.PatientName, &row.MedName, &row.Dosage, &row.Frequency, &row.Duration, &row.UserEmail); err != nil {
			return nil, err
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}

func (r *repoPG) AllRecords(ctx context.Context, limit, offset int) ([]*RecordRow, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT h.id, h.user_email, h.blood_group, h.height, h.weight,
			h.emergency_name, h.emergency_relation, h.emergency_phone,
			h.medical_conditions, h.allergies, h.updated_at,
			u.name AS patient_name, u.age
		FROM health_records h
		JOIN users u ON h.user_email = u.email
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*RecordRow{}
	for rows.Next() {
		var row RecordRow
		if err := rows.Scan(&row.ID, &row.UserEmail, &row.BloodGroup, &row.Height, &row.Weight,
			&row.EmergencyName, &row.EmergencyRelation, &row.EmergencyPhone,
			&row.MedicalConditions, &row.Allergies, &row.UpdatedAt,
			&row.PatientName, &row.Age); err != nil {
			return nil, err
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}
