package appointment

import (
	"context"
	"errors"

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

type appointmentRepoPG struct{ pool *pgxpool.Pool }

func NewAppointmentRepoPG(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepoPG{pool: pool}
}

func (r *appointmentRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *appointmentRepoPG) Create(ctx context.Context, a *Appointment) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO appointments (user_email, doctor, date, time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, booked_at`,
		a.UserEmail, a.Doctor, a.Date, a.Time).Scan(&a.ID, &a.BookedAt)
}

func (r *appointmentRepoPG) SlotTaken(ctx context.Context, doctor, date, timeOfDay string) (bool, error) {
	var id int64
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id FROM appointments
		WHERE doctor = $1 AND date = $2 AND time = $3`,
		doctor, date, timeOfDay).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *appointmentRepoPG) ListByEmail(ctx context.Context, email string) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, user_email, doctor, date, time, booked_at
		FROM appointments
		WHERE lower(user_email) = lower($1)
		ORDER BY date DESC, time DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appts := []*Appointment{}
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.UserEmail, &a.Doctor, &a.Date, &a.Time, &a.BookedAt); err != nil {
			return nil, err
		}
		appts = append(appts, &a)
	}
	return appts, rows.Err()
}

func (r *appointmentRepoPG) DeleteOwned(ctx context.Context, id int64, email string) (int64, error) {
	tag, err := r.conn(ctx).Exec(ctx, `
		DELETE FROM appointments
		WHERE id = $1 AND lower(user_email) = lower($2)`, id, email)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *appointmentRepoPG) DeleteByID(ctx context.Context, id int64) (int64, error) {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
