package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/healthassist/healthassist/internal/domain/activity"
	"github.com/healthassist/healthassist/internal/platform/db"
	"github.com/healthassist/healthassist/internal/platform/web"
)

const msgSlotTaken = "This time slot is already booked. Please choose another time."

type Service struct {
	appts AppointmentRepository
	logs  activity.Repository
	tx    db.TxRunner
}

func NewService(appts AppointmentRepository, logs activity.Repository, tx db.TxRunner) *Service {
	return &Service{appts: appts, logs: logs, tx: tx}
}

// Book reserves (doctor, date, time) for the user. The slot is global: no two
// users can hold the same triple. The pre-check gives a friendly error in the
// common case; the unique constraint on the slot settles concurrent bookings.
func (s *Service) Book(ctx context.Context, email, doctor, date, timeOfDay string) error {
	if email == "" || doctor == "" || date == "" || timeOfDay == "" {
		return web.ValidationError("All fields required")
	}
	email = strings.ToLower(email)

	return s.tx(ctx, func(ctx context.Context) error {
		taken, err := s.appts.SlotTaken(ctx, doctor, date, timeOfDay)
		if err != nil {
			return err
		}
		if taken {
			return web.ConflictError(msgSlotTaken)
		}

		a := &Appointment{UserEmail: email, Doctor: doctor, Date: date, Time: timeOfDay}
		if err := s.appts.Create(ctx, a); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return web.ConflictError(msgSlotTaken)
			}
			return err
		}

		return s.logs.Append(ctx, email, activity.ActionAppointmentBooked,
			fmt.Sprintf("%s on %s at %s", doctor, date, timeOfDay))
	})
}

func (s *Service) List(ctx context.Context, email string) ([]*Appointment, error) {
	return s.appts.ListByEmail(ctx, strings.ToLower(email))
}

// Cancel deletes the appointment only when id and owner email both match, so
// one user cannot cancel another's booking by guessing ids.
func (s *Service) Cancel(ctx context.Context, id int64, email string) error {
	email = strings.ToLower(email)

	return s.tx(ctx, func(ctx context.Context) error {
		n, err := s.appts.DeleteOwned(ctx, id, email)
		if err != nil {
			return err
		}
		if n == 0 {
			return web.NotFoundError("Appointment not found")
		}
		return s.logs.Append(ctx, email, activity.ActionAppointmentCancelled,
			fmt.Sprintf("Appointment ID: %d", id))
	})
}

// AdminRemove hard-deletes by id with no ownership check. Completion keeps no
// record; both admin actions end in the same delete.
func (s *Service) AdminRemove(ctx context.Context, id int64) error {
	return s.tx(ctx, func(ctx context.Context) error {
		n, err := s.appts.DeleteByID(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return web.NotFoundError("Appointment not found")
		}
		return nil
	})
}
