package medication

import (
	"context"
	"fmt"
	"strings"

	"github.com/healthassist/healthassist/internal/domain/activity"
	"github.com/healthassist/healthassist/internal/platform/db"
	"github.com/healthassist/healthassist/internal/platform/web"
)

type Service struct {
	meds MedicationRepository
	logs activity.Repository
	tx   db.TxRunner
}

func NewService(meds MedicationRepository, logs activity.Repository, tx db.TxRunner) *Service {
	return &Service{meds: meds, logs: logs, tx: tx}
}

func (s *Service) Add(ctx context.Context, email, name, dosage, frequency string, duration int) error {
	if email == "" || name == "" || dosage == "" || frequency == "" || duration == 0 {
		return web.ValidationError("All fields required")
	}
	email = strings.ToLower(email)

	return s.tx(ctx, func(ctx context.Context) error {
		m := &Medication{
			UserEmail: email,
			Name:      name,
			Dosage:    dosage,
			Frequency: frequency,
			Duration:  duration,
		}
		if err := s.meds.Create(ctx, m); err != nil {
			return err
		}
		return s.logs.Append(ctx, email, activity.ActionMedicationAdded,
			fmt.Sprintf("%s - %s", name, dosage))
	})
}

func (s *Service) List(ctx context.Context, email string) ([]*Medication, error) {
	return s.meds.ListByEmail(ctx, strings.ToLower(email))
}

func (s *Service) Delete(ctx context.Context, id int64, email string) error {
	email = strings.ToLower(email)

	return s.tx(ctx, func(ctx context.Context) error {
		n, err := s.meds.DeleteOwned(ctx, id, email)
		if err != nil {
			return err
		}
		if n == 0 {
			return web.NotFoundError("Medication not found")
		}
		return nil
	})
}
