package admin

import (
	"context"

	"github.com/healthassist/healthassist/pkg/pagination"
)

// PingFunc checks the store connection for the liveness endpoint.
type PingFunc func(ctx context.Context) error

type Service struct {
	repo Repository
	ping PingFunc
}

func NewService(repo Repository, ping PingFunc) *Service {
	return &Service{repo: repo, ping: ping}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	appts, err := s.repo.CountAppointments(ctx)
	if err != nil {
		return nil, err
	}
	meds, err := s.repo.CountMedications(ctx)
	if err != nil {
		return nil, err
	}
	activity, err := s.repo.TodayActivity(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		Users:         users,
		Appointments:  appts,
		Medications:   meds,
		TodayActivity: activity,
	}, nil
}

func (s *Service) AllAppointments(ctx context.Context, p pagination.Params) ([]*AppointmentRow, error) {
	return s.repo.AllAppointments(ctx, p.Limit, p.Offset)
}

func (s *Service) AllMedications(ctx context.Context, p pagination.Params) ([]*MedicationRow, error) {
	return s.repo.AllMedications(ctx, p.Limit, p.Offset)
}

func (s *Service) AllRecords(ctx context.Context, p pagination.Params) ([]*RecordRow, error) {
	return s.repo.AllRecords(ctx, p.Limit, p.Offset)
}

// Health pings the store and returns the user count on success.
func (s *Service) Health(ctx context.Context) (int64, error) {
	if err := s.ping(ctx); err != nil {
		return 0, err
	}
	return s.repo.CountUsers(ctx)
}
