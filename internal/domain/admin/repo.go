package admin

import "context"

// Repository serves the read-only aggregation views. No admin endpoint
// writes through it.
type Repository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountAppointments(ctx context.Context) (int64, error)
	CountMedications(ctx context.Context) (int64, error)
	// TodayActivity groups today's activity log rows by action.
	TodayActivity(ctx context.Context) ([]ActionCount, error)
	AllAppointments(ctx context.Context, limit, offset int) ([]*AppointmentRow, error)
	AllMedications(ctx context.Context, limit, offset int) ([]*MedicationRow, error)
	AllRecords(ctx context.Context, limit, offset int) ([]*RecordRow, error)
}
