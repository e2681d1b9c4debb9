package medication

import "context"

type MedicationRepository interface {
	Create(ctx context.Context, m *Medication) error
	// ListByEmail returns the user's reminders, newest first.
	ListByEmail(ctx context.Context, email string) ([]*Medication, error)
	// DeleteOwned removes the row matching both id and owner email and
	// reports how many rows went.
	DeleteOwned(ctx context.Context, id int64, email string) (int64, error)
}
