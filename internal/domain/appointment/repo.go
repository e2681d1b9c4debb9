package appointment

import "context"

type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	// SlotTaken reports whether any user holds (doctor, date, time).
	SlotTaken(ctx context.Context, doctor, date, timeOfDay string) (bool, error)
	// ListByEmail returns the user's appointments ordered by date then time,
	// both descending string order.
	ListByEmail(ctx context.Context, email string) ([]*Appointment, error)
	// DeleteOwned removes the row matching both id and owner email and
	// reports how many rows went.
	DeleteOwned(ctx context.Context, id int64, email string) (int64, error)
	// DeleteByID removes by id alone, regardless of owner.
	DeleteByID(ctx context.Context, id int64) (int64, error)
}
