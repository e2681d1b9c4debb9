package appointment

import "time"

// Appointment is one booked slot. Date and Time are stored as the client sent
// them; listing order is a lexicographic string sort on both, so callers are
// expected to use sortable formats (ISO dates, zero-padded times).
type Appointment struct {
	ID        int64     `json:"id"`
	UserEmail string    `json:"-"`
	Doctor    string    `json:"doctor"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	BookedAt  time.Time `json:"booked_at"`
}
