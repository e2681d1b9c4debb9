package medication

import "time"

// Medication is a reminder row. Duration is in days. There is no update
// operation; reminders are added and deleted whole.
type Medication struct {
	ID        int64     `json:"id"`
	UserEmail string    `json:"-"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency string    `json:"frequency"`
	Duration  int       `json:"duration"`
	CreatedAt time.Time `json:"created_at"`
}
