package activity

import "time"

// Actions recorded by the services. The log is append-only; rows are never
// updated or deleted and services never read them back.
const (
	ActionSignup               = "signup"
	ActionLogin                = "login"
	ActionProfileUpdate        = "profile_update"
	ActionAppointmentBooked    = "appointment_booked"
	ActionAppointmentCancelled = "appointment_cancelled"
	ActionMedicationAdded      = "medication_added"
)

type Entry struct {
	ID        int64     `json:"id"`
	UserEmail string    `json:"user_email"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
