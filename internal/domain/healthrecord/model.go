package healthrecord

import "time"

// Record is the singleton health sheet for a user. Every field besides the
// owner email is optional and nullable; saving overwrites the whole sheet.
type Record struct {
	ID                int64     `json:"id"`
	UserEmail         string    `json:"user_email"`
	BloodGroup        *string   `json:"blood_group"`
	Height            *float64  `json:"height"`
	Weight            *float64  `json:"weight"`
	EmergencyName     *string   `json:"emergency_name"`
	EmergencyRelation *string   `json:"emergency_relation"`
	EmergencyPhone    *string   `json:"emergency_phone"`
	MedicalConditions *string   `json:"medical_conditions"`
	Allergies         *string   `json:"allergies"`
	UpdatedAt         time.Time `json:"updated_at"`
}
