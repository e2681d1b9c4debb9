package admin

import "github.com/healthassist/healthassist/internal/domain/healthrecord"

// Stats is the dashboard summary: table counts plus today's activity log
// grouped by action.
type Stats struct {
	Users         int64         `json:"users"`
	Appointments  int64         `json:"appointments"`
	Medications   int64         `json:"medications"`
	TodayActivity []ActionCount `json:"today_activity"`
}

type ActionCount struct {
	Action string `json:"action"`
	Count  int64  `json:"count"`
}

// AppointmentRow is an appointment joined with its owner for the doctor view.
type AppointmentRow struct {
	ID          int64  `json:"id"`
	PatientName string `json:"patient_name"`
	Age         string `json:"age"`
	Doctor      string `json:"doctor"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	UserEmail   string `json:"user_email"`
}

type MedicationRow struct {
	ID          int64  `json:"id"`
	PatientName string `json:"patient_name"`
	MedName     string `json:"med_name"`
	Dosage      string `json:"dosage"`
	Frequency   string `json:"frequency"`
	Duration    int    `json:"duration"`
	UserEmail   string `json:"user_email"`
}

type RecordRow struct {
	healthrecord.Record
	PatientName string `json:"patient_name"`
	Age         string `json:"age"`
}
