package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler(repo *mockRepo, ping PingFunc) (*Handler, *echo.Echo) {
	return NewHandler(NewService(repo, ping)), echo.New()
}

func doRequest(e *echo.Echo, method, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Stats(t *testing.T) {
	repo := &mockRepo{users: 2, appts: 3, meds: 4, activity: []ActionCount{{Action: "login", Count: 9}}}
	h, e := newTestHandler(repo, okPing)

	c, rec := doRequest(e, http.MethodGet, "/admin/stats")
	if err := h.Stats(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["users"] != float64(2) || resp["appointments"] != float64(3) || resp["medications"] != float64(4) {
		t.Errorf("unexpected counts %v", resp)
	}
	acts, ok := resp["today_activity"].([]interface{})
	if !ok || len(acts) != 1 {
		t.Fatalf("unexpected today_activity %v", resp["today_activity"])
	}
}

func TestHandler_Stats_StoreFailure(t *testing.T) {
	h, e := newTestHandler(&mockRepo{failAll: true}, okPing)

	c, rec := doRequest(e, http.MethodGet, "/admin/stats")
	if err := h.Stats(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("stats failures ride HTTP 200, got %d", rec.Code)
	}
	var resp map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "Failed to fetch statistics" {
		t.Errorf("unexpected body %v", resp)
	}
}

func TestHandler_AllAppointments(t *testing.T) {
	repo := &mockRepo{apptRows: []*AppointmentRow{
		{ID: 1, PatientName: "Alice", Age: "30", Doctor: "Dr. Rao", Date: "2026-09-01", Time: "10:00", UserEmail: "alice@x.com"},
	}}
	h, e := newTestHandler(repo, okPing)

	c, rec := doRequest(e, http.MethodPost, "/admin/all_appointments")
	if err := h.AllAppointments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rows []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("expected bare array, got %s", rec.Body.String())
	}
	if len(rows) != 1 || rows[0]["patient_name"] != "Alice" || rows[0]["user_email"] != "alice@x.com" {
		t.Errorf("unexpected rows %v", rows)
	}
}

func TestHandler_AllMedications(t *testing.T) {
	repo := &mockRepo{medRows: []*MedicationRow{
		{ID: 1, PatientName: "Alice", MedName: "Paracetamol", Dosage: "500mg", Frequency: "daily", Duration: 7, UserEmail: "alice@x.com"},
	}}
	h, e := newTestHandler(repo, okPing)

	c, rec := doRequest(e, http.MethodPost, "/admin/all_medications")
	if err := h.AllMedications(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rows []map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &rows)
	if len(rows) != 1 || rows[0]["med_name"] != "Paracetamol" {
		t.Errorf("unexpected rows %v", rows)
	}
}

func TestHandler_Views_EmptyOnFailure(t *testing.T) {
	h, e := newTestHandler(&mockRepo{failAll: true}, okPing)

	handlers := map[string]echo.HandlerFunc{
		"/admin/all_appointments": h.AllAppointments,
		"/admin/all_medications":  h.AllMedications,
		"/admin/all_records":      h.AllRecords,
	}
	for path, handler := range handlers {
		c, rec := doRequest(e, http.MethodPost, path)
		if err := handler(c); err != nil {
			t.Fatalf("%s: unexpected error: %v", path, err)
		}
		if strings.TrimSpace(rec.Body.String()) != "[]" {
			t.Errorf("%s: expected empty array, got %s", path, rec.Body.String())
		}
	}
}

func TestHandler_Health(t *testing.T) {
	h, e := newTestHandler(&mockRepo{users: 42}, okPing)

	c, rec := doRequest(e, http.MethodGet, "/health")
	if err := h.Health(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["status"] != "healthy" || resp["database"] != "connected" || resp["users"] != float64(42) {
		t.Errorf("unexpected body %v", resp)
	}
	if resp["message"] != "Health Assistant API is running" {
		t.Errorf("unexpected message %v", resp["message"])
	}
	if _, ok := resp["timestamp"]; !ok {
		t.Error("missing timestamp")
	}
}

func TestHandler_Health_StoreDown(t *testing.T) {
	h, e := newTestHandler(&mockRepo{}, func(_ context.Context) error {
		return errStore
	})

	c, rec := doRequest(e, http.MethodGet, "/health")
	if err := h.Health(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when the store is down, got %d", rec.Code)
	}
	var resp map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["status"] != "unhealthy" {
		t.Errorf("unexpected body %v", resp)
	}
	if resp["message"] != errStore.Error() {
		t.Errorf("unexpected message %v", resp["message"])
	}
}
