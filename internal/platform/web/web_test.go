package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func record(t *testing.T, fn func(c echo.Context) error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/signup", nil)
	rec := httptest.NewRecorder()
	if err := fn(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return rec, body
}

func TestSuccess(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Success(c, "Account created successfully! Please login.", nil)
	})
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if body["status"] != "success" || body["msg"] != "Account created successfully! Please login." {
		t.Errorf("unexpected body %v", body)
	}
}

func TestSuccess_ExtraAndEmptyMsg(t *testing.T) {
	_, body := record(t, func(c echo.Context) error {
		return Success(c, "", Envelope{"user": Envelope{"id": 1}})
	})
	if body["status"] != "success" {
		t.Errorf("unexpected status %v", body["status"])
	}
	if _, present := body["msg"]; present {
		t.Error("empty msg should be omitted")
	}
	if _, present := body["user"]; !present {
		t.Error("extra keys missing")
	}
}

func TestFail_ClassifiedError(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Fail(c, ConflictError("Email already registered"))
	})
	if rec.Code != http.StatusOK {
		t.Errorf("classified errors ride HTTP 200, got %d", rec.Code)
	}
	if body["status"] != "error" || body["msg"] != "Email already registered" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestFail_UnclassifiedErrorIsMasked(t *testing.T) {
	_, body := record(t, func(c echo.Context) error {
		return Fail(c, errors.New("pq: connection refused"))
	})
	if body["msg"] != "Server error occurred" {
		t.Errorf("raw store error leaked: %v", body["msg"])
	}
}

func TestFail_WrappedErrorKeepsKind(t *testing.T) {
	wrapped := fmt.Errorf("booking: %w", NotFoundError("Appointment not found"))
	_, body := record(t, func(c echo.Context) error {
		return Fail(c, wrapped)
	})
	if body["msg"] != "Appointment not found" {
		t.Errorf("unexpected msg %v", body["msg"])
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{ValidationError("x"), KindValidation},
		{ConflictError("x"), KindConflict},
		{NotFoundError("x"), KindNotFound},
		{AuthError("x"), KindAuth},
		{InternalError(errors.New("boom")), KindInternal},
		{errors.New("plain"), KindInternal},
		{fmt.Errorf("wrap: %w", AuthError("x")), KindAuth},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.want {
			t.Errorf("KindOf(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := InternalError(cause)
	if !errors.Is(err, cause) {
		t.Error("InternalError should wrap its cause")
	}
	var e *Error
	if !errors.As(err, &e) || e.Msg != "Server error occurred" {
		t.Errorf("unexpected error %v", err)
	}
}
