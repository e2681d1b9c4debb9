package bot

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRespond_KeywordMatch(t *testing.T) {
	e := NewEngine()

	reply := e.Respond("I think I have a fever")
	if !strings.Contains(reply, "For fever") {
		t.Errorf("expected fever reply, got %q", reply)
	}

	reply = e.Respond("my SLEEP has been terrible")
	if !strings.Contains(reply, "For better sleep") {
		t.Errorf("expected sleep reply, got %q", reply)
	}
}

func TestRespond_FirstMatchWins(t *testing.T) {
	e := NewEngine()

	// Both "fever" and "headache" occur; "fever" is registered first.
	reply := e.Respond("I have a fever and a headache")
	if !strings.Contains(reply, "For fever") {
		t.Errorf("expected fever reply to win, got %q", reply)
	}

	// Reversed word order must not change the outcome.
	reply = e.Respond("I have a headache and a fever")
	if !strings.Contains(reply, "For fever") {
		t.Errorf("expected fever reply regardless of word order, got %q", reply)
	}
}

func TestRespond_CaseInsensitive(t *testing.T) {
	e := NewEngine()

	reply := e.Respond("WHAT HELPS AGAINST DIABETES?")
	if !strings.Contains(reply, "diabetes management") {
		t.Errorf("expected diabetes reply, got %q", reply)
	}
}

func TestRespond_MultiWordKeyword(t *testing.T) {
	e := NewEngine()

	reply := e.Respond("how do I lower my blood pressure")
	if !strings.Contains(reply, "For blood pressure") {
		t.Errorf("expected blood pressure reply, got %q", reply)
	}
}

func TestRespond_GreetingFallback(t *testing.T) {
	e := NewEngine()

	for _, q := range []string{"hello there", "hi", "hey you"} {
		reply := e.Respond(q)
		if !strings.Contains(reply, "AI Health Assistant") {
			t.Errorf("Respond(%q): expected greeting, got %q", q, reply)
		}
	}
}

func TestRespond_AppointmentFallback(t *testing.T) {
	e := NewEngine()

	reply := e.Respond("how do I book an appointment?")
	if !strings.Contains(reply, "'Appointments' tab") {
		t.Errorf("expected appointment guidance, got %q", reply)
	}
}

func TestRespond_MedicationFallback(t *testing.T) {
	e := NewEngine()

	reply := e.Respond("where do I track my medication?")
	if !strings.Contains(reply, "'Medications' tab") {
		t.Errorf("expected medication guidance, got %q", reply)
	}

	reply = e.Respond("I lost my medicine")
	if !strings.Contains(reply, "'Medications' tab") {
		t.Errorf("expected medication guidance for 'medicine', got %q", reply)
	}
}

func TestRespond_GenericFallback(t *testing.T) {
	e := NewEngine()

	reply := e.Respond("what is the meaning of life")
	if !strings.Contains(reply, "not sure about that specific question") {
		t.Errorf("expected generic fallback, got %q", reply)
	}
}

func TestRespond_NeverEmpty(t *testing.T) {
	e := NewEngine()

	for _, q := range []string{"", "   ", "xyzzy"} {
		if e.Respond(q) == "" {
			t.Errorf("Respond(%q) returned empty reply", q)
		}
	}
}

func TestRespond_KeywordBeatsGreeting(t *testing.T) {
	e := NewEngine()

	// "hi" appears but so does "cough"; rules outrank fallbacks.
	reply := e.Respond("hi, I have a bad cough")
	if !strings.Contains(reply, "For cough") {
		t.Errorf("expected cough reply over greeting, got %q", reply)
	}
}

func TestRegister_AppendsAfterDefaults(t *testing.T) {
	e := NewEngine()

	if err := e.Register("Insomnia", "custom insomnia advice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reply := e.Respond("chronic insomnia")
	if reply != "custom insomnia advice" {
		t.Errorf("expected custom rule reply, got %q", reply)
	}

	// Default rules still shadow appended ones.
	reply = e.Respond("insomnia from stress")
	if !strings.Contains(reply, "For stress management") {
		t.Errorf("expected stress reply to shadow appended rule, got %q", reply)
	}
}

func TestRegister_Validation(t *testing.T) {
	e := NewEngine()

	if err := e.Register("", "reply"); err == nil {
		t.Error("expected error for empty keyword")
	}
	if err := e.Register("keyword", ""); err == nil {
		t.Error("expected error for empty reply")
	}
}

func TestRules_ReturnsCopyInOrder(t *testing.T) {
	e := NewEngine()

	rules := e.Rules()
	if len(rules) != len(defaultRules) {
		t.Fatalf("expected %d rules, got %d", len(defaultRules), len(rules))
	}
	if rules[0].Keyword != "fever" {
		t.Errorf("expected first rule to be fever, got %q", rules[0].Keyword)
	}

	// Mutating the copy must not affect the engine.
	rules[0].Reply = "tampered"
	if e.Respond("fever") == "tampered" {
		t.Error("Rules() must return a copy")
	}
}

func TestChatHandler_ReturnsReply(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewEngine())

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"question":"I have a fever and a headache"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Chat(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if !strings.Contains(resp.Reply, "For fever") {
		t.Errorf("expected fever reply, got %q", resp.Reply)
	}
}

func TestChatHandler_BadPayload(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewEngine())

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Chat(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Reply != ErrorReply {
		t.Errorf("expected error reply, got %q", resp.Reply)
	}
}

func TestChatHandler_EmptyQuestion(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewEngine())

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Chat(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Reply == "" {
		t.Error("expected a non-empty reply for empty question")
	}
}
