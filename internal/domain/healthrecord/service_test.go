package healthrecord

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/healthassist/healthassist/internal/platform/web"
)

// -- Mock Record Repository --

type mockRecordRepo struct {
	records map[string]*Record // keyed by lowercased email
	nextID  int64
}

func newMockRecordRepo() *mockRecordRepo {
	return &mockRecordRepo{records: make(map[string]*Record)}
}

func (m *mockRecordRepo) Upsert(_ context.Context, r *Record) error {
	key := strings.ToLower(r.UserEmail)
	if existing, ok := m.records[key]; ok {
		r.ID = existing.ID
	} else {
		m.nextID++
		r.ID = m.nextID
	}
	r.UpdatedAt = time.Now()
	m.records[key] = r
	return nil
}

func (m *mockRecordRepo) GetByEmail(_ context.Context, email string) (*Record, error) {
	r, ok := m.records[strings.ToLower(email)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return r, nil
}

func passthroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func newTestService() (*Service, *mockRecordRepo) {
	repo := newMockRecordRepo()
	return NewService(repo, passthroughTx), repo
}

func TestSave_InsertThenUpdate(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	first := &Record{
		UserEmail:  "Alice@X.com",
		BloodGroup: strPtr("O+"),
		Height:     floatPtr(170),
	}
	if err := svc.Save(ctx, first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := &Record{
		UserEmail:  "alice@x.com",
		BloodGroup: strPtr("A+"),
		Weight:     floatPtr(65),
	}
	if err := svc.Save(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	if len(repo.records) != 1 {
		t.Fatalf("expected a single record, got %d", len(repo.records))
	}
	stored := repo.records["alice@x.com"]
	if stored.ID != first.ID {
		t.Error("second save should keep the original row id")
	}
	if stored.BloodGroup == nil || *stored.BloodGroup != "A+" {
		t.Error("second save should win")
	}
	// Overwrite, not patch: height was absent the second time.
	if stored.Height != nil {
		t.Error("fields absent from the second save should be cleared")
	}
	if stored.Weight == nil || *stored.Weight != 65 {
		t.Error("weight from second save missing")
	}
}

func TestSave_MissingEmail(t *testing.T) {
	svc, _ := newTestService()
	err := svc.Save(context.Background(), &Record{})
	if web.KindOf(err) != web.KindValidation {
		t.Fatalf("expected validation, got %v", err)
	}
	if err.Error() != "Email required" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestGet(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	rec, err := svc.Get(ctx, "nobody@x.com")
	if err != nil {
		t.Fatalf("missing record should not error: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record for unknown user")
	}

	if err := svc.Save(ctx, &Record{UserEmail: "a@x.com", BloodGroup: strPtr("B+")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	rec, err = svc.Get(ctx, "A@X.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil || rec.BloodGroup == nil || *rec.BloodGroup != "B+" {
		t.Errorf("unexpected record %+v", rec)
	}
}
