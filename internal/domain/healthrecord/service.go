package healthrecord

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/healthassist/healthassist/internal/platform/db"
	"github.com/healthassist/healthassist/internal/platform/web"
)

type Service struct {
	records RecordRepository
	tx      db.TxRunner
}

func NewService(records RecordRepository, tx db.TxRunner) *Service {
	return &Service{records: records, tx: tx}
}

// Save writes the user's full health sheet. First save inserts, later saves
// overwrite in place; the user never accumulates a second record.
func (s *Service) Save(ctx context.Context, rec *Record) error {
	if rec.UserEmail == "" {
		return web.ValidationError("Email required")
	}
	rec.UserEmail = strings.ToLower(rec.UserEmail)

	return s.tx(ctx, func(ctx context.Context) error {
		return s.records.Upsert(ctx, rec)
	})
}

// Get returns nil with no error when the user has no record yet.
func (s *Service) Get(ctx context.Context, email string) (*Record, error) {
	rec, err := s.records.GetByEmail(ctx, strings.ToLower(email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}
