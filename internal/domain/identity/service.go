package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/healthassist/healthassist/internal/domain/activity"
	"github.com/healthassist/healthassist/internal/platform/db"
	"github.com/healthassist/healthassist/internal/platform/web"
)

type Service struct {
	users UserRepository
	logs  activity.Repository
	tx    db.TxRunner
}

func NewService(users UserRepository, logs activity.Repository, tx db.TxRunner) *Service {
	return &Service{users: users, logs: logs, tx: tx}
}

// hashPassword is the fixed credential scheme: unsalted SHA-256 hex. Existing
// accounts verify against it, so it must not change.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// normalizeEmail lowercases and trims; all storage and lookups use this form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 0 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

func (s *Service) Signup(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return web.ValidationError("All fields are required")
	}
	email = normalizeEmail(email)
	if !validEmail(email) {
		return web.ValidationError("Invalid email format")
	}
	if len(password) < 6 {
		return web.ValidationError("Password must be at least 6 characters")
	}

	return s.tx(ctx, func(ctx context.Context) error {
		_, err := s.users.GetByEmail(ctx, email)
		switch {
		case err == nil:
			return web.ConflictError("Email already registered")
		case !errors.Is(err, pgx.ErrNoRows):
			return err
		}

		u := &User{
			Name:     strings.TrimSpace(name),
			Email:    email,
			Password: hashPassword(password),
		}
		if err := s.users.Create(ctx, u); err != nil {
			// Concurrent signups can both pass the lookup; the unique
			// index on lower(email) decides the winner.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return web.ConflictError("Email already registered")
			}
			return err
		}

		return s.logs.Append(ctx, email, activity.ActionSignup,
			fmt.Sprintf("New user registered: %s", u.Name))
	})
}

func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, web.ValidationError("Email and password required")
	}
	email = normalizeEmail(email)

	var u *User
	err := s.tx(ctx, func(ctx context.Context) error {
		var err error
		u, err = s.users.GetByEmail(ctx, email)
		if errors.Is(err, pgx.ErrNoRows) {
			return web.NotFoundError("Email not found")
		}
		if err != nil {
			return err
		}
		if u.Password != hashPassword(password) {
			return web.AuthError("Invalid password")
		}
		return s.logs.Append(ctx, email, activity.ActionLogin, "")
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// SaveProfile overwrites name/age/bio wholesale. Absent fields arrive as empty
// strings and clear the stored value.
func (s *Service) SaveProfile(ctx context.Context, email, name, age, bio string) error {
	if email == "" {
		return web.ValidationError("Email required")
	}
	email = normalizeEmail(email)

	return s.tx(ctx, func(ctx context.Context) error {
		n, err := s.users.UpdateProfile(ctx, email, name, age, bio)
		if err != nil {
			return err
		}
		if n == 0 {
			return web.NotFoundError("User not found")
		}
		return s.logs.Append(ctx, email, activity.ActionProfileUpdate, "")
	})
}
