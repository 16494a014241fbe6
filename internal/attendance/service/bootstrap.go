package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/store"
	"github.com/robera20/employee-attendance-management/pkg/cryptox"
	"github.com/robera20/employee-attendance-management/pkg/slogx"
)

const (
	defaultBootstrapUsername = "admin"
	defaultBootstrapEmail    = "admin@example.com"
)

// BootstrapService seeds the first admin account on an empty database.
type BootstrapService struct {
	Store    store.Store
	Username string
	Email    string
	Password string // no admin is seeded when empty
}

// EnsureAdmin creates the configured admin when no admin exists yet. It
// reports whether an account was created.
func (s *BootstrapService) EnsureAdmin(ctx context.Context) (bool, error) {
	l := slogx.FromContext(ctx)

	// 1. Nothing to seed without a password
	if s.Password == "" {
		return false, nil
	}
	if len(s.Password) < minPasswordLength {
		return false, Validation("bootstrap admin password must be at least 6 characters long")
	}

	// 2. Only seed an empty system
	empty, err := s.Store.Admins().IsEmpty(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check admins: %w", err)
	}
	if !empty {
		l.Debug("admins exist, skipping bootstrap")
		return false, nil
	}

	username := strings.TrimSpace(s.Username)
	if username == "" {
		username = defaultBootstrapUsername
	}
	email := strings.TrimSpace(s.Email)
	if email == "" {
		email = defaultBootstrapEmail
	}

	// 3. Hash password
	hash, err := cryptox.HashPassword(s.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	// 4. Create the admin
	id, err := s.Store.Admins().CreateAdmin(ctx, domain.Admin{
		Name:         "Administrator",
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		// Another instance won the race.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	l.Info("bootstrap admin created",
		slog.Int64("admin_id", id),
		slog.String("username", username),
	)
	return true, nil
}
