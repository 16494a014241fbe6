package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/store"
	"github.com/robera20/employee-attendance-management/pkg/cryptox"
	"github.com/robera20/employee-attendance-management/pkg/slogx"
)

const (
	minPasswordLength = 6
	defaultSessionTTL = 24 * time.Hour
)

type AuthService struct {
	Store      store.Store
	SessionTTL time.Duration
	Now        func() time.Time
}

type SignupParams struct {
	Name             string
	Email            string
	Phone            string
	Organization     string
	Username         string
	Password         string
	SecurityQuestion string
	SecurityAnswer   string
}

type ProfileParams struct {
	Name         string
	Email        string
	Phone        string
	Organization string
	Username     string
}

// SessionGrant is what a successful sign-in hands to the transport. Token is
// the raw cookie value; only its fingerprint is stored.
type SessionGrant struct {
	Token     string
	AdminID   int64
	ExpiresAt time.Time
}

func (s *AuthService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Signup registers a new admin. It does not sign the admin in.
func (s *AuthService) Signup(ctx context.Context, p SignupParams) (int64, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Username = strings.TrimSpace(p.Username)
	p.SecurityQuestion = strings.TrimSpace(p.SecurityQuestion)

	if p.Name == "" || p.Email == "" || p.Username == "" || p.Password == "" ||
		p.SecurityQuestion == "" || strings.TrimSpace(p.SecurityAnswer) == "" {
		return 0, Validation("All required fields must be provided")
	}

	if _, err := s.Store.Admins().GetAdminByUsername(ctx, p.Username); err == nil {
		return 0, ErrUsernameInUse
	} else if !errors.Is(err, store.ErrNotFound) {
		return 0, fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := s.Store.Admins().GetAdminByEmail(ctx, p.Email); err == nil {
		return 0, ErrEmailInUse
	} else if !errors.Is(err, store.ErrNotFound) {
		return 0, fmt.Errorf("failed to check email: %w", err)
	}

	passwordHash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}
	answerHash, err := cryptox.HashPassword(normaliseAnswer(p.SecurityAnswer))
	if err != nil {
		return 0, fmt.Errorf("failed to hash security answer: %w", err)
	}

	id, err := s.Store.Admins().CreateAdmin(ctx, domain.Admin{
		Name:               p.Name,
		Email:              p.Email,
		Phone:              strings.TrimSpace(p.Phone),
		Organization:       strings.TrimSpace(p.Organization),
		Username:           p.Username,
		PasswordHash:       passwordHash,
		SecurityQuestion:   p.SecurityQuestion,
		SecurityAnswerHash: answerHash,
		CreatedAt:          s.now(),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return 0, ErrUsernameOrEmailTaken
	}
	if err != nil {
		return 0, fmt.Errorf("failed to create admin: %w", err)
	}

	slogx.FromContext(ctx).Info("admin registered", "admin_id", id, "username", p.Username)
	return id, nil
}

// Signin verifies credentials (and the TOTP code when MFA is enabled) and
// opens a fixed-lifetime session.
func (s *AuthService) Signin(ctx context.Context, username, password, totpCode string) (SessionGrant, error) {
	log := slogx.FromContext(ctx)

	admin, err := s.Store.Admins().GetAdminByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, store.ErrNotFound) {
		return SessionGrant{}, ErrInvalidCredentials
	}
	if err != nil {
		return SessionGrant{}, fmt.Errorf("failed to load admin: %w", err)
	}

	if err := cryptox.VerifyPassword(password, admin.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("stored password hash unusable", "admin_id", admin.ID, "err", err)
		}
		return SessionGrant{}, ErrInvalidCredentials
	}

	if admin.MFAEnabled != nil && admin.MFASecret != nil {
		if strings.TrimSpace(totpCode) == "" {
			return SessionGrant{}, ErrTOTPRequired
		}
		if !totp.Validate(strings.TrimSpace(totpCode), *admin.MFASecret) {
			return SessionGrant{}, ErrInvalidTOTPCode
		}
	}

	if cryptox.NeedsRehash(admin.PasswordHash) {
		if hash, err := cryptox.HashPassword(password); err != nil {
			log.Warn("failed to rehash legacy password", "admin_id", admin.ID, "err", err)
		} else if err := s.Store.Admins().UpdatePasswordHash(ctx, admin.ID, hash); err != nil {
			log.Warn("failed to store rehashed password", "admin_id", admin.ID, "err", err)
		} else {
			log.Info("upgraded legacy password hash", "admin_id", admin.ID)
		}
	}

	token, err := cryptox.GenerateToken(cryptox.SessionTokenSize)
	if err != nil {
		return SessionGrant{}, err
	}

	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	now := s.now()
	grant := SessionGrant{Token: token, AdminID: admin.ID, ExpiresAt: now.Add(ttl)}

	err = s.Store.Sessions().CreateSession(ctx, domain.Session{
		ID:        cryptox.FingerprintToken(token),
		AdminID:   admin.ID,
		ExpiresAt: grant.ExpiresAt,
		CreatedAt: now,
	})
	if err != nil {
		return SessionGrant{}, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info("admin signed in", "admin_id", admin.ID)
	return grant, nil
}

// ResolveSession returns the admin owning a live session token.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrAuthRequired
	}

	sess, err := s.Store.Sessions().GetActiveSession(ctx, cryptox.FingerprintToken(token), s.now())
	if errors.Is(err, store.ErrNotFound) {
		return 0, ErrAuthRequired
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load session: %w", err)
	}
	return sess.AdminID, nil
}

// Logout drops the session if it exists. It never fails for unknown tokens.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.Store.Sessions().DeleteSession(ctx, cryptox.FingerprintToken(token)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *AuthService) GetProfile(ctx context.Context, adminID int64) (domain.Admin, error) {
	admin, err := s.Store.Admins().GetAdminByID(ctx, adminID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Admin{}, ErrAdminNotFound
	}
	if err != nil {
		return domain.Admin{}, fmt.Errorf("failed to load admin: %w", err)
	}
	return admin, nil
}

// UpdateProfile replaces the admin's contact details and returns the result.
func (s *AuthService) UpdateProfile(ctx context.Context, adminID int64, p ProfileParams) (domain.Admin, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Username = strings.TrimSpace(p.Username)

	if p.Name == "" || p.Email == "" || p.Username == "" {
		return domain.Admin{}, Validation("Name, email and username are required")
	}

	if other, err := s.Store.Admins().GetAdminByEmail(ctx, p.Email); err == nil && other.ID != adminID {
		return domain.Admin{}, ErrEmailInUse
	} else if err != nil && !errors.Is(err, store.ErrNotFound) {
		return domain.Admin{}, fmt.Errorf("failed to check email: %w", err)
	}
	if other, err := s.Store.Admins().GetAdminByUsername(ctx, p.Username); err == nil && other.ID != adminID {
		return domain.Admin{}, ErrUsernameInUse
	} else if err != nil && !errors.Is(err, store.ErrNotFound) {
		return domain.Admin{}, fmt.Errorf("failed to check username: %w", err)
	}

	err := s.Store.Admins().UpdateProfile(ctx, domain.Admin{
		ID:           adminID,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        strings.TrimSpace(p.Phone),
		Organization: strings.TrimSpace(p.Organization),
		Username:     p.Username,
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.Admin{}, ErrAdminNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.Admin{}, ErrUsernameOrEmailTaken
	case err != nil:
		return domain.Admin{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.GetProfile(ctx, adminID)
}

func (s *AuthService) ChangePassword(ctx context.Context, adminID int64, current, next string) error {
	if current == "" || next == "" {
		return Validation("Current password and new password are required")
	}
	if len(next) < minPasswordLength {
		return Validation("New password must be at least 6 characters long")
	}

	admin, err := s.GetProfile(ctx, adminID)
	if err != nil {
		return err
	}
	if err := cryptox.VerifyPassword(current, admin.PasswordHash); err != nil {
		return ErrCurrentPasswordIncorrect
	}

	hash, err := cryptox.HashPassword(next)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Store.Admins().UpdatePasswordHash(ctx, adminID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// SecurityQuestion returns the recovery question for username.
func (s *AuthService) SecurityQuestion(ctx context.Context, username string) (string, error) {
	admin, err := s.Store.Admins().GetAdminByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrAdminNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load admin: %w", err)
	}
	if admin.SecurityQuestion == "" {
		return "", ErrAdminNotFound
	}
	return admin.SecurityQuestion, nil
}

// ResetPassword sets a new password after checking the security answer and
// signs the admin out of every session.
func (s *AuthService) ResetPassword(ctx context.Context, username, answer, newPassword string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(answer) == "" || newPassword == "" {
		return Validation("Username, security answer and new password are required")
	}
	if len(newPassword) < minPasswordLength {
		return Validation("New password must be at least 6 characters long")
	}

	admin, err := s.Store.Admins().GetAdminByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("failed to load admin: %w", err)
	}
	if admin.SecurityAnswerHash == "" {
		return ErrInvalidCredentials
	}
	if err := cryptox.VerifyPassword(normaliseAnswer(answer), admin.SecurityAnswerHash); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Admins().UpdatePasswordHash(ctx, admin.ID, hash); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		if err := tx.Sessions().DeleteAdminSessions(ctx, admin.ID); err != nil {
			return fmt.Errorf("failed to revoke sessions: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("password reset via security question", "admin_id", admin.ID)
	return nil
}

// normaliseAnswer makes security answers case and whitespace insensitive.
func normaliseAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
