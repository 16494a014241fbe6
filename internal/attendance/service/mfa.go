package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/store"
)

type MFAService struct {
	Store  store.Store
	Issuer string // Issuer name shown in authenticator apps
	QR     *QRService
}

// EnrollTOTP generates a TOTP secret for the admin and returns it with a QR
// code. MFA is not enabled until VerifyTOTP succeeds.
func (s *MFAService) EnrollTOTP(ctx context.Context, adminID int64) (domain.MFAEnrollment, error) {
	admin, err := s.loadAdmin(ctx, adminID)
	if err != nil {
		return domain.MFAEnrollment{}, err
	}
	if admin.MFAEnabled != nil {
		return domain.MFAEnrollment{}, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: admin.Username,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return domain.MFAEnrollment{}, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	// Store the secret (but don't enable MFA yet)
	if err := s.Store.Admins().UpdateMFASecret(ctx, adminID, key.Secret()); err != nil {
		return domain.MFAEnrollment{}, fmt.Errorf("failed to store MFA secret: %w", err)
	}

	qr, err := s.QR.Render(key.URL())
	if err != nil {
		return domain.MFAEnrollment{}, err
	}

	return domain.MFAEnrollment{
		Secret:  key.Secret(),
		URL:     key.URL(),
		QRCode:  qr,
		Issuer:  s.Issuer,
		Account: admin.Username,
	}, nil
}

// VerifyTOTP confirms enrolment with a valid code and enables MFA.
func (s *MFAService) VerifyTOTP(ctx context.Context, adminID int64, code string) error {
	admin, err := s.loadAdmin(ctx, adminID)
	if err != nil {
		return err
	}
	if admin.MFASecret == nil || *admin.MFASecret == "" {
		return ErrMFANotEnrolled
	}
	if admin.MFAEnabled != nil {
		return ErrMFAAlreadyEnabled
	}
	if !totp.Validate(strings.TrimSpace(code), *admin.MFASecret) {
		return ErrInvalidTOTPCode
	}

	if err := s.Store.Admins().EnableMFA(ctx, adminID); err != nil {
		return fmt.Errorf("failed to enable MFA: %w", err)
	}
	return nil
}

// DisableTOTP turns MFA off after a valid code.
func (s *MFAService) DisableTOTP(ctx context.Context, adminID int64, code string) error {
	admin, err := s.loadAdmin(ctx, adminID)
	if err != nil {
		return err
	}
	if admin.MFAEnabled == nil || admin.MFASecret == nil {
		return ErrMFANotEnabled
	}
	if !totp.Validate(strings.TrimSpace(code), *admin.MFASecret) {
		return ErrInvalidTOTPCode
	}

	if err := s.Store.Admins().DisableMFA(ctx, adminID); err != nil {
		return fmt.Errorf("failed to disable MFA: %w", err)
	}
	return nil
}

func (s *MFAService) loadAdmin(ctx context.Context, adminID int64) (domain.Admin, error) {
	admin, err := s.Store.Admins().GetAdminByID(ctx, adminID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Admin{}, ErrAdminNotFound
	}
	if err != nil {
		return domain.Admin{}, fmt.Errorf("failed to load admin: %w", err)
	}
	return admin, nil
}
