package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

func TestMFALifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	adminID := seedAdmin(t, st, "alice")
	svc := &MFAService{Store: st, Issuer: "AttendanceApp", QR: &QRService{Size: 128}}

	require.ErrorIs(t, svc.VerifyTOTP(ctx, adminID, "123456"), ErrMFANotEnrolled)
	require.ErrorIs(t, svc.DisableTOTP(ctx, adminID, "123456"), ErrMFANotEnabled)

	enrollment, err := svc.EnrollTOTP(ctx, adminID)
	require.NoError(t, err)
	require.NotEmpty(t, enrollment.Secret)
	require.True(t, strings.HasPrefix(enrollment.URL, "otpauth://totp/"))
	require.True(t, strings.HasPrefix(enrollment.QRCode, "data:image/png;base64,"))
	require.Equal(t, "alice", enrollment.Account)

	require.ErrorIs(t, svc.VerifyTOTP(ctx, adminID, "not-a-code"), ErrInvalidTOTPCode)

	code, err := totp.GenerateCode(enrollment.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, svc.VerifyTOTP(ctx, adminID, code))

	admin, err := st.Admins().GetAdminByID(ctx, adminID)
	require.NoError(t, err)
	require.NotNil(t, admin.MFAEnabled)

	_, err = svc.EnrollTOTP(ctx, adminID)
	require.ErrorIs(t, err, ErrMFAAlreadyEnabled)

	require.ErrorIs(t, svc.DisableTOTP(ctx, adminID, "000000x"), ErrInvalidTOTPCode)

	code, err = totp.GenerateCode(enrollment.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, svc.DisableTOTP(ctx, adminID, code))

	admin, err = st.Admins().GetAdminByID(ctx, adminID)
	require.NoError(t, err)
	require.Nil(t, admin.MFAEnabled)
	require.Nil(t, admin.MFASecret)
}

func TestMFAUnknownAdmin(t *testing.T) {
	t.Parallel()

	svc := &MFAService{Store: newTestStore(t), Issuer: "AttendanceApp"}
	_, err := svc.EnrollTOTP(context.Background(), 42)
	require.ErrorIs(t, err, ErrAdminNotFound)
}
