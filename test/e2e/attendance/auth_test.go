//go:build e2e

package attendance_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
	"github.com/stretchr/testify/require"
)

// TestBootstrapAdminSignin verifies the admin seeded from the environment can
// sign in and see its profile.
func TestBootstrapAdminSignin(t *testing.T) {
	baseURL, cleanup := setupAttendanceContainer(t)
	defer cleanup()

	client := signedInAdmin(t, baseURL)

	check, err := client.CheckSession(t.Context())
	require.NoError(t, err)
	require.True(t, check.Authenticated)

	admin, err := client.GetProfile(t.Context())
	require.NoError(t, err)
	require.Equal(t, adminUsername, admin.Username)
	require.Equal(t, check.AdminID, admin.AdminID)
}

// TestAccountLifecycle walks signup, profile edits, password change, logout
// and security question reset.
func TestAccountLifecycle(t *testing.T) {
	baseURL, cleanup := setupAttendanceContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := registerAdmin(t, baseURL, "alice")

	t.Run("duplicate signup fails", func(t *testing.T) {
		_, err := attendancesdk.NewSDKClient(baseURL).SignUp(ctx, attendancesdk.SignupRequest{
			Name:             "Alice Again",
			Email:            "alice@example.com",
			Username:         "alice",
			Password:         "secret1",
			SecurityQuestion: "q",
			SecurityAnswer:   "a",
		})
		assertStatus(t, err, http.StatusBadRequest, "duplicate signup")
	})

	t.Run("update profile", func(t *testing.T) {
		resp, err := client.UpdateProfile(ctx, attendancesdk.UpdateProfileRequest{
			Name:         "Alice Liddell",
			Email:        "alice@example.com",
			Phone:        "555-0101",
			Organization: "Wonderland",
			Username:     "alice",
		})
		require.NoError(t, err)
		require.True(t, resp.Success)
		require.Equal(t, "Wonderland", resp.Admin.Organization)
	})

	t.Run("change password", func(t *testing.T) {
		err := client.ChangePassword(ctx, attendancesdk.ChangePasswordRequest{CurrentPassword: "wrong1", NewPassword: "secret2"})
		assertStatus(t, err, http.StatusUnauthorized, "wrong current password")

		require.NoError(t, client.ChangePassword(ctx, attendancesdk.ChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "secret2"}))
	})

	t.Run("logout", func(t *testing.T) {
		require.NoError(t, client.SignOut(ctx))

		check, err := client.CheckSession(ctx)
		require.NoError(t, err)
		require.False(t, check.Authenticated)

		_, err = client.ListEmployees(ctx)
		assertStatus(t, err, http.StatusUnauthorized, "employees after logout")
	})

	t.Run("reset via security question", func(t *testing.T) {
		anon := attendancesdk.NewSDKClient(baseURL)

		question, err := anon.GetSecurityQuestion(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, "First pet?", question)

		err = anon.ResetPassword(ctx, attendancesdk.ResetPasswordRequest{Username: "alice", SecurityAnswer: "Spot", NewPassword: "secret3"})
		assertStatus(t, err, http.StatusUnauthorized, "wrong answer")

		require.NoError(t, anon.ResetPassword(ctx, attendancesdk.ResetPasswordRequest{Username: "alice", SecurityAnswer: "Rex", NewPassword: "secret3"}))

		err = anon.SignIn(ctx, attendancesdk.SigninRequest{Username: "alice", Password: "secret2"})
		assertStatus(t, err, http.StatusUnauthorized, "old password after reset")
		require.NoError(t, anon.SignIn(ctx, attendancesdk.SigninRequest{Username: "alice", Password: "secret3"}))
	})
}

// TestMFAEnrollmentAndSignin enables TOTP and checks that signin then needs a
// code.
func TestMFAEnrollmentAndSignin(t *testing.T) {
	baseURL, cleanup := setupAttendanceContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := registerAdmin(t, baseURL, "mallory")

	enroll, err := client.EnrollTOTP(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, enroll.Secret)
	require.Contains(t, enroll.QRCode, "data:image/png;base64,")
	require.Equal(t, "mallory", enroll.Account)

	err = client.VerifyTOTP(ctx, "000000")
	assertStatus(t, err, http.StatusUnauthorized, "bad enrollment code")

	code, err := totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, client.VerifyTOTP(ctx, code))

	admin, err := client.GetProfile(ctx)
	require.NoError(t, err)
	require.True(t, admin.MFAEnabled)

	anon := attendancesdk.NewSDKClient(baseURL)
	err = anon.SignIn(ctx, attendancesdk.SigninRequest{Username: "mallory", Password: "secret1"})
	assertStatus(t, err, http.StatusUnauthorized, "signin without code")
	require.Contains(t, err.Error(), "TOTP code required")

	code, err = totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, anon.SignIn(ctx, attendancesdk.SigninRequest{Username: "mallory", Password: "secret1", TOTPCode: code}))

	require.NoError(t, anon.DisableTOTP(ctx, code))
	admin, err = anon.GetProfile(ctx)
	require.NoError(t, err)
	require.False(t, admin.MFAEnabled)
}
