//go:build e2e

package attendance_test

import (
	"net/http"
	"testing"

	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitSigninEndpoint verifies /auth/signin allows five attempts per
// minute for one username and rejects the sixth.
func TestRateLimitSigninEndpoint(t *testing.T) {
	baseURL, cleanup := setupAttendanceContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := attendancesdk.NewSDKClient(baseURL)
	ctx := t.Context()

	for i := range 5 {
		err := client.SignIn(ctx, attendancesdk.SigninRequest{Username: "victim", Password: "wrong"})
		assertStatus(t, err, http.StatusUnauthorized, "attempt before the limit")
		require.False(t, attendancesdk.IsStatus(err, http.StatusTooManyRequests), "request %d should not be limited", i+1)
	}

	err := client.SignIn(ctx, attendancesdk.SigninRequest{Username: "victim", Password: "wrong"})
	assertStatus(t, err, http.StatusTooManyRequests, "sixth attempt")
	require.Contains(t, err.Error(), "Too many requests")

	// The limit is keyed on the username too
	err = client.SignIn(ctx, attendancesdk.SigninRequest{Username: "someone-else", Password: "wrong"})
	assertStatus(t, err, http.StatusUnauthorized, "different username")
}

// TestRateLimitHealthEndpoints verifies health checks tolerate frequent polling.
func TestRateLimitHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupAttendanceContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := attendancesdk.NewSDKClient(baseURL)

	for range 30 {
		health, err := client.GetLiveness(t.Context())
		assertHealthy(t, health, err)
	}
}
