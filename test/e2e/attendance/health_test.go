//go:build e2e

package attendance_test

import (
	"testing"

	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupAttendanceContainer(t)
	defer cleanup()

	client := attendancesdk.NewSDKClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the readiness check reports the database.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupAttendanceContainer(t)
	defer cleanup()

	client := attendancesdk.NewSDKClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}
