//go:build e2e

package attendance_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for attendance service end-to-end
 * tests: image build, container setup and account helpers.
 */

const (
	testImageName = "employee-attendance-test:latest"

	adminUsername = "admin"
	adminPassword = "Admin123!"
)

// TestMain builds the Docker image once before all tests and removes it
// after they complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Attendance Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Attendance Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/attendance/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

func baseEnv() map[string]string {
	return map[string]string{
		"ATTENDANCE_DATABASE_FILE": "/data/attendance.db",
		"ATTENDANCE_PEPPER_FILE":   "/data/pepper",
		"BOOTSTRAP_ADMIN_USERNAME": adminUsername,
		"BOOTSTRAP_ADMIN_PASSWORD": adminPassword,
		"ENV":                      "test",
		"LOG_LEVEL":                "info",
		"LOG_FORMAT":               "json",
	}
}

// setupAttendanceContainer starts the service with relaxed rate limits and
// returns its base URL.
func setupAttendanceContainer(t *testing.T) (string, func()) {
	t.Helper()

	env := baseEnv()
	// Tests make many rapid requests that would trip the production limits
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"

	return startContainer(t, env)
}

// setupAttendanceContainerWithDefaultRateLimits starts the service with the
// production rate limits, for the rate limiting tests only.
func setupAttendanceContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"5000/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("5000/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "5000")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// signedInAdmin returns a client signed in as the bootstrap admin.
func signedInAdmin(t *testing.T, baseURL string) *attendancesdk.SDKClient {
	t.Helper()

	client := attendancesdk.NewSDKClient(baseURL)
	err := client.SignIn(t.Context(), attendancesdk.SigninRequest{
		Username: adminUsername,
		Password: adminPassword,
	})
	require.NoError(t, err, "bootstrap admin should sign in")
	return client
}

// registerAdmin signs up a fresh admin and returns a client signed in as it.
func registerAdmin(t *testing.T, baseURL, username string) *attendancesdk.SDKClient {
	t.Helper()
	ctx := t.Context()

	client := attendancesdk.NewSDKClient(baseURL)
	resp, err := client.SignUp(ctx, attendancesdk.SignupRequest{
		Name:             "Admin " + username,
		Email:            username + "@example.com",
		Phone:            "555-0100",
		Organization:     "Acme",
		Username:         username,
		Password:         "secret1",
		SecurityQuestion: "First pet?",
		SecurityAnswer:   "Rex",
	})
	require.NoError(t, err)
	require.NotZero(t, resp.AdminID)

	require.NoError(t, client.SignIn(ctx, attendancesdk.SigninRequest{Username: username, Password: "secret1"}))
	return client
}

// addEmployee registers an employee under the client's admin.
func addEmployee(t *testing.T, client *attendancesdk.SDKClient, name, email string) *attendancesdk.AddEmployeeResponse {
	t.Helper()

	resp, err := client.AddEmployee(t.Context(), attendancesdk.AddEmployeeRequest{
		Name:       name,
		Email:      email,
		Phone:      "555-0199",
		Department: "Engineering",
	})
	require.NoError(t, err)
	require.NotZero(t, resp.EmployeeID)
	return resp
}

// assertStatus checks that err is an API error with the given status code.
func assertStatus(t *testing.T, err error, code int, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.True(t, attendancesdk.IsStatus(err, code), "%s - expected HTTP %d, got: %v", context, code, err)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *attendancesdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
