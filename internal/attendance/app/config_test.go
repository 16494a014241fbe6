package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for _, key := range []string{
		"PORT", "ATTENDANCE_DATABASE_FILE", "ATTENDANCE_UTC_OFFSET", "ATTENDANCE_LATE_CUTOFF",
		"SESSION_TTL", "SESSION_COOKIE_SECURE", "MFA_ISSUER", "ENV", "HOUSEKEEPING_INTERVAL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, "attendance.db", cfg.DatabaseFile)
	require.Equal(t, "+03:00", cfg.UTCOffset)
	require.Equal(t, "08:30", cfg.LateCutoff)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.False(t, cfg.SessionCookieSecure)
	require.Equal(t, "AttendanceApp", cfg.MFAIssuer)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
}

func TestLoadConfigEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=6000\nATTENDANCE_LATE_CUTOFF=09:00\nSESSION_COOKIE_SECURE=true\n"), 0o600))

	t.Setenv("ENV_FILE", path)
	t.Setenv("ATTENDANCE_LATE_CUTOFF", "07:45") // already set, wins over the file
	// godotenv only fills variables that are absent, not ones set to "".
	// t.Setenv restores the previous values afterwards.
	for _, key := range []string{"PORT", "SESSION_COOKIE_SECURE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 6000, cfg.Port)
	require.Equal(t, "07:45", cfg.LateCutoff)
	require.True(t, cfg.SessionCookieSecure)
}

func TestEnvHelpers(t *testing.T) {
	tests := []struct {
		name  string
		value string
		check func(t *testing.T)
	}{
		{"int fallback on garbage", "abc", func(t *testing.T) {
			require.Equal(t, 7, getEnvIntOrDefault("TEST_ENV_HELPER", 7))
		}},
		{"duration string", "90s", func(t *testing.T) {
			require.Equal(t, 90*time.Second, getEnvDurationOrDefault("TEST_ENV_HELPER", time.Hour))
		}},
		{"duration bare minutes", "15", func(t *testing.T) {
			require.Equal(t, 15*time.Minute, getEnvDurationOrDefault("TEST_ENV_HELPER", time.Hour))
		}},
		{"bool fallback on garbage", "maybe", func(t *testing.T) {
			require.True(t, getEnvBoolOrDefault("TEST_ENV_HELPER", true))
		}},
		{"bool parse", "0", func(t *testing.T) {
			require.False(t, getEnvBoolOrDefault("TEST_ENV_HELPER", true))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_HELPER", tt.value)
			tt.check(t)
		})
	}
}
