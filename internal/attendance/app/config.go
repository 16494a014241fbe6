package app

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: ./attendance.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	UTCOffset  string // Optional: fixed local offset for attendance days (default: +03:00)
	LateCutoff string // Optional: local HH:MM after which a mark is Late (default: 08:30)

	SessionTTL          time.Duration // Optional: admin session lifetime (default: 24h)
	SessionCookieSecure bool          // Optional: mark the session cookie Secure (default: false)
	MFAIssuer           string        // Optional: issuer shown in authenticator apps (default: AttendanceApp)

	BootstrapUsername string // Optional: username of the seeded admin (default: admin)
	BootstrapEmail    string // Optional: email of the seeded admin (default: admin@example.com)
	BootstrapPassword string // Optional: no admin is seeded when empty

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 5000)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired session sweep interval (default: 1h)
}

// LoadConfig reads the configuration from the environment. Values from the
// file named by ENV_FILE (default .env) fill in variables that are not
// already set; a missing file is ignored.
func LoadConfig() (Config, error) {
	if err := loadEnvFile(getEnvOrDefault("ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	cfg := Config{
		DatabaseFile: getEnvOrDefault("ATTENDANCE_DATABASE_FILE", "attendance.db"),
		PepperFile:   getEnvOrDefault("ATTENDANCE_PEPPER_FILE", "pepper"),
		UTCOffset:    getEnvOrDefault("ATTENDANCE_UTC_OFFSET", "+03:00"),
		LateCutoff:   getEnvOrDefault("ATTENDANCE_LATE_CUTOFF", "08:30"),

		SessionTTL:          getEnvDurationOrDefault("SESSION_TTL", 24*time.Hour),
		SessionCookieSecure: getEnvBoolOrDefault("SESSION_COOKIE_SECURE", false),
		MFAIssuer:           getEnvOrDefault("MFA_ISSUER", "AttendanceApp"),

		BootstrapUsername: os.Getenv("BOOTSTRAP_ADMIN_USERNAME"),
		BootstrapEmail:    os.Getenv("BOOTSTRAP_ADMIN_EMAIL"),
		BootstrapPassword: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 5000),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg, nil
}

func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
