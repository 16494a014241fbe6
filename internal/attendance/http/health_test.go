package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandlerReadyz(t *testing.T) {
	t.Parallel()

	down := pingFunc(func(context.Context) error { return errors.New("disk I/O error") })

	tests := []struct {
		name     string
		db       pinger
		redact   bool
		code     int
		database string
	}{
		{"database up", pingFunc(func(context.Context) error { return nil }), false, http.StatusOK, "ok"},
		{"database down", down, false, http.StatusServiceUnavailable, "error: disk I/O error"},
		{"database down redacted", down, true, http.StatusServiceUnavailable, "error: database unreachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := &HealthHandler{Version: "v1", Started: time.Now().Add(-time.Minute), DB: tt.db, RedactErrors: tt.redact}
			rec := httptest.NewRecorder()
			h.HandleReadyz(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
			require.Equal(t, tt.code, rec.Code)

			var resp attendancesdk.HealthResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			require.Equal(t, "v1", resp.Version)
			require.Equal(t, "1m0s", resp.Uptime)
			require.Equal(t, tt.database, resp.Checks.Database)
		})
	}
}
