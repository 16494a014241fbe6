package http

import (
	"context"
	"net/http"
	"time"

	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
	"github.com/robera20/employee-attendance-management/pkg/httpx"
	"github.com/robera20/employee-attendance-management/pkg/slogx"
)

const readinessTimeout = 2 * time.Second

// pinger is the slice of the store the readiness probe needs.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	Version string
	Started time.Time
	DB      pinger

	// RedactErrors replaces the database error text with a fixed message.
	RedactErrors bool
}

func (h *HealthHandler) report(status string) attendancesdk.HealthResponse {
	return attendancesdk.HealthResponse{
		Status:  status,
		Uptime:  time.Since(h.Started).Round(time.Second).String(),
		Version: h.Version,
	}
}

// HandleLivez godoc
//
//	@Summary		Liveness probe
//	@Description	Always 200 while the process is serving requests
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	attendancesdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func (h *HealthHandler) HandleLivez(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.report("ok"))
}

// HandleReadyz godoc
//
//	@Summary		Readiness probe
//	@Description	200 when the attendance database answers a ping, 503 otherwise
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	attendancesdk.HealthResponse	"database reachable"
//	@Failure		503	{object}	attendancesdk.HealthResponse	"database unreachable"
//	@Router			/readyz [get].
func (h *HealthHandler) HandleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	resp := h.report("ok")
	resp.Checks = &attendancesdk.HealthChecks{Database: "ok"}

	err := h.DB.Ping(ctx)
	if err == nil {
		httpx.WriteJSON(w, http.StatusOK, resp)
		return
	}

	slogx.FromContext(r.Context()).Error("readiness check failed", "error", err)
	resp.Status = "degraded"
	resp.Checks.Database = "error: " + err.Error()
	if h.RedactErrors {
		resp.Checks.Database = "error: database unreachable"
	}
	httpx.WriteJSON(w, http.StatusServiceUnavailable, resp)
}
