package http

import (
	"errors"
	"net/http"

	"github.com/robera20/employee-attendance-management/internal/attendance/service"
	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
	"github.com/robera20/employee-attendance-management/pkg/httpx"
	"github.com/robera20/employee-attendance-management/pkg/slogx"
)

const internalErrorMessage = "Internal server error"

// errorWriter maps service errors onto HTTP responses. With Redact set,
// internal failures never leak their message.
type errorWriter struct {
	Redact bool
}

func statusForKind(k service.Kind) int {
	switch k {
	case service.KindValidation, service.KindConflict:
		return http.StatusBadRequest
	case service.KindAuth:
		return http.StatusUnauthorized
	case service.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// write sends err with the status code of its kind. Mark-attendance failures
// carry their extra fields.
func (e errorWriter) write(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())

	var marked *service.AlreadyMarkedError
	if errors.As(err, &marked) {
		employee := toEmployee(marked.Employee)
		timestamp := marked.Existing.Timestamp
		httpx.WriteJSON(w, http.StatusBadRequest, attendancesdk.MarkAttendanceError{
			Error:     marked.Error(),
			Status:    string(marked.Existing.Status),
			Timestamp: &timestamp,
			Employee:  &employee,
		})
		return
	}

	var missing *service.EmployeeNotFoundError
	if errors.As(err, &missing) {
		httpx.WriteJSON(w, http.StatusNotFound, attendancesdk.MarkAttendanceError{
			Error:       missing.Error(),
			Suggestions: toEmployees(missing.Suggestions),
			SearchedID:  missing.SearchedID,
		})
		return
	}

	kind := service.KindOf(err)
	if kind != service.KindInternal {
		log.Debug("request rejected", "kind", kind, "err", err)
		httpx.WriteError(w, statusForKind(kind), service.MessageOf(err))
		return
	}

	log.Error("request failed", "err", err)
	msg := internalErrorMessage
	if !e.Redact {
		msg = internalErrorMessage + ": " + err.Error()
	}
	httpx.WriteError(w, http.StatusInternalServerError, msg)
}

// badRequest reports a body that could not be decoded.
func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	slogx.FromContext(r.Context()).Warn("failed to parse request", "err", err)
	httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
}
