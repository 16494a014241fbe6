package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/robera20/employee-attendance-management/internal/attendance/service"
	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
	"github.com/robera20/employee-attendance-management/pkg/httpx"
)

// AttendanceHandler handles attendance marking, corrections and export.
type AttendanceHandler struct {
	AttendanceService *service.AttendanceService
	errors            errorWriter
}

type markBody struct {
	EmployeeID json.RawMessage `json:"employee_id"`
}

// HandleMark handles POST /attendance/mark
//
//	@Summary		Mark attendance
//	@Description	Records today's attendance for a scanned badge. Present until the late cutoff, Late after it.
//	@Description	No session is needed; when one is present, "did you mean" suggestions are limited to that admin's employees.
//	@Tags			Attendance
//	@Accept			json
//	@Produce		json
//	@Param			request	body		attendancesdk.MarkAttendanceRequest	true	"Scanned employee id (string or number)"
//	@Success		200		{object}	attendancesdk.MarkAttendanceResponse
//	@Failure		400		{object}	attendancesdk.MarkAttendanceError	"Missing id or already marked today"
//	@Failure		404		{object}	attendancesdk.MarkAttendanceError	"Employee not found, with suggestions"
//	@Failure		429		{object}	attendancesdk.ErrorResponse		"Rate limited"
//	@Router			/attendance/mark [post].
func (h *AttendanceHandler) HandleMark(w http.ResponseWriter, r *http.Request) {
	var req markBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err)
		return
	}

	scope, _ := httpx.AdminIDFromContext(r.Context())

	res, err := h.AttendanceService.MarkAttendance(r.Context(), flexibleID(req.EmployeeID), scope)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.MarkAttendanceResponse{
		Success:    true,
		Message:    fmt.Sprintf("Attendance marked successfully for %s", res.Employee.Name),
		Status:     string(res.Attendance.Status),
		Timestamp:  res.Attendance.Timestamp,
		EmployeeID: res.Employee.ID,
		Employee:   toEmployee(res.Employee),
	})
}

// HandleUpdate handles PUT /attendance/update/{employeeId}
//
//	@Summary		Correct today's attendance
//	@Tags			Attendance
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			employeeId	path		int										true	"Employee ID"
//	@Param			request		body		attendancesdk.UpdateAttendanceRequest	true	"New status"
//	@Success		200			{object}	attendancesdk.UpdateAttendanceResponse
//	@Failure		400			{object}	attendancesdk.ErrorResponse	"Missing or unknown status"
//	@Failure		404			{object}	attendancesdk.ErrorResponse	"Employee or today's record not found"
//	@Router			/attendance/update/{employeeId} [put].
func (h *AttendanceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	id, err := employeeIDParam(r, "employeeId")
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	var req attendancesdk.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err)
		return
	}

	res, err := h.AttendanceService.UpdateAttendance(r.Context(), owner, id, req.Status, req.Reason)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.UpdateAttendanceResponse{
		Success:   true,
		Message:   fmt.Sprintf("Attendance updated successfully for %s", res.Employee.Name),
		OldStatus: string(res.OldStatus),
		NewStatus: string(res.NewStatus),
		Employee:  toEmployee(res.Employee),
	})
}

// HandleStats handles GET /attendance/stats/{employeeId}
//
//	@Summary		Attendance statistics
//	@Tags			Attendance
//	@Security		SessionCookie
//	@Produce		json
//	@Param			employeeId	path		int	true	"Employee ID"
//	@Success		200			{object}	attendancesdk.AttendanceStats
//	@Failure		404			{object}	attendancesdk.ErrorResponse
//	@Router			/attendance/stats/{employeeId} [get].
func (h *AttendanceHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	id, err := employeeIDParam(r, "employeeId")
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	stats, err := h.AttendanceService.GetStats(r.Context(), owner, id)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.AttendanceStats{
		TotalDays:   stats.TotalDays,
		PresentDays: stats.PresentDays,
		LateDays:    stats.LateDays,
		AbsentDays:  stats.AbsentDays,
	})
}

// HandleExport handles GET /attendance/export
//
//	@Summary		Export attendance as CSV
//	@Tags			Attendance
//	@Security		SessionCookie
//	@Produce		text/csv
//	@Success		200	{file}		file	"attendance.csv"
//	@Failure		500	{object}	attendancesdk.ErrorResponse	"Failed to export attendance"
//	@Router			/attendance/export [get].
func (h *AttendanceHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.AttendanceService.ExportCSV(r.Context(), owner, &buf); err != nil {
		h.errors.write(w, r, fmt.Errorf("failed to export attendance: %w", err))
		return
	}

	httpx.WriteAttachment(w, "text/csv", "attendance.csv", buf.Bytes())
}
