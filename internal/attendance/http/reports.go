package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/robera20/employee-attendance-management/internal/attendance/service"
	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
	"github.com/robera20/employee-attendance-management/pkg/httpx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsHandler handles report generation and export.
type ReportsHandler struct {
	ReportService *service.ReportService
	errors        errorWriter
}

func reportParams(req attendancesdk.ReportRequest) service.ReportParams {
	return service.ReportParams{
		Type:      req.Type,
		Period:    req.Period,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
}

// HandleGenerate handles POST /reports/generate
//
//	@Summary		Generate an attendance report
//	@Description	Per-employee counts over an inclusive YYYY-MM-DD range.
//	@Tags			Reports
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			request	body		attendancesdk.ReportRequest	true	"Date range"
//	@Success		200		{object}	attendancesdk.ReportResponse
//	@Failure		400		{object}	attendancesdk.ErrorResponse	"Missing or invalid dates"
//	@Router			/reports/generate [post].
func (h *ReportsHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	var req attendancesdk.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err)
		return
	}

	report, err := h.ReportService.GenerateReport(r.Context(), owner, reportParams(req))
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toReport(report))
}

// HandleSummary handles GET /reports/summary
//
//	@Summary		Today's report summary
//	@Tags			Reports
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	attendancesdk.ReportSummary
//	@Router			/reports/summary [get].
func (h *ReportsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	s, err := h.ReportService.Summary(r.Context(), owner)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.ReportSummary{
		TotalEmployees: s.TotalEmployees,
		TodayPresent:   s.TodayPresent,
		TodayLate:      s.TodayLate,
		TodayAbsent:    s.TodayAbsent,
	})
}

// HandleExport handles POST /reports/export
//
//	@Summary		Export a report as XLSX
//	@Description	Workbook with a Summary sheet and a per-employee Details sheet.
//	@Tags			Reports
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			request	body		attendancesdk.ReportRequest	true	"Date range"
//	@Success		200		{file}		file
//	@Failure		400		{object}	attendancesdk.ErrorResponse	"Missing or invalid dates"
//	@Router			/reports/export [post].
func (h *ReportsHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	var req attendancesdk.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.ReportService.ExportXLSX(r.Context(), owner, reportParams(req), &buf); err != nil {
		h.errors.write(w, r, err)
		return
	}

	filename := fmt.Sprintf("attendance-report-%s-to-%s.xlsx", strings.TrimSpace(req.StartDate), strings.TrimSpace(req.EndDate))
	httpx.WriteAttachment(w, xlsxContentType, filename, buf.Bytes())
}
