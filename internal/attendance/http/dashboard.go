package http

import (
	"net/http"
	"strconv"

	"github.com/robera20/employee-attendance-management/internal/attendance/service"
	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
	"github.com/robera20/employee-attendance-management/pkg/httpx"
)

// DashboardHandler serves the dashboard widgets. Every endpoint is scoped to
// the signed-in admin.
type DashboardHandler struct {
	DashboardService *service.DashboardService
	errors           errorWriter
}

// HandleSummary handles GET /dashboard/summary
//
//	@Summary		Today's headline numbers
//	@Description	Counts for today with the percentage change against yesterday.
//	@Tags			Dashboard
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	attendancesdk.DashboardSummary
//	@Router			/dashboard/summary [get].
func (h *DashboardHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	s, err := h.DashboardService.Summary(r.Context(), owner)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.DashboardSummary{
		TotalEmployees: s.TotalEmployees,
		EmployeeGrowth: s.EmployeeGrowth,
		NewToday:       s.NewToday,
		PresentToday:   s.PresentToday,
		PresentRate:    s.PresentRate,
		LateToday:      s.LateToday,
		LateRate:       s.LateRate,
		AbsentToday:    s.AbsentToday,
		AbsentRate:     s.AbsentRate,
	})
}

// HandleEmployeeStatus handles GET /dashboard/employee-status
//
//	@Summary		Today's status per employee
//	@Tags			Dashboard
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	attendancesdk.EmployeeStatusResponse
//	@Router			/dashboard/employee-status [get].
func (h *DashboardHandler) HandleEmployeeStatus(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	rows, err := h.DashboardService.EmployeeStatus(r.Context(), owner)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.EmployeeStatusResponse{Employees: toEmployeeStatuses(rows)})
}

// HandleRecentActivity handles GET /dashboard/recent-activity
//
//	@Summary		Recent activity feed
//	@Tags			Dashboard
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	attendancesdk.RecentActivityResponse
//	@Router			/dashboard/recent-activity [get].
func (h *DashboardHandler) HandleRecentActivity(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	activities, err := h.DashboardService.RecentActivity(r.Context(), owner)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.RecentActivityResponse{Activities: toActivities(activities)})
}

// HandleAttendanceTrend handles GET /dashboard/attendance-trend
//
//	@Summary		Attendance trend
//	@Tags			Dashboard
//	@Security		SessionCookie
//	@Produce		json
//	@Param			days	query		int	false	"Number of trailing days (default 7)"
//	@Success		200		{object}	attendancesdk.AttendanceTrend
//	@Router			/dashboard/attendance-trend [get].
func (h *DashboardHandler) HandleAttendanceTrend(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	// Unparseable values fall back to the default window.
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	t, err := h.DashboardService.AttendanceTrend(r.Context(), owner, days)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.AttendanceTrend{
		Labels:  t.Labels,
		Present: t.Present,
		Late:    t.Late,
		Absent:  t.Absent,
	})
}

// HandleDepartmentPerformance handles GET /dashboard/department-performance
//
//	@Summary		Today's status counts
//	@Tags			Dashboard
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	attendancesdk.StatusCounts
//	@Router			/dashboard/department-performance [get].
func (h *DashboardHandler) HandleDepartmentPerformance(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	c, err := h.DashboardService.DepartmentPerformance(r.Context(), owner)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.StatusCounts{Present: c.Present, Late: c.Late, Absent: c.Absent})
}

// HandleSearch handles GET /dashboard/search-employees
//
//	@Summary		Dashboard quick search
//	@Description	Queries shorter than 2 characters return an empty list.
//	@Tags			Dashboard
//	@Security		SessionCookie
//	@Produce		json
//	@Param			q	query		string	false	"Search term"
//	@Success		200	{object}	attendancesdk.EmployeeListResponse
//	@Router			/dashboard/search-employees [get].
func (h *DashboardHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	owner, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	emps, err := h.DashboardService.SearchEmployees(r.Context(), owner, r.URL.Query().Get("q"))
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.EmployeeListResponse{Employees: toEmployees(emps)})
}
