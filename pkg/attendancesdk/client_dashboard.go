package attendancesdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *SDKClient) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	var out DashboardSummary
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/summary", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEmployeeStatus lists every employee with today's status.
func (c *SDKClient) GetEmployeeStatus(ctx context.Context) ([]EmployeeStatus, error) {
	var out EmployeeStatusResponse
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/employee-status", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Employees, nil
}

func (c *SDKClient) GetRecentActivity(ctx context.Context) ([]Activity, error) {
	var out RecentActivityResponse
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/recent-activity", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Activities, nil
}

// GetAttendanceTrend returns per-day counts for the trailing days. A
// non-positive days lets the server pick its default.
func (c *SDKClient) GetAttendanceTrend(ctx context.Context, days int) (*AttendanceTrend, error) {
	path := "/dashboard/attendance-trend"
	if days > 0 {
		path += "?" + url.Values{"days": {strconv.Itoa(days)}}.Encode()
	}

	var out AttendanceTrend
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) GetDepartmentPerformance(ctx context.Context) (*StatusCounts, error) {
	var out StatusCounts
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/department-performance", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DashboardSearch is the quick search; short queries return no results.
func (c *SDKClient) DashboardSearch(ctx context.Context, q string) ([]Employee, error) {
	var out EmployeeListResponse
	path := "/dashboard/search-employees?" + url.Values{"q": {q}}.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Employees, nil
}
