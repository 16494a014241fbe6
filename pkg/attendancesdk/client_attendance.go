package attendancesdk

import (
	"context"
	"fmt"
	"net/http"
)

// MarkAttendance records today's attendance for a scanned employee id. It
// does not need a session. Conflicts and unknown ids come back as *APIError;
// see APIError.MarkError.
func (c *SDKClient) MarkAttendance(ctx context.Context, employeeID string) (*MarkAttendanceResponse, error) {
	var out MarkAttendanceResponse
	req := MarkAttendanceRequest{EmployeeID: employeeID}
	if err := c.doJSON(ctx, http.MethodPost, "/attendance/mark", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAttendance corrects today's status for an employee.
func (c *SDKClient) UpdateAttendance(ctx context.Context, employeeID int64, req UpdateAttendanceRequest) (*UpdateAttendanceResponse, error) {
	var out UpdateAttendanceResponse
	path := fmt.Sprintf("/attendance/update/%d", employeeID)
	if err := c.doJSON(ctx, http.MethodPut, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) GetAttendanceStats(ctx context.Context, employeeID int64) (*AttendanceStats, error) {
	var out AttendanceStats
	path := fmt.Sprintf("/attendance/stats/%d", employeeID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportAttendanceCSV downloads the attendance history as CSV.
func (c *SDKClient) ExportAttendanceCSV(ctx context.Context) ([]byte, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/attendance/export", nil, map[string]string{"Accept": "text/csv"})
	if err != nil {
		return nil, err
	}
	return readBody(resp)
}
