package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/robera20/employee-attendance-management/internal/attendance/service"
	"github.com/robera20/employee-attendance-management/pkg/httpx"
)

// adminID returns the signed-in admin injected by the session middleware.
func adminID(r *http.Request) (int64, error) {
	id, ok := httpx.AdminIDFromContext(r.Context())
	if !ok {
		return 0, service.ErrAuthRequired
	}
	return id, nil
}

// employeeIDParam parses a numeric employee id path value. Anything else
// cannot name an employee.
func employeeIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrEmployeeNotFound
	}
	return id, nil
}

// flexibleID reads an id sent either as a JSON string or a JSON number.
func flexibleID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
