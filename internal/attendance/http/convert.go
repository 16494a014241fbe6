package http

import (
	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/service"
	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
)

func toAdmin(a domain.Admin) attendancesdk.Admin {
	return attendancesdk.Admin{
		AdminID:      a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Phone:        a.Phone,
		Organization: a.Organization,
		Username:     a.Username,
		MFAEnabled:   a.MFAEnabled != nil,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toEmployee(e domain.Employee) attendancesdk.Employee {
	return attendancesdk.Employee{
		EmployeeID: e.ID,
		AdminID:    e.AdminID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Department: e.Department,
		QRCode:     e.QRCode,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// toEmployees never returns nil so lists encode as [].
func toEmployees(in []domain.Employee) []attendancesdk.Employee {
	out := make([]attendancesdk.Employee, 0, len(in))
	for _, e := range in {
		out = append(out, toEmployee(e))
	}
	return out
}

func toEmployeeStatuses(in []domain.EmployeeDayStatus) []attendancesdk.EmployeeStatus {
	out := make([]attendancesdk.EmployeeStatus, 0, len(in))
	for _, s := range in {
		out = append(out, attendancesdk.EmployeeStatus{
			EmployeeID:   s.EmployeeID,
			Name:         s.Name,
			Email:        s.Email,
			Phone:        s.Phone,
			Position:     s.Position,
			Department:   s.Department,
			Status:       string(s.Status),
			Timestamp:    s.Timestamp,
			AttendanceID: s.AttendanceID,
		})
	}
	return out
}

func toActivities(in []domain.Activity) []attendancesdk.Activity {
	out := make([]attendancesdk.Activity, 0, len(in))
	for _, a := range in {
		out = append(out, attendancesdk.Activity{
			Type:        string(a.Type),
			Description: a.Description,
			Timestamp:   a.Timestamp,
		})
	}
	return out
}

func toReport(r service.Report) attendancesdk.ReportResponse {
	details := make([]attendancesdk.EmployeeReportRow, 0, len(r.Details))
	for _, d := range r.Details {
		details = append(details, attendancesdk.EmployeeReportRow{
			EmployeeID: d.EmployeeID,
			Name:       d.Name,
			Email:      d.Email,
			Present:    d.Present,
			Late:       d.Late,
			Absent:     d.Absent,
		})
	}

	return attendancesdk.ReportResponse{
		TotalEmployees:    r.TotalEmployees,
		TotalPresent:      r.TotalPresent,
		TotalLate:         r.TotalLate,
		TotalAbsent:       r.TotalAbsent,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		Type:              r.Type,
		AttendanceDetails: details,
	}
}
