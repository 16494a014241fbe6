package domain

import "time"

type StatusCounts struct {
	Present int
	Late    int
	Absent  int
}

// EmployeeDayStatus is an employee with its attendance for a single day.
// AttendanceID and Timestamp are nil when the employee has not been marked.
type EmployeeDayStatus struct {
	EmployeeID   int64
	Name         string
	Email        string
	Phone        string
	Position     string
	Department   string
	Status       AttendanceStatus
	Timestamp    *time.Time
	AttendanceID *int64
}

type ActivityType string

const (
	ActivityAttendance ActivityType = "attendance"
	ActivityEmployee   ActivityType = "employee"
)

type Activity struct {
	Type        ActivityType
	Description string
	Timestamp   time.Time
}

// EmployeeReportRow holds per-employee counts within a report window.
type EmployeeReportRow struct {
	EmployeeID int64
	Name       string
	Email      string
	StatusCounts
}
