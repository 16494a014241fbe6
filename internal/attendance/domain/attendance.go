package domain

import "time"

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusLate    AttendanceStatus = "Late"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Valid reports whether s is one of the known statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent:
		return true
	}
	return false
}

type Attendance struct {
	ID         int64
	EmployeeID int64
	Status     AttendanceStatus
	Timestamp  time.Time // UTC
	Date       string    // local calendar day, YYYY-MM-DD
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type AttendanceStats struct {
	TotalDays   int
	PresentDays int
	LateDays    int
	AbsentDays  int
}

// AttendanceExportRow is one line of the attendance CSV export.
type AttendanceExportRow struct {
	AttendanceID int64
	EmployeeID   int64
	Name         string
	Email        string
	Phone        string
	Department   string
	Position     string
	Status       AttendanceStatus
	Timestamp    time.Time
}
