package gen

import (
	"database/sql"
)

type Admin struct {
	AdminID            int64
	Name               string
	Email              string
	Phone              sql.NullString
	Organization       sql.NullString
	Username           string
	PasswordHash       string
	SecurityQuestion   string
	SecurityAnswerHash string
	MfaSecret          sql.NullString
	MfaEnabled         sql.NullString
	CreatedAt          string
	UpdatedAt          string
}

type Session struct {
	SessionID string
	AdminID   int64
	ExpiresAt string
	CreatedAt string
}

type Employee struct {
	EmployeeID int64
	AdminID    int64
	Name       string
	Email      string
	Phone      string
	Position   sql.NullString
	Department sql.NullString
	QrCode     string
	CreatedAt  string
	UpdatedAt  string
}

type Attendance struct {
	AttendanceID   int64
	EmployeeID     int64
	Status         string
	Timestamp      string
	AttendanceDate string
	Notes          sql.NullString
	CreatedAt      string
	UpdatedAt      string
}

type FaceTraining struct {
	ID           int64
	EmployeeID   int64
	FaceData     string
	QualityScore float64
	CreatedAt    string
	UpdatedAt    string
}
