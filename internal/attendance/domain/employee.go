package domain

import "time"

type Employee struct {
	ID         int64
	AdminID    int64
	Name       string
	Email      string
	Phone      string
	Position   string
	Department string
	QRCode     string // JSON payload {"id":<int>,"name":"..."} encoded into the badge
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FaceTraining holds the opaque face samples captured for one employee.
// FaceData is the JSON document {"descriptor":[...],"images":[...],...}.
type FaceTraining struct {
	ID           int64
	EmployeeID   int64
	FaceData     string
	QualityScore float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FaceRecord is a FaceTraining row joined with its employee.
type FaceRecord struct {
	EmployeeID   int64
	Name         string
	Email        string
	FaceData     string
	QualityScore float64
	CreatedAt    time.Time
}
