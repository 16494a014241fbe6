package store

import (
	"context"
	"errors"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite) implement
// this. It exposes sub-repositories to keep concerns tidy and testable, and so
// a Tx cannot open another transaction from inside itself.
type Store interface {
	Admins() Admins
	Sessions() Sessions
	Employees() Employees
	Attendance() Attendance
	FaceTraining() FaceTraining
	Reports() Reports

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Admins interface {
	// CreateAdmin inserts a new admin and returns its generated id.
	// Returns ErrAlreadyExists when the username or email is taken.
	CreateAdmin(ctx context.Context, a domain.Admin) (int64, error)

	GetAdminByID(ctx context.Context, id int64) (domain.Admin, error)
	GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error)

	// UpdateProfile mutates the contact fields and bumps updated_at.
	UpdateProfile(ctx context.Context, a domain.Admin) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, adminID int64, newHash string) error

	// IsEmpty returns true if there are no admins.
	IsEmpty(ctx context.Context) (bool, error)

	// UpdateMFASecret stores a pending TOTP secret for an admin.
	UpdateMFASecret(ctx context.Context, adminID int64, secret string) error

	// EnableMFA marks MFA as enabled (sets mfa_enabled timestamp).
	EnableMFA(ctx context.Context, adminID int64) error

	// DisableMFA clears mfa_enabled and mfa_secret.
	DisableMFA(ctx context.Context, adminID int64) error
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error

	// GetActiveSession returns the session with the given id if it has not
	// expired at now.
	GetActiveSession(ctx context.Context, id string, now time.Time) (domain.Session, error)

	DeleteSession(ctx context.Context, id string) error

	// DeleteAdminSessions signs an admin out everywhere.
	DeleteAdminSessions(ctx context.Context, adminID int64) error

	// DeleteExpiredSessions is housekeeping; it returns the number of rows removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type Employees interface {
	// CreateEmployee inserts a new employee and returns its generated id.
	// Returns ErrAlreadyExists when the email is taken by any tenant.
	CreateEmployee(ctx context.Context, e domain.Employee) (int64, error)

	UpdateQRCode(ctx context.Context, employeeID int64, payload string) error

	// GetEmployeeByID looks an employee up regardless of owner.
	GetEmployeeByID(ctx context.Context, id int64) (domain.Employee, error)

	// GetOwnedEmployee returns ErrNotFound unless id belongs to adminID.
	GetOwnedEmployee(ctx context.Context, id, adminID int64) (domain.Employee, error)

	GetEmployeeByEmail(ctx context.Context, email string) (domain.Employee, error)

	// ListEmployees returns the tenant's employees ordered by name.
	ListEmployees(ctx context.Context, adminID int64) ([]domain.Employee, error)

	// SearchEmployees matches name, email, id and phone, best matches first.
	SearchEmployees(ctx context.Context, adminID int64, term string, limit int) ([]domain.Employee, error)

	// SuggestEmployees is a loose id/name/email match used for "did you mean"
	// hints. adminID 0 searches every tenant.
	SuggestEmployees(ctx context.Context, adminID int64, term string, limit int) ([]domain.Employee, error)

	DeleteEmployee(ctx context.Context, id, adminID int64) error
}

type Attendance interface {
	// CreateAttendance inserts a row and returns its id. Returns
	// ErrAlreadyExists when the employee already has a row for a.Date.
	CreateAttendance(ctx context.Context, a domain.Attendance) (int64, error)

	// GetAttendanceForDate returns the most recent row for the employee on date.
	GetAttendanceForDate(ctx context.Context, employeeID int64, date string) (domain.Attendance, error)

	UpdateAttendanceStatus(ctx context.Context, id int64, status domain.AttendanceStatus, notes string) error

	// GetStats returns lifetime counts for an employee.
	GetStats(ctx context.Context, employeeID int64) (domain.AttendanceStats, error)

	DeleteEmployeeAttendance(ctx context.Context, employeeID int64) error

	// ListForExport returns the tenant's rows ordered by timestamp descending.
	ListForExport(ctx context.Context, adminID int64) ([]domain.AttendanceExportRow, error)
}

type FaceTraining interface {
	// UpsertFaceTraining replaces the employee's face data, creating the row if needed.
	UpsertFaceTraining(ctx context.Context, f domain.FaceTraining) error

	GetFaceTraining(ctx context.Context, employeeID int64) (domain.FaceTraining, error)

	DeleteFaceTraining(ctx context.Context, employeeID int64) error

	// ListFaceRecords returns face data for the tenant's employees, newest first.
	ListFaceRecords(ctx context.Context, adminID int64) ([]domain.FaceRecord, error)
}

// Reports holds the read-only aggregation queries behind the dashboard and
// report endpoints. Dates are local calendar days (YYYY-MM-DD); time bounds
// are half-open [from, to).
type Reports interface {
	CountEmployees(ctx context.Context, adminID int64) (int, error)
	CountEmployeesCreatedBetween(ctx context.Context, adminID int64, from, to time.Time) (int, error)

	// StatusCountsOnDate counts attendance rows per status for one day.
	StatusCountsOnDate(ctx context.Context, adminID int64, date string) (domain.StatusCounts, error)

	// StatusCountsByDate counts rows per status for every day in [fromDate, toDate].
	StatusCountsByDate(ctx context.Context, adminID int64, fromDate, toDate string) (map[string]domain.StatusCounts, error)

	// EmployeeStatusOnDate lists every employee with that day's attendance.
	// Unmarked employees have an empty Status.
	EmployeeStatusOnDate(ctx context.Context, adminID int64, date string) ([]domain.EmployeeDayStatus, error)

	RecentAttendance(ctx context.Context, adminID int64, since time.Time, limit int) ([]domain.Activity, error)
	RecentEmployees(ctx context.Context, adminID int64, since time.Time, limit int) ([]domain.Activity, error)

	// EmployeeCountsBetween returns per-employee counts for [fromDate, toDate],
	// zero for employees with no rows, ordered by name.
	EmployeeCountsBetween(ctx context.Context, adminID int64, fromDate, toDate string) ([]domain.EmployeeReportRow, error)

	// SearchEmployees is the dashboard quick search over name, email and phone.
	SearchEmployees(ctx context.Context, adminID int64, term string, limit int) ([]domain.Employee, error)
}
