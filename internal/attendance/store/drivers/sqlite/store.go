package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/store"
	"github.com/robera20/employee-attendance-management/internal/attendance/store/drivers/sqlite/gen"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// timeLayout is fixed width and always UTC so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000Z"

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Every connection to :memory: is a fresh database, keep exactly one.
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Admins() store.Admins             { return &adminsRepo{q: s.q} }
func (s *Store) Sessions() store.Sessions         { return &sessionsRepo{q: s.q} }
func (s *Store) Employees() store.Employees       { return &employeesRepo{q: s.q} }
func (s *Store) Attendance() store.Attendance     { return &attendanceRepo{q: s.q} }
func (s *Store) FaceTraining() store.FaceTraining { return &faceTrainingRepo{q: s.q} }
func (s *Store) Reports() store.Reports           { return &reportsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns UNIQUE and PRIMARY KEY violations into ErrAlreadyExists.
func mapConstraint(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}
	return err
}

// mapAffected reports ErrNotFound when a write touched no rows.
func mapAffected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime reads a stored timestamp. Rows written by older tooling may use
// RFC 3339 without milliseconds, so fall back to that.
func parseTime(s string) time.Time {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

func mapNullTimePtr(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	t := parseTime(ns.String)
	return &t
}

func mapAdmin(row gen.Admin) domain.Admin {
	var mfaSecret *string
	if row.MfaSecret.Valid {
		mfaSecret = &row.MfaSecret.String
	}

	return domain.Admin{
		ID:                 row.AdminID,
		Name:               row.Name,
		Email:              row.Email,
		Phone:              mapNullString(row.Phone),
		Organization:       mapNullString(row.Organization),
		Username:           row.Username,
		PasswordHash:       row.PasswordHash,
		SecurityQuestion:   row.SecurityQuestion,
		SecurityAnswerHash: row.SecurityAnswerHash,
		MFAEnabled:         mapNullTimePtr(row.MfaEnabled),
		MFASecret:          mfaSecret,
		CreatedAt:          parseTime(row.CreatedAt),
		UpdatedAt:          parseTime(row.UpdatedAt),
	}
}

func mapEmployee(row gen.Employee) domain.Employee {
	return domain.Employee{
		ID:         row.EmployeeID,
		AdminID:    row.AdminID,
		Name:       row.Name,
		Email:      row.Email,
		Phone:      row.Phone,
		Position:   mapNullString(row.Position),
		Department: mapNullString(row.Department),
		QRCode:     row.QrCode,
		CreatedAt:  parseTime(row.CreatedAt),
		UpdatedAt:  parseTime(row.UpdatedAt),
	}
}

func mapEmployees(rows []gen.Employee) []domain.Employee {
	out := make([]domain.Employee, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapEmployee(row))
	}
	return out
}

func mapAttendance(row gen.Attendance) domain.Attendance {
	return domain.Attendance{
		ID:         row.AttendanceID,
		EmployeeID: row.EmployeeID,
		Status:     domain.AttendanceStatus(row.Status),
		Timestamp:  parseTime(row.Timestamp),
		Date:       row.AttendanceDate,
		Notes:      mapNullString(row.Notes),
		CreatedAt:  parseTime(row.CreatedAt),
		UpdatedAt:  parseTime(row.UpdatedAt),
	}
}

func mapStatusCounts(row gen.StatusCountsRow) domain.StatusCounts {
	return domain.StatusCounts{
		Present: int(row.Present),
		Late:    int(row.Late),
		Absent:  int(row.Absent),
	}
}
