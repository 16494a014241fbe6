package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/store"
	"github.com/robera20/employee-attendance-management/pkg/csvx"
	"github.com/robera20/employee-attendance-management/pkg/slogx"
)

const (
	suggestionLimit  = 3
	exportTimeLayout = "2006-01-02T15:04:05.000Z"
)

var exportHeader = []string{
	"attendance_id", "employee_id", "name", "email", "phone",
	"department", "position", "status", "timestamp",
}

type AttendanceService struct {
	Store    store.Store
	Calendar *Calendar
}

// MarkResult is a freshly recorded attendance row and its employee.
type MarkResult struct {
	Attendance domain.Attendance
	Employee   domain.Employee
}

// UpdateResult describes a status correction.
type UpdateResult struct {
	OldStatus domain.AttendanceStatus
	NewStatus domain.AttendanceStatus
	Employee  domain.Employee
}

// MarkAttendance records today's attendance for the scanned employee id.
// scopeAdminID narrows "did you mean" suggestions to one tenant; 0 searches
// all tenants.
func (s *AttendanceService) MarkAttendance(ctx context.Context, rawID string, scopeAdminID int64) (MarkResult, error) {
	log := slogx.FromContext(ctx)

	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return MarkResult{}, Validation("Employee ID is required")
	}

	emp, err := s.resolveEmployee(ctx, rawID, scopeAdminID)
	if err != nil {
		return MarkResult{}, err
	}

	now := s.Calendar.now().UTC()
	rec := domain.Attendance{
		EmployeeID: emp.ID,
		Status:     s.Calendar.StatusAt(now),
		Timestamp:  now,
		Date:       s.Calendar.DateOf(now),
		CreatedAt:  now,
	}

	existing, err := s.Store.Attendance().GetAttendanceForDate(ctx, emp.ID, rec.Date)
	if err == nil {
		return MarkResult{}, &AlreadyMarkedError{Existing: existing, Employee: emp}
	}
	if !errors.Is(err, store.ErrNotFound) {
		return MarkResult{}, fmt.Errorf("failed to check attendance: %w", err)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		id, err := tx.Attendance().CreateAttendance(ctx, rec)
		if err != nil {
			return err
		}
		rec.ID = id
		return nil
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		// A concurrent scan won the insert.
		existing, gerr := s.Store.Attendance().GetAttendanceForDate(ctx, emp.ID, rec.Date)
		if gerr != nil {
			return MarkResult{}, fmt.Errorf("failed to load existing attendance: %w", gerr)
		}
		return MarkResult{}, &AlreadyMarkedError{Existing: existing, Employee: emp}
	}
	if err != nil {
		return MarkResult{}, fmt.Errorf("failed to record attendance: %w", err)
	}

	log.Info("attendance marked",
		"employee_id", emp.ID,
		"status", rec.Status,
		"date", rec.Date,
	)
	return MarkResult{Attendance: rec, Employee: emp}, nil
}

func (s *AttendanceService) resolveEmployee(ctx context.Context, rawID string, scopeAdminID int64) (domain.Employee, error) {
	if id, err := strconv.ParseInt(rawID, 10, 64); err == nil {
		emp, err := s.Store.Employees().GetEmployeeByID(ctx, id)
		if err == nil {
			return emp, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return domain.Employee{}, fmt.Errorf("failed to load employee: %w", err)
		}
	}

	suggestions, err := s.Store.Employees().SuggestEmployees(ctx, scopeAdminID, rawID, suggestionLimit)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("failed to suggest employees: %w", err)
	}
	return domain.Employee{}, &EmployeeNotFoundError{SearchedID: rawID, Suggestions: suggestions}
}

// UpdateAttendance overwrites today's status for an employee of adminID.
func (s *AttendanceService) UpdateAttendance(ctx context.Context, adminID, employeeID int64, status, reason string) (UpdateResult, error) {
	next := domain.AttendanceStatus(strings.TrimSpace(status))
	if next == "" {
		return UpdateResult{}, Validation("Status is required")
	}
	if !next.Valid() {
		return UpdateResult{}, Validation("Status must be one of Present, Late, Absent")
	}

	emp, err := s.ownedEmployee(ctx, employeeID, adminID)
	if err != nil {
		return UpdateResult{}, err
	}

	current, err := s.Store.Attendance().GetAttendanceForDate(ctx, emp.ID, s.Calendar.Today())
	if errors.Is(err, store.ErrNotFound) {
		return UpdateResult{}, ErrNoAttendanceToday
	}
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	if err := s.Store.Attendance().UpdateAttendanceStatus(ctx, current.ID, next, strings.TrimSpace(reason)); err != nil {
		return UpdateResult{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	slogx.FromContext(ctx).Info("attendance updated",
		"employee_id", emp.ID,
		"old_status", current.Status,
		"new_status", next,
	)
	return UpdateResult{OldStatus: current.Status, NewStatus: next, Employee: emp}, nil
}

// GetStats returns lifetime counts for an employee of adminID.
func (s *AttendanceService) GetStats(ctx context.Context, adminID, employeeID int64) (domain.AttendanceStats, error) {
	if _, err := s.ownedEmployee(ctx, employeeID, adminID); err != nil {
		return domain.AttendanceStats{}, err
	}

	stats, err := s.Store.Attendance().GetStats(ctx, employeeID)
	if err != nil {
		return domain.AttendanceStats{}, fmt.Errorf("failed to load stats: %w", err)
	}
	return stats, nil
}

// ExportCSV writes the tenant's attendance history to w, newest first.
func (s *AttendanceService) ExportCSV(ctx context.Context, adminID int64, w io.Writer) error {
	rows, err := s.Store.Attendance().ListForExport(ctx, adminID)
	if err != nil {
		return fmt.Errorf("failed to list attendance: %w", err)
	}

	cw := csvx.NewWriter(w)
	if err := cw.WriteHeader(exportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		ts := ""
		if !r.Timestamp.IsZero() {
			ts = r.Timestamp.UTC().Format(exportTimeLayout)
		}
		err := cw.Write([]string{
			strconv.FormatInt(r.AttendanceID, 10),
			strconv.FormatInt(r.EmployeeID, 10),
			r.Name,
			r.Email,
			r.Phone,
			r.Department,
			r.Position,
			string(r.Status),
			ts,
		})
		if err != nil {
			return err
		}
	}
	return cw.Flush()
}

func (s *AttendanceService) ownedEmployee(ctx context.Context, employeeID, adminID int64) (domain.Employee, error) {
	emp, err := s.Store.Employees().GetOwnedEmployee(ctx, employeeID, adminID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Employee{}, ErrEmployeeNotFound
	}
	if err != nil {
		return domain.Employee{}, fmt.Errorf("failed to load employee: %w", err)
	}
	return emp, nil
}
