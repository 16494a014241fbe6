package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/store"
	"github.com/robera20/employee-attendance-management/pkg/slogx"
)

const (
	searchMinLength = 2
	searchLimit     = 10
)

type EmployeeService struct {
	Store store.Store
	QR    *QRService
	Now   func() time.Time
}

type AddEmployeeParams struct {
	Name       string
	Email      string
	Phone      string
	Position   string
	Department string
}

// EmployeeBadge is an employee together with its rendered QR code.
type EmployeeBadge struct {
	Employee domain.Employee
	QRCode   string // PNG data URL
	QRData   string // JSON payload encoded in the image
}

// RegenerateResult summarises a bulk QR regeneration.
type RegenerateResult struct {
	Updated int
	Total   int
}

func (s *EmployeeService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// AddEmployee creates an employee owned by adminID and issues its badge. The
// payload needs the generated id, so the row is written in two steps inside
// one transaction.
func (s *EmployeeService) AddEmployee(ctx context.Context, adminID int64, p AddEmployeeParams) (EmployeeBadge, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)

	if p.Name == "" || p.Email == "" || p.Phone == "" {
		return EmployeeBadge{}, Validation("Name, email, and phone are required")
	}

	if _, err := s.Store.Employees().GetEmployeeByEmail(ctx, p.Email); err == nil {
		return EmployeeBadge{}, ErrEmployeeEmailExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return EmployeeBadge{}, fmt.Errorf("failed to check employee email: %w", err)
	}

	now := s.now()
	placeholder, err := BuildQRPayload(now.UnixMilli(), p.Name)
	if err != nil {
		return EmployeeBadge{}, err
	}

	emp := domain.Employee{
		AdminID:    adminID,
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		Position:   strings.TrimSpace(p.Position),
		Department: strings.TrimSpace(p.Department),
		QRCode:     placeholder,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		id, err := tx.Employees().CreateEmployee(ctx, emp)
		if err != nil {
			return err
		}
		emp.ID = id

		payload, err := BuildQRPayload(id, emp.Name)
		if err != nil {
			return err
		}
		if err := tx.Employees().UpdateQRCode(ctx, id, payload); err != nil {
			return fmt.Errorf("failed to store QR payload: %w", err)
		}
		emp.QRCode = payload
		return nil
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return EmployeeBadge{}, ErrEmployeeEmailExists
	}
	if err != nil {
		return EmployeeBadge{}, fmt.Errorf("failed to create employee: %w", err)
	}

	image, err := s.QR.Render(emp.QRCode)
	if err != nil {
		return EmployeeBadge{}, err
	}

	slogx.FromContext(ctx).Info("employee added", "employee_id", emp.ID)
	return EmployeeBadge{Employee: emp, QRCode: image, QRData: emp.QRCode}, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context, adminID int64) ([]domain.Employee, error) {
	emps, err := s.Store.Employees().ListEmployees(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return emps, nil
}

// SearchEmployees matches q against name, email, id and phone. It returns the
// trimmed term alongside the matches.
func (s *EmployeeService) SearchEmployees(ctx context.Context, adminID int64, q string) ([]domain.Employee, string, error) {
	term := strings.TrimSpace(q)
	if len(term) < searchMinLength {
		return nil, term, Validation("Search query must be at least 2 characters long")
	}

	emps, err := s.Store.Employees().SearchEmployees(ctx, adminID, term, searchLimit)
	if err != nil {
		return nil, term, fmt.Errorf("failed to search employees: %w", err)
	}
	return emps, term, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id, adminID int64) (domain.Employee, error) {
	emp, err := s.Store.Employees().GetOwnedEmployee(ctx, id, adminID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Employee{}, ErrEmployeeNotFound
	}
	if err != nil {
		return domain.Employee{}, fmt.Errorf("failed to load employee: %w", err)
	}
	return emp, nil
}

// RegenerateQR rewrites the employee's payload from its current id and name.
func (s *EmployeeService) RegenerateQR(ctx context.Context, id, adminID int64) (EmployeeBadge, error) {
	emp, err := s.GetEmployee(ctx, id, adminID)
	if err != nil {
		return EmployeeBadge{}, err
	}
	return s.regenerate(ctx, emp)
}

// RegenerateAllQR refreshes every badge of the tenant. Failures are logged
// and skipped.
func (s *EmployeeService) RegenerateAllQR(ctx context.Context, adminID int64) (RegenerateResult, error) {
	log := slogx.FromContext(ctx)

	emps, err := s.ListEmployees(ctx, adminID)
	if err != nil {
		return RegenerateResult{}, err
	}

	res := RegenerateResult{Total: len(emps)}
	for _, emp := range emps {
		if _, err := s.regenerate(ctx, emp); err != nil {
			log.Warn("failed to regenerate QR code", "employee_id", emp.ID, "err", err)
			continue
		}
		res.Updated++
	}

	log.Info("regenerated QR codes", "updated", res.Updated, "total", res.Total)
	return res, nil
}

func (s *EmployeeService) regenerate(ctx context.Context, emp domain.Employee) (EmployeeBadge, error) {
	payload, err := BuildQRPayload(emp.ID, emp.Name)
	if err != nil {
		return EmployeeBadge{}, err
	}
	image, err := s.QR.Render(payload)
	if err != nil {
		return EmployeeBadge{}, err
	}
	if err := s.Store.Employees().UpdateQRCode(ctx, emp.ID, payload); err != nil {
		return EmployeeBadge{}, fmt.Errorf("failed to store QR payload: %w", err)
	}

	emp.QRCode = payload
	return EmployeeBadge{Employee: emp, QRCode: image, QRData: payload}, nil
}

// DeleteEmployee removes the employee with its face data and attendance.
// Dependent rows are cleared first; failures there are only logged since the
// foreign keys cascade anyway.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id, adminID int64) error {
	log := slogx.FromContext(ctx)

	if _, err := s.GetEmployee(ctx, id, adminID); err != nil {
		return err
	}

	if err := s.Store.FaceTraining().DeleteFaceTraining(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Warn("failed to delete face training data", "employee_id", id, "err", err)
	}
	if err := s.Store.Attendance().DeleteEmployeeAttendance(ctx, id); err != nil {
		log.Warn("failed to delete attendance records", "employee_id", id, "err", err)
	}

	err := s.Store.Employees().DeleteEmployee(ctx, id, adminID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrEmployeeNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	log.Info("employee deleted", "employee_id", id)
	return nil
}
