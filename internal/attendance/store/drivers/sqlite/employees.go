package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/store/drivers/sqlite/gen"
)

type employeesRepo struct {
	q *gen.Queries
}

func (r *employeesRepo) CreateEmployee(ctx context.Context, e domain.Employee) (int64, error) {
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	id, err := r.q.CreateEmployee(ctx, gen.CreateEmployeeParams{
		AdminID:    e.AdminID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   mapStringNull(e.Position),
		Department: mapStringNull(e.Department),
		QrCode:     e.QRCode,
		CreatedAt:  formatTime(createdAt),
	})
	if err != nil {
		return 0, mapConstraint(err)
	}
	return id, nil
}

func (r *employeesRepo) UpdateQRCode(ctx context.Context, employeeID int64, payload string) error {
	return mapAffected(r.q.UpdateEmployeeQRCode(ctx, payload, formatTime(time.Now()), employeeID))
}

func (r *employeesRepo) GetEmployeeByID(ctx context.Context, id int64) (domain.Employee, error) {
	row, err := r.q.GetEmployeeByID(ctx, id)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return mapEmployee(row), nil
}

func (r *employeesRepo) GetOwnedEmployee(ctx context.Context, id, adminID int64) (domain.Employee, error) {
	row, err := r.q.GetOwnedEmployee(ctx, id, adminID)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return mapEmployee(row), nil
}

func (r *employeesRepo) GetEmployeeByEmail(ctx context.Context, email string) (domain.Employee, error) {
	row, err := r.q.GetEmployeeByEmail(ctx, email)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return mapEmployee(row), nil
}

func (r *employeesRepo) ListEmployees(ctx context.Context, adminID int64) ([]domain.Employee, error) {
	rows, err := r.q.ListEmployees(ctx, adminID)
	if err != nil {
		return nil, err
	}
	return mapEmployees(rows), nil
}

func (r *employeesRepo) SearchEmployees(ctx context.Context, adminID int64, term string, limit int) ([]domain.Employee, error) {
	rows, err := r.q.SearchEmployees(ctx, gen.SearchEmployeesParams{
		AdminID:  adminID,
		Contains: "%" + escapeLike(term) + "%",
		Prefix:   escapeLike(term) + "%",
		Exact:    term,
		Limit:    int64(limit),
	})
	if err != nil {
		return nil, err
	}
	return mapEmployees(rows), nil
}

func (r *employeesRepo) SuggestEmployees(ctx context.Context, adminID int64, term string, limit int) ([]domain.Employee, error) {
	rows, err := r.q.SuggestEmployees(ctx, adminID, "%"+escapeLike(term)+"%", int64(limit))
	if err != nil {
		return nil, err
	}
	return mapEmployees(rows), nil
}

func (r *employeesRepo) DeleteEmployee(ctx context.Context, id, adminID int64) error {
	return mapAffected(r.q.DeleteEmployee(ctx, id, adminID))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term match literally inside a LIKE pattern with
// ESCAPE '\'.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
