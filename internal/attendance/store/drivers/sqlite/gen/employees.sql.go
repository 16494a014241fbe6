package gen

import (
	"context"
	"database/sql"
)

const employeeColumns = `employee_id, admin_id, name, email, phone, position, department, qr_code, created_at, updated_at`

func scanEmployee(row interface{ Scan(...any) error }) (Employee, error) {
	var i Employee
	err := row.Scan(
		&i.EmployeeID,
		&i.AdminID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Position,
		&i.Department,
		&i.QrCode,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func (q *Queries) queryEmployees(ctx context.Context, query string, args ...any) ([]Employee, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Employee{}
	for rows.Next() {
		i, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createEmployee = `-- name: CreateEmployee :one
INSERT INTO employees (admin_id, name, email, phone, position, department, qr_code, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING employee_id`

type CreateEmployeeParams struct {
	AdminID    int64
	Name       string
	Email      string
	Phone      string
	Position   sql.NullString
	Department sql.NullString
	QrCode     string
	CreatedAt  string
}

func (q *Queries) CreateEmployee(ctx context.Context, arg CreateEmployeeParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createEmployee,
		arg.AdminID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Position,
		arg.Department,
		arg.QrCode,
		arg.CreatedAt,
		arg.CreatedAt,
	)
	var employeeID int64
	err := row.Scan(&employeeID)
	return employeeID, err
}

const updateEmployeeQRCode = `-- name: UpdateEmployeeQRCode :execrows
UPDATE employees SET qr_code = ?, updated_at = ? WHERE employee_id = ?`

func (q *Queries) UpdateEmployeeQRCode(ctx context.Context, qrCode, updatedAt string, employeeID int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateEmployeeQRCode, qrCode, updatedAt, employeeID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getEmployeeByID = `-- name: GetEmployeeByID :one
SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = ?`

func (q *Queries) GetEmployeeByID(ctx context.Context, employeeID int64) (Employee, error) {
	return scanEmployee(q.db.QueryRowContext(ctx, getEmployeeByID, employeeID))
}

const getOwnedEmployee = `-- name: GetOwnedEmployee :one
SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = ? AND admin_id = ?`

func (q *Queries) GetOwnedEmployee(ctx context.Context, employeeID, adminID int64) (Employee, error) {
	return scanEmployee(q.db.QueryRowContext(ctx, getOwnedEmployee, employeeID, adminID))
}

const getEmployeeByEmail = `-- name: GetEmployeeByEmail :one
SELECT ` + employeeColumns + ` FROM employees WHERE email = ?`

func (q *Queries) GetEmployeeByEmail(ctx context.Context, email string) (Employee, error) {
	return scanEmployee(q.db.QueryRowContext(ctx, getEmployeeByEmail, email))
}

const listEmployees = `-- name: ListEmployees :many
SELECT ` + employeeColumns + ` FROM employees WHERE admin_id = ? ORDER BY name, employee_id`

func (q *Queries) ListEmployees(ctx context.Context, adminID int64) ([]Employee, error) {
	return q.queryEmployees(ctx, listEmployees, adminID)
}

const searchEmployees = `-- name: SearchEmployees :many
SELECT ` + employeeColumns + `
FROM employees
WHERE admin_id = ?1
  AND (name LIKE ?2 ESCAPE '\' OR email LIKE ?2 ESCAPE '\' OR CAST(employee_id AS TEXT) LIKE ?2 ESCAPE '\' OR phone LIKE ?2 ESCAPE '\')
ORDER BY
    CASE
        WHEN CAST(employee_id AS TEXT) = ?4 THEN 0
        WHEN name LIKE ?3 ESCAPE '\' THEN 1
        WHEN email LIKE ?3 ESCAPE '\' THEN 2
        ELSE 3
    END,
    name
LIMIT ?5`

type SearchEmployeesParams struct {
	AdminID  int64
	Contains string // %term%
	Prefix   string // term%
	Exact    string
	Limit    int64
}

func (q *Queries) SearchEmployees(ctx context.Context, arg SearchEmployeesParams) ([]Employee, error) {
	return q.queryEmployees(ctx, searchEmployees,
		arg.AdminID,
		arg.Contains,
		arg.Prefix,
		arg.Exact,
		arg.Limit,
	)
}

const suggestEmployees = `-- name: SuggestEmployees :many
SELECT ` + employeeColumns + `
FROM employees
WHERE (?1 = 0 OR admin_id = ?1)
  AND (CAST(employee_id AS TEXT) LIKE ?2 ESCAPE '\' OR name LIKE ?2 ESCAPE '\' OR email LIKE ?2 ESCAPE '\')
ORDER BY name
LIMIT ?3`

func (q *Queries) SuggestEmployees(ctx context.Context, adminID int64, contains string, limit int64) ([]Employee, error) {
	return q.queryEmployees(ctx, suggestEmployees, adminID, contains, limit)
}

const dashboardSearchEmployees = `-- name: DashboardSearchEmployees :many
SELECT ` + employeeColumns + `
FROM employees
WHERE admin_id = ?1 AND (name LIKE ?2 ESCAPE '\' OR email LIKE ?2 ESCAPE '\' OR phone LIKE ?2 ESCAPE '\')
ORDER BY name
LIMIT ?3`

func (q *Queries) DashboardSearchEmployees(ctx context.Context, adminID int64, contains string, limit int64) ([]Employee, error) {
	return q.queryEmployees(ctx, dashboardSearchEmployees, adminID, contains, limit)
}

const deleteEmployee = `-- name: DeleteEmployee :execrows
DELETE FROM employees WHERE employee_id = ? AND admin_id = ?`

func (q *Queries) DeleteEmployee(ctx context.Context, employeeID, adminID int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteEmployee, employeeID, adminID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const countEmployees = `-- name: CountEmployees :one
SELECT COUNT(*) FROM employees WHERE admin_id = ?`

func (q *Queries) CountEmployees(ctx context.Context, adminID int64) (int64, error) {
	row := q.db.QueryRowContext(ctx, countEmployees, adminID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countEmployeesCreatedBetween = `-- name: CountEmployeesCreatedBetween :one
SELECT COUNT(*) FROM employees WHERE admin_id = ? AND created_at >= ? AND created_at < ?`

func (q *Queries) CountEmployeesCreatedBetween(ctx context.Context, adminID int64, from, to string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countEmployeesCreatedBetween, adminID, from, to)
	var count int64
	err := row.Scan(&count)
	return count, err
}
