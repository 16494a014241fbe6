package gen

import (
	"context"
	"database/sql"
)

const statusCountsOnDate = `-- name: StatusCountsOnDate :one
SELECT
    COALESCE(SUM(present_count), 0),
    COALESCE(SUM(late_count), 0),
    COALESCE(SUM(absent_count), 0)
FROM daily_stats
WHERE admin_id = ? AND attendance_date = ?`

type StatusCountsRow struct {
	Present int64
	Late    int64
	Absent  int64
}

func (q *Queries) StatusCountsOnDate(ctx context.Context, adminID int64, date string) (StatusCountsRow, error) {
	row := q.db.QueryRowContext(ctx, statusCountsOnDate, adminID, date)
	var i StatusCountsRow
	err := row.Scan(&i.Present, &i.Late, &i.Absent)
	return i, err
}

const statusCountsByDate = `-- name: StatusCountsByDate :many
SELECT attendance_date, present_count, late_count, absent_count
FROM daily_stats
WHERE admin_id = ? AND attendance_date BETWEEN ? AND ?
ORDER BY attendance_date`

type StatusCountsByDateRow struct {
	AttendanceDate string
	StatusCountsRow
}

func (q *Queries) StatusCountsByDate(ctx context.Context, adminID int64, fromDate, toDate string) ([]StatusCountsByDateRow, error) {
	rows, err := q.db.QueryContext(ctx, statusCountsByDate, adminID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []StatusCountsByDateRow{}
	for rows.Next() {
		var i StatusCountsByDateRow
		if err := rows.Scan(&i.AttendanceDate, &i.Present, &i.Late, &i.Absent); err != nil {
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

const employeeStatusOnDate = `-- name: EmployeeStatusOnDate :many
SELECT
    e.employee_id, e.name, e.email, e.phone, e.position, e.department,
    a.status, a.timestamp, a.attendance_id
FROM employees e
LEFT JOIN attendance a ON a.employee_id = e.employee_id AND a.attendance_date = ?2
WHERE e.admin_id = ?1
ORDER BY e.name, e.employee_id`

type EmployeeStatusOnDateRow struct {
	EmployeeID   int64
	Name         string
	Email        string
	Phone        string
	Position     sql.NullString
	Department   sql.NullString
	Status       sql.NullString
	Timestamp    sql.NullString
	AttendanceID sql.NullInt64
}

func (q *Queries) EmployeeStatusOnDate(ctx context.Context, adminID int64, date string) ([]EmployeeStatusOnDateRow, error) {
	rows, err := q.db.QueryContext(ctx, employeeStatusOnDate, adminID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []EmployeeStatusOnDateRow{}
	for rows.Next() {
		var i EmployeeStatusOnDateRow
		if err := rows.Scan(
			&i.EmployeeID,
			&i.Name,
			&i.Email,
			&i.Phone,
			&i.Position,
			&i.Department,
			&i.Status,
			&i.Timestamp,
			&i.AttendanceID,
		); err != nil {
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

const recentAttendance = `-- name: RecentAttendance :many
SELECT e.name, a.status, a.timestamp
FROM attendance a
JOIN employees e ON e.employee_id = a.employee_id
WHERE e.admin_id = ? AND a.timestamp >= ?
ORDER BY a.timestamp DESC
LIMIT ?`

type RecentAttendanceRow struct {
	Name      string
	Status    string
	Timestamp string
}

func (q *Queries) RecentAttendance(ctx context.Context, adminID int64, since string, limit int64) ([]RecentAttendanceRow, error) {
	rows, err := q.db.QueryContext(ctx, recentAttendance, adminID, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []RecentAttendanceRow{}
	for rows.Next() {
		var i RecentAttendanceRow
		if err := rows.Scan(&i.Name, &i.Status, &i.Timestamp); err != nil {
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

const recentEmployees = `-- name: RecentEmployees :many
SELECT name, created_at
FROM employees
WHERE admin_id = ? AND created_at >= ?
ORDER BY created_at DESC
LIMIT ?`

type RecentEmployeesRow struct {
	Name      string
	CreatedAt string
}

func (q *Queries) RecentEmployees(ctx context.Context, adminID int64, since string, limit int64) ([]RecentEmployeesRow, error) {
	rows, err := q.db.QueryContext(ctx, recentEmployees, adminID, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []RecentEmployeesRow{}
	for rows.Next() {
		var i RecentEmployeesRow
		if err := rows.Scan(&i.Name, &i.CreatedAt); err != nil {
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

const employeeCountsBetween = `-- name: EmployeeCountsBetween :many
SELECT
    e.employee_id, e.name, e.email,
    COALESCE(SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END), 0) AS present,
    COALESCE(SUM(CASE WHEN a.status = 'Late' THEN 1 ELSE 0 END), 0) AS late,
    COALESCE(SUM(CASE WHEN a.status = 'Absent' THEN 1 ELSE 0 END), 0) AS absent
FROM employees e
LEFT JOIN attendance a
    ON a.employee_id = e.employee_id
    AND a.attendance_date BETWEEN ?2 AND ?3
WHERE e.admin_id = ?1
GROUP BY e.employee_id, e.name, e.email
ORDER BY e.name, e.employee_id`

type EmployeeCountsBetweenRow struct {
	EmployeeID int64
	Name       string
	Email      string
	StatusCountsRow
}

func (q *Queries) EmployeeCountsBetween(ctx context.Context, adminID int64, fromDate, toDate string) ([]EmployeeCountsBetweenRow, error) {
	rows, err := q.db.QueryContext(ctx, employeeCountsBetween, adminID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []EmployeeCountsBetweenRow{}
	for rows.Next() {
		var i EmployeeCountsBetweenRow
		if err := rows.Scan(
			&i.EmployeeID,
			&i.Name,
			&i.Email,
			&i.Present,
			&i.Late,
			&i.Absent,
		); err != nil {
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
