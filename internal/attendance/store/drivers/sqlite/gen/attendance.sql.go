package gen

import (
	"context"
	"database/sql"
)

const createAttendance = `-- name: CreateAttendance :one
INSERT INTO attendance (employee_id, status, timestamp, attendance_date, notes, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING attendance_id`

type CreateAttendanceParams struct {
	EmployeeID     int64
	Status         string
	Timestamp      string
	AttendanceDate string
	Notes          sql.NullString
	CreatedAt      string
}

func (q *Queries) CreateAttendance(ctx context.Context, arg CreateAttendanceParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createAttendance,
		arg.EmployeeID,
		arg.Status,
		arg.Timestamp,
		arg.AttendanceDate,
		arg.Notes,
		arg.CreatedAt,
		arg.CreatedAt,
	)
	var attendanceID int64
	err := row.Scan(&attendanceID)
	return attendanceID, err
}

const getAttendanceForDate = `-- name: GetAttendanceForDate :one
SELECT attendance_id, employee_id, status, timestamp, attendance_date, notes, created_at, updated_at
FROM attendance
WHERE employee_id = ? AND attendance_date = ?
ORDER BY timestamp DESC
LIMIT 1`

func (q *Queries) GetAttendanceForDate(ctx context.Context, employeeID int64, date string) (Attendance, error) {
	row := q.db.QueryRowContext(ctx, getAttendanceForDate, employeeID, date)
	var i Attendance
	err := row.Scan(
		&i.AttendanceID,
		&i.EmployeeID,
		&i.Status,
		&i.Timestamp,
		&i.AttendanceDate,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateAttendanceStatus = `-- name: UpdateAttendanceStatus :execrows
UPDATE attendance SET status = ?, notes = ?, updated_at = ? WHERE attendance_id = ?`

type UpdateAttendanceStatusParams struct {
	Status       string
	Notes        sql.NullString
	UpdatedAt    string
	AttendanceID int64
}

func (q *Queries) UpdateAttendanceStatus(ctx context.Context, arg UpdateAttendanceStatusParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateAttendanceStatus,
		arg.Status,
		arg.Notes,
		arg.UpdatedAt,
		arg.AttendanceID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getAttendanceStats = `-- name: GetAttendanceStats :one
SELECT
    COUNT(*) AS total_days,
    COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) AS present_days,
    COALESCE(SUM(CASE WHEN status = 'Late' THEN 1 ELSE 0 END), 0) AS late_days,
    COALESCE(SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END), 0) AS absent_days
FROM attendance
WHERE employee_id = ?`

type GetAttendanceStatsRow struct {
	TotalDays   int64
	PresentDays int64
	LateDays    int64
	AbsentDays  int64
}

func (q *Queries) GetAttendanceStats(ctx context.Context, employeeID int64) (GetAttendanceStatsRow, error) {
	row := q.db.QueryRowContext(ctx, getAttendanceStats, employeeID)
	var i GetAttendanceStatsRow
	err := row.Scan(
		&i.TotalDays,
		&i.PresentDays,
		&i.LateDays,
		&i.AbsentDays,
	)
	return i, err
}

const deleteEmployeeAttendance = `-- name: DeleteEmployeeAttendance :exec
DELETE FROM attendance WHERE employee_id = ?`

func (q *Queries) DeleteEmployeeAttendance(ctx context.Context, employeeID int64) error {
	_, err := q.db.ExecContext(ctx, deleteEmployeeAttendance, employeeID)
	return err
}

const listAttendanceForExport = `-- name: ListAttendanceForExport :many
SELECT
    a.attendance_id, a.employee_id, e.name, e.email, e.phone,
    e.department, e.position, a.status, a.timestamp
FROM attendance a
JOIN employees e ON e.employee_id = a.employee_id
WHERE e.admin_id = ?
ORDER BY a.timestamp DESC, a.attendance_id DESC`

type ListAttendanceForExportRow struct {
	AttendanceID int64
	EmployeeID   int64
	Name         string
	Email        string
	Phone        string
	Department   sql.NullString
	Position     sql.NullString
	Status       string
	Timestamp    string
}

func (q *Queries) ListAttendanceForExport(ctx context.Context, adminID int64) ([]ListAttendanceForExportRow, error) {
	rows, err := q.db.QueryContext(ctx, listAttendanceForExport, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListAttendanceForExportRow{}
	for rows.Next() {
		var i ListAttendanceForExportRow
		if err := rows.Scan(
			&i.AttendanceID,
			&i.EmployeeID,
			&i.Name,
			&i.Email,
			&i.Phone,
			&i.Department,
			&i.Position,
			&i.Status,
			&i.Timestamp,
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
