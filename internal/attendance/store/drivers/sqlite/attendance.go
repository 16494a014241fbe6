package sqlite

import (
	"context"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/store/drivers/sqlite/gen"
)

type attendanceRepo struct {
	q *gen.Queries
}

func (r *attendanceRepo) CreateAttendance(ctx context.Context, a domain.Attendance) (int64, error) {
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	id, err := r.q.CreateAttendance(ctx, gen.CreateAttendanceParams{
		EmployeeID:     a.EmployeeID,
		Status:         string(a.Status),
		Timestamp:      formatTime(a.Timestamp),
		AttendanceDate: a.Date,
		Notes:          mapStringNull(a.Notes),
		CreatedAt:      formatTime(createdAt),
	})
	if err != nil {
		return 0, mapConstraint(err)
	}
	return id, nil
}

func (r *attendanceRepo) GetAttendanceForDate(ctx context.Context, employeeID int64, date string) (domain.Attendance, error) {
	row, err := r.q.GetAttendanceForDate(ctx, employeeID, date)
	if err != nil {
		return domain.Attendance{}, mapNotFound(err)
	}
	return mapAttendance(row), nil
}

func (r *attendanceRepo) UpdateAttendanceStatus(ctx context.Context, id int64, status domain.AttendanceStatus, notes string) error {
	return mapAffected(r.q.UpdateAttendanceStatus(ctx, gen.UpdateAttendanceStatusParams{
		Status:       string(status),
		Notes:        mapStringNull(notes),
		UpdatedAt:    formatTime(time.Now()),
		AttendanceID: id,
	}))
}

func (r *attendanceRepo) GetStats(ctx context.Context, employeeID int64) (domain.AttendanceStats, error) {
	row, err := r.q.GetAttendanceStats(ctx, employeeID)
	if err != nil {
		return domain.AttendanceStats{}, err
	}
	return domain.AttendanceStats{
		TotalDays:   int(row.TotalDays),
		PresentDays: int(row.PresentDays),
		LateDays:    int(row.LateDays),
		AbsentDays:  int(row.AbsentDays),
	}, nil
}

func (r *attendanceRepo) DeleteEmployeeAttendance(ctx context.Context, employeeID int64) error {
	return r.q.DeleteEmployeeAttendance(ctx, employeeID)
}

func (r *attendanceRepo) ListForExport(ctx context.Context, adminID int64) ([]domain.AttendanceExportRow, error) {
	rows, err := r.q.ListAttendanceForExport(ctx, adminID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AttendanceExportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.AttendanceExportRow{
			AttendanceID: row.AttendanceID,
			EmployeeID:   row.EmployeeID,
			Name:         row.Name,
			Email:        row.Email,
			Phone:        row.Phone,
			Department:   mapNullString(row.Department),
			Position:     mapNullString(row.Position),
			Status:       domain.AttendanceStatus(row.Status),
			Timestamp:    parseTime(row.Timestamp),
		})
	}
	return out, nil
}
