package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/store/drivers/sqlite/gen"
)

type reportsRepo struct {
	q *gen.Queries
}

func (r *reportsRepo) CountEmployees(ctx context.Context, adminID int64) (int, error) {
	n, err := r.q.CountEmployees(ctx, adminID)
	return int(n), err
}

func (r *reportsRepo) CountEmployeesCreatedBetween(ctx context.Context, adminID int64, from, to time.Time) (int, error) {
	n, err := r.q.CountEmployeesCreatedBetween(ctx, adminID, formatTime(from), formatTime(to))
	return int(n), err
}

func (r *reportsRepo) StatusCountsOnDate(ctx context.Context, adminID int64, date string) (domain.StatusCounts, error) {
	row, err := r.q.StatusCountsOnDate(ctx, adminID, date)
	if err != nil {
		return domain.StatusCounts{}, err
	}
	return mapStatusCounts(row), nil
}

func (r *reportsRepo) StatusCountsByDate(ctx context.Context, adminID int64, fromDate, toDate string) (map[string]domain.StatusCounts, error) {
	rows, err := r.q.StatusCountsByDate(ctx, adminID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	out := make(map[string]domain.StatusCounts, len(rows))
	for _, row := range rows {
		out[row.AttendanceDate] = mapStatusCounts(row.StatusCountsRow)
	}
	return out, nil
}

func (r *reportsRepo) EmployeeStatusOnDate(ctx context.Context, adminID int64, date string) ([]domain.EmployeeDayStatus, error) {
	rows, err := r.q.EmployeeStatusOnDate(ctx, adminID, date)
	if err != nil {
		return nil, err
	}

	out := make([]domain.EmployeeDayStatus, 0, len(rows))
	for _, row := range rows {
		item := domain.EmployeeDayStatus{
			EmployeeID: row.EmployeeID,
			Name:       row.Name,
			Email:      row.Email,
			Phone:      row.Phone,
			Position:   mapNullString(row.Position),
			Department: mapNullString(row.Department),
			Status:     domain.AttendanceStatus(mapNullString(row.Status)),
			Timestamp:  mapNullTimePtr(row.Timestamp),
		}
		if row.AttendanceID.Valid {
			id := row.AttendanceID.Int64
			item.AttendanceID = &id
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *reportsRepo) RecentAttendance(ctx context.Context, adminID int64, since time.Time, limit int) ([]domain.Activity, error) {
	rows, err := r.q.RecentAttendance(ctx, adminID, formatTime(since), int64(limit))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Activity{
			Type:        domain.ActivityAttendance,
			Description: fmt.Sprintf("%s marked as %s", row.Name, row.Status),
			Timestamp:   parseTime(row.Timestamp),
		})
	}
	return out, nil
}

func (r *reportsRepo) RecentEmployees(ctx context.Context, adminID int64, since time.Time, limit int) ([]domain.Activity, error) {
	rows, err := r.q.RecentEmployees(ctx, adminID, formatTime(since), int64(limit))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Activity{
			Type:        domain.ActivityEmployee,
			Description: "New employee added: " + row.Name,
			Timestamp:   parseTime(row.CreatedAt),
		})
	}
	return out, nil
}

func (r *reportsRepo) EmployeeCountsBetween(ctx context.Context, adminID int64, fromDate, toDate string) ([]domain.EmployeeReportRow, error) {
	rows, err := r.q.EmployeeCountsBetween(ctx, adminID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	out := make([]domain.EmployeeReportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.EmployeeReportRow{
			EmployeeID:   row.EmployeeID,
			Name:         row.Name,
			Email:        row.Email,
			StatusCounts: mapStatusCounts(row.StatusCountsRow),
		})
	}
	return out, nil
}

func (r *reportsRepo) SearchEmployees(ctx context.Context, adminID int64, term string, limit int) ([]domain.Employee, error) {
	rows, err := r.q.DashboardSearchEmployees(ctx, adminID, "%"+escapeLike(term)+"%", int64(limit))
	if err != nil {
		return nil, err
	}
	return mapEmployees(rows), nil
}
