package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/store"
)

const (
	defaultTrendDays = 7
	maxTrendDays     = 366

	recentWindow           = 7 * 24 * time.Hour
	recentAttendanceLimit  = 10
	recentEmployeesLimit   = 5
	recentActivityCapacity = 15

	trendLabelLayout = "Jan 2"
)

type DashboardService struct {
	Store    store.Store
	Calendar *Calendar
}

type DashboardSummary struct {
	TotalEmployees int
	EmployeeGrowth int
	NewToday       int
	PresentToday   int
	PresentRate    int
	LateToday      int
	LateRate       int
	AbsentToday    int
	AbsentRate     int
}

// Trend holds per-day status counts, oldest day first.
type Trend struct {
	Labels  []string
	Present []int
	Late    []int
	Absent  []int
}

// Summary compares today's attendance against yesterday.
func (s *DashboardService) Summary(ctx context.Context, adminID int64) (DashboardSummary, error) {
	reports := s.Store.Reports()

	today := s.Calendar.Today()
	start, err := s.Calendar.DayStart(today)
	if err != nil {
		return DashboardSummary{}, err
	}
	yesterday := start.AddDate(0, 0, -1).Format(dateLayout)

	total, err := reports.CountEmployees(ctx, adminID)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("failed to count employees: %w", err)
	}
	newToday, err := reports.CountEmployeesCreatedBetween(ctx, adminID, start, start.AddDate(0, 0, 1))
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("failed to count new employees: %w", err)
	}
	cur, err := reports.StatusCountsOnDate(ctx, adminID, today)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("failed to count today's attendance: %w", err)
	}
	prev, err := reports.StatusCountsOnDate(ctx, adminID, yesterday)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("failed to count yesterday's attendance: %w", err)
	}

	out := DashboardSummary{
		TotalEmployees: total,
		NewToday:       newToday,
		PresentToday:   cur.Present,
		PresentRate:    changeRate(cur.Present, prev.Present),
		LateToday:      cur.Late,
		LateRate:       changeRate(cur.Late, prev.Late),
		AbsentToday:    cur.Absent,
		AbsentRate:     changeRate(cur.Absent, prev.Absent),
	}
	if total > 0 {
		out.EmployeeGrowth = roundHalfUp(float64(newToday) / float64(total) * 100)
	}
	return out, nil
}

// EmployeeStatus lists every employee with today's status. Employees not yet
// marked are reported as Present.
func (s *DashboardService) EmployeeStatus(ctx context.Context, adminID int64) ([]domain.EmployeeDayStatus, error) {
	rows, err := s.Store.Reports().EmployeeStatusOnDate(ctx, adminID, s.Calendar.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to load employee status: %w", err)
	}

	for i := range rows {
		if rows[i].Status == "" {
			rows[i].Status = domain.StatusPresent
		}
	}
	return rows, nil
}

// RecentActivity merges the last week's attendance events and new employees,
// newest first.
func (s *DashboardService) RecentActivity(ctx context.Context, adminID int64) ([]domain.Activity, error) {
	since := s.Calendar.now().Add(-recentWindow)

	marks, err := s.Store.Reports().RecentAttendance(ctx, adminID, since, recentAttendanceLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent attendance: %w", err)
	}
	added, err := s.Store.Reports().RecentEmployees(ctx, adminID, since, recentEmployeesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent employees: %w", err)
	}

	out := append(marks, added...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if len(out) > recentActivityCapacity {
		out = out[:recentActivityCapacity]
	}
	return out, nil
}

// AttendanceTrend returns zero-filled counts for the trailing days local days
// ending today. Non-positive days falls back to a week.
func (s *DashboardService) AttendanceTrend(ctx context.Context, adminID int64, days int) (Trend, error) {
	if days <= 0 {
		days = defaultTrendDays
	}
	days = min(days, maxTrendDays)

	today, err := s.Calendar.DayStart(s.Calendar.Today())
	if err != nil {
		return Trend{}, err
	}
	first := today.AddDate(0, 0, -(days - 1))

	counts, err := s.Store.Reports().StatusCountsByDate(ctx, adminID, first.Format(dateLayout), today.Format(dateLayout))
	if err != nil {
		return Trend{}, fmt.Errorf("failed to load attendance trend: %w", err)
	}

	t := Trend{
		Labels:  make([]string, 0, days),
		Present: make([]int, 0, days),
		Late:    make([]int, 0, days),
		Absent:  make([]int, 0, days),
	}
	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i)
		c := counts[day.Format(dateLayout)]

		t.Labels = append(t.Labels, day.Format(trendLabelLayout))
		t.Present = append(t.Present, c.Present)
		t.Late = append(t.Late, c.Late)
		t.Absent = append(t.Absent, c.Absent)
	}
	return t, nil
}

// DepartmentPerformance returns today's counts as a single bucket.
func (s *DashboardService) DepartmentPerformance(ctx context.Context, adminID int64) (domain.StatusCounts, error) {
	c, err := s.Store.Reports().StatusCountsOnDate(ctx, adminID, s.Calendar.Today())
	if err != nil {
		return domain.StatusCounts{}, fmt.Errorf("failed to count today's attendance: %w", err)
	}
	return c, nil
}

// SearchEmployees is the dashboard quick search. Short queries return no
// results rather than an error.
func (s *DashboardService) SearchEmployees(ctx context.Context, adminID int64, q string) ([]domain.Employee, error) {
	term := strings.TrimSpace(q)
	if len(term) < searchMinLength {
		return []domain.Employee{}, nil
	}

	emps, err := s.Store.Reports().SearchEmployees(ctx, adminID, term, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	return emps, nil
}

// changeRate is the percentage change from prev to cur, 0 when prev is 0.
func changeRate(cur, prev int) int {
	if prev == 0 {
		return 0
	}
	return roundHalfUp(float64(cur-prev) / float64(prev) * 100)
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
