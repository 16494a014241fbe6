package service

import (
	"context"
	"testing"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/stretchr/testify/require"
)

func TestAttendanceTrendEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	alice := seedAdmin(t, st, "alice")

	c := &clock{t: eatTime(2024, 1, 3, 10, 0, 0)}
	svc := &DashboardService{Store: st, Calendar: newTestCalendar(c)}

	for _, days := range []int{7, 0, -3} {
		trend, err := svc.AttendanceTrend(ctx, alice, days)
		require.NoError(t, err)
		require.Len(t, trend.Labels, 7)
		require.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, trend.Present)
		require.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, trend.Late)
		require.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, trend.Absent)
		require.Equal(t, []string{"Dec 28", "Dec 29", "Dec 30", "Dec 31", "Jan 1", "Jan 2", "Jan 3"}, trend.Labels)
	}
}

func TestAttendanceTrendCounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	alice := seedAdmin(t, st, "alice")
	bob := seedEmployee(t, st, alice, "Bob", "bob@x.com", time.Time{})
	amy := seedEmployee(t, st, alice, "Amy", "amy@x.com", time.Time{})

	seedAttendance(t, st, bob, domain.StatusPresent, eatTime(2024, 5, 5, 8, 0, 0))
	seedAttendance(t, st, amy, domain.StatusLate, eatTime(2024, 5, 5, 9, 0, 0))
	seedAttendance(t, st, bob, domain.StatusAbsent, eatTime(2024, 5, 6, 8, 0, 0))
	// Outside the window.
	seedAttendance(t, st, bob, domain.StatusPresent, eatTime(2024, 5, 1, 8, 0, 0))

	c := &clock{t: eatTime(2024, 5, 6, 12, 0, 0)}
	svc := &DashboardService{Store: st, Calendar: newTestCalendar(c)}

	trend, err := svc.AttendanceTrend(ctx, alice, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"May 4", "May 5", "May 6"}, trend.Labels)
	require.Equal(t, []int{0, 1, 0}, trend.Present)
	require.Equal(t, []int{0, 1, 0}, trend.Late)
	require.Equal(t, []int{0, 0, 1}, trend.Absent)
}

func TestEmployeeStatusDefaultsToPresent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	alice := seedAdmin(t, st, "alice")
	bob := seedEmployee(t, st, alice, "Bob", "bob@x.com", time.Time{})
	seedEmployee(t, st, alice, "Amy", "amy@x.com", time.Time{})
	seedAttendance(t, st, bob, domain.StatusLate, eatTime(2024, 5, 6, 9, 0, 0))
	// Yesterday's mark does not count for today.
	seedAttendance(t, st, bob, domain.StatusAbsent, eatTime(2024, 5, 5, 9, 0, 0))

	c := &clock{t: eatTime(2024, 5, 6, 12, 0, 0)}
	svc := &DashboardService{Store: st, Calendar: newTestCalendar(c)}

	rows, err := svc.EmployeeStatus(ctx, alice)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "Amy", rows[0].Name)
	require.Equal(t, domain.StatusPresent, rows[0].Status)
	require.Nil(t, rows[0].Timestamp)
	require.Nil(t, rows[0].AttendanceID)

	require.Equal(t, "Bob", rows[1].Name)
	require.Equal(t, domain.StatusLate, rows[1].Status)
	require.NotNil(t, rows[1].Timestamp)
	require.NotNil(t, rows[1].AttendanceID)
}

func TestDashboardSummary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	alice := seedAdmin(t, st, "alice")

	today := eatTime(2024, 5, 6, 7, 0, 0)
	yesterday := eatTime(2024, 5, 5, 7, 0, 0)

	e1 := seedEmployee(t, st, alice, "E1", "e1@x.com", yesterday)
	e2 := seedEmployee(t, st, alice, "E2", "e2@x.com", yesterday)
	e3 := seedEmployee(t, st, alice, "E3", "e3@x.com", yesterday)
	e4 := seedEmployee(t, st, alice, "E4", "e4@x.com", today)

	seedAttendance(t, st, e1, domain.StatusPresent, yesterday)
	seedAttendance(t, st, e2, domain.StatusPresent, yesterday)
	seedAttendance(t, st, e3, domain.StatusLate, yesterday)

	seedAttendance(t, st, e1, domain.StatusPresent, today)
	seedAttendance(t, st, e2, domain.StatusPresent, today)
	seedAttendance(t, st, e3, domain.StatusPresent, today)
	seedAttendance(t, st, e4, domain.StatusAbsent, today)

	c := &clock{t: eatTime(2024, 5, 6, 12, 0, 0)}
	svc := &DashboardService{Store: st, Calendar: newTestCalendar(c)}

	sum, err := svc.Summary(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, DashboardSummary{
		TotalEmployees: 4,
		NewToday:       1,
		EmployeeGrowth: 25,
		PresentToday:   3,
		PresentRate:    50,
		LateToday:      0,
		LateRate:       -100,
		AbsentToday:    1,
		AbsentRate:     0,
	}, sum)

	perf, err := svc.DepartmentPerformance(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCounts{Present: 3, Absent: 1}, perf)
}

func TestRecentActivity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	alice := seedAdmin(t, st, "alice")

	now := eatTime(2024, 5, 20, 12, 0, 0)
	old := seedEmployee(t, st, alice, "Old", "old@x.com", now.Add(-30*24*time.Hour))
	fresh := seedEmployee(t, st, alice, "Fresh", "fresh@x.com", now.Add(-1*time.Hour))

	seedAttendance(t, st, old, domain.StatusLate, now.Add(-2*time.Hour))
	seedAttendance(t, st, old, domain.StatusPresent, now.Add(-10*24*time.Hour))
	for i := 1; i <= 12; i++ {
		seedAttendance(t, st, fresh, domain.StatusPresent, now.Add(-time.Duration(i)*24*time.Hour+time.Hour))
	}

	c := &clock{t: now}
	svc := &DashboardService{Store: st, Calendar: newTestCalendar(c)}

	acts, err := svc.RecentActivity(ctx, alice)
	require.NoError(t, err)

	require.Equal(t, domain.ActivityEmployee, acts[0].Type)
	require.Equal(t, "New employee added: Fresh", acts[0].Description)
	require.Equal(t, "Old marked as Late", acts[1].Description)

	for i := 1; i < len(acts); i++ {
		require.False(t, acts[i].Timestamp.After(acts[i-1].Timestamp), "sorted newest first")
		require.True(t, acts[i].Timestamp.After(now.Add(-7*24*time.Hour)))
	}
	// Fresh joining, Old's late mark and Fresh's seven marks inside the week.
	require.Len(t, acts, 9)
}

func TestDashboardSearch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	alice := seedAdmin(t, st, "alice")
	seedEmployee(t, st, alice, "Bob", "bob@x.com", time.Time{})

	svc := &DashboardService{Store: st, Calendar: newTestCalendar(&clock{})}

	found, err := svc.SearchEmployees(ctx, alice, "b")
	require.NoError(t, err)
	require.Empty(t, found)
	require.NotNil(t, found)

	found, err = svc.SearchEmployees(ctx, alice, "555")
	require.NoError(t, err)
	require.Len(t, found, 1)
}

func TestChangeRate(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, changeRate(5, 0))
	require.Equal(t, 50, changeRate(3, 2))
	require.Equal(t, -100, changeRate(0, 3))
	require.Equal(t, 33, changeRate(4, 3))
	require.Equal(t, 3, roundHalfUp(2.5))
	require.Equal(t, -2, roundHalfUp(-2.5))
}
