package service

import (
	"testing"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/stretchr/testify/require"
)

func TestNewCalendar(t *testing.T) {
	t.Parallel()

	t.Run("fixed offset", func(t *testing.T) {
		cal, err := NewCalendar("+03:00", "08:30")
		require.NoError(t, err)

		_, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, cal.Location).Zone()
		require.Equal(t, 3*60*60, offset)
		require.Equal(t, 8*time.Hour+30*time.Minute, cal.Cutoff)
	})

	t.Run("negative offset with seconds cutoff", func(t *testing.T) {
		cal, err := NewCalendar("-05:30", "09:00:15")
		require.NoError(t, err)

		_, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, cal.Location).Zone()
		require.Equal(t, -(5*60*60 + 30*60), offset)
		require.Equal(t, 9*time.Hour+15*time.Second, cal.Cutoff)
	})

	t.Run("utc", func(t *testing.T) {
		cal, err := NewCalendar("", "08:30")
		require.NoError(t, err)
		require.Equal(t, time.UTC, cal.Location)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, tc := range []struct{ offset, cutoff string }{
			{"+3", "08:30"},
			{"+03:00", "8"},
			{"+03:00", "25:00"},
			{"+03:00", "08:61"},
			{"Not/AZone", "08:30"},
		} {
			_, err := NewCalendar(tc.offset, tc.cutoff)
			require.Error(t, err, "offset=%q cutoff=%q", tc.offset, tc.cutoff)
		}
	})
}

func TestCalendarStatusAt(t *testing.T) {
	t.Parallel()

	cal := newTestCalendar(&clock{})

	tests := []struct {
		name string
		at   time.Time
		want domain.AttendanceStatus
	}{
		{"early morning", eatTime(2024, 5, 6, 6, 0, 0), domain.StatusPresent},
		{"exactly at cutoff", eatTime(2024, 5, 6, 8, 30, 0), domain.StatusPresent},
		{"sub-second past cutoff", eatTime(2024, 5, 6, 8, 30, 0).Add(900 * time.Millisecond), domain.StatusPresent},
		{"one second past cutoff", eatTime(2024, 5, 6, 8, 30, 1), domain.StatusLate},
		{"afternoon", eatTime(2024, 5, 6, 14, 0, 0), domain.StatusLate},
		{"utc input converted", time.Date(2024, 5, 6, 5, 29, 59, 0, time.UTC), domain.StatusPresent},
		{"utc input late", time.Date(2024, 5, 6, 5, 31, 0, 0, time.UTC), domain.StatusLate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, cal.StatusAt(tc.at))
		})
	}
}

func TestCalendarDates(t *testing.T) {
	t.Parallel()

	c := &clock{t: time.Date(2024, 5, 6, 22, 15, 0, 0, time.UTC)}
	cal := newTestCalendar(c)

	// 22:15 UTC is already the next local day.
	require.Equal(t, "2024-05-07", cal.Today())
	require.Equal(t, "2024-05-06", cal.DateOf(time.Date(2024, 5, 6, 20, 59, 59, 0, time.UTC)))

	start, err := cal.DayStart("2024-05-07")
	require.NoError(t, err)
	require.True(t, start.Equal(time.Date(2024, 5, 6, 21, 0, 0, 0, time.UTC)))

	_, err = cal.DayStart("07/05/2024")
	require.Error(t, err)
}
