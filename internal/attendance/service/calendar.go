package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
)

const dateLayout = "2006-01-02"

// Calendar maps instants onto the organisation's local working day. All
// stored timestamps stay UTC; only day boundaries and the late cutoff are
// evaluated in Location.
type Calendar struct {
	Location *time.Location
	Cutoff   time.Duration // offset from local midnight after which arrivals are Late
	Now      func() time.Time
}

// NewCalendar builds a Calendar from an offset such as "+03:00" (or an IANA
// zone name) and a cutoff such as "08:30" or "08:30:00".
func NewCalendar(offset, cutoff string) (*Calendar, error) {
	loc, err := parseLocation(offset)
	if err != nil {
		return nil, err
	}
	cut, err := parseClock(cutoff)
	if err != nil {
		return nil, err
	}
	return &Calendar{Location: loc, Cutoff: cut, Now: time.Now}, nil
}

func (c *Calendar) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Local converts t into the calendar's zone.
func (c *Calendar) Local(t time.Time) time.Time {
	return t.In(c.Location)
}

// DateOf returns the local calendar day of t as YYYY-MM-DD.
func (c *Calendar) DateOf(t time.Time) string {
	return c.Local(t).Format(dateLayout)
}

// Today returns the current local calendar day.
func (c *Calendar) Today() string {
	return c.DateOf(c.now())
}

// DayStart returns local midnight of date.
func (c *Calendar) DayStart(date string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, date, c.Location)
}

// StatusAt is Late when the local wall clock, truncated to the second, is
// strictly after the cutoff. Absent is never computed here.
func (c *Calendar) StatusAt(t time.Time) domain.AttendanceStatus {
	local := c.Local(t)
	sinceMidnight := time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second

	if sinceMidnight > c.Cutoff {
		return domain.StatusLate
	}
	return domain.StatusPresent
}

func parseLocation(offset string) (*time.Location, error) {
	offset = strings.TrimSpace(offset)
	if offset == "" || strings.EqualFold(offset, "UTC") || offset == "Z" {
		return time.UTC, nil
	}

	if offset[0] == '+' || offset[0] == '-' {
		d, err := parseClock(offset[1:])
		if err != nil {
			return nil, fmt.Errorf("invalid UTC offset %q: %w", offset, err)
		}
		secs := int(d / time.Second)
		if offset[0] == '-' {
			secs = -secs
		}
		return time.FixedZone("UTC"+offset, secs), nil
	}

	loc, err := time.LoadLocation(offset)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", offset, err)
	}
	return loc, nil
}

// parseClock reads HH:MM or HH:MM:SS as a duration since midnight.
func parseClock(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock %q: want HH:MM[:SS]", s)
	}

	limits := []int{24, 60, 60}
	units := []time.Duration{time.Hour, time.Minute, time.Second}

	var d time.Duration
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n >= limits[i] {
			return 0, fmt.Errorf("invalid clock %q", s)
		}
		d += time.Duration(n) * units[i]
	}
	return d, nil
}
