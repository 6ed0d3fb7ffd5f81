package engine

import (
	"errors"
	"time"

	"github.com/oyeong011/go-dday/internal/config"
)

// Interval is a half-open time span [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns the total length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Calendar provides the boundaries and ordinal rules the engine depends on.
// Implementations must be pure: same input, same output, no I/O.
type Calendar interface {
	// StartOfDay truncates t to its local midnight.
	StartOfDay(t time.Time) time.Time

	// YearInterval returns the year containing t.
	YearInterval(t time.Time) (Interval, error)

	// QuarterInterval returns the calendar quarter containing t and its
	// ordinal number (1-4).
	QuarterInterval(t time.Time) (Interval, int, error)

	// DayOfYear returns the ordinal day of t within its year and the total
	// day count of that year.
	DayOfYear(t time.Time) (day, total int)

	// WeekOfYear returns the ordinal week of t within its year.
	WeekOfYear(t time.Time) int
}

// Gregorian implements Calendar with the rules of the standard time package.
// Weeks start on Sunday and week 1 is the week containing January 1st, so
// the week ordinal always belongs to the year of t itself.
type Gregorian struct{}

func (Gregorian) StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (Gregorian) YearInterval(t time.Time) (Interval, error) {
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(1, 0, 0)
	if !end.After(start) {
		return Interval{}, errors.New(config.ErrYearInterval)
	}
	return Interval{Start: start, End: end}, nil
}

func (Gregorian) QuarterInterval(t time.Time) (Interval, int, error) {
	quarter := (int(t.Month())-1)/3 + 1
	startMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(t.Year(), startMonth, 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 3, 0)
	if !end.After(start) {
		return Interval{}, 0, errors.New(config.ErrQuarterInterval)
	}
	return Interval{Start: start, End: end}, quarter, nil
}

func (Gregorian) DayOfYear(t time.Time) (int, int) {
	total := time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location()).YearDay()
	return t.YearDay(), total
}

func (Gregorian) WeekOfYear(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	// Offset by the weekday of Jan 1 so week boundaries fall on Sundays.
	return (t.YearDay()+int(jan1.Weekday())-1)/7 + 1
}

// DefaultTarget returns the documented default target date: the last day of
// the year containing now.
func DefaultTarget(now time.Time) time.Time {
	return time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
}

// decomposeInterval splits the span between from and to into calendar-aware
// months, whole days and whole hours. Months are variable-length: the month
// count is the largest m such that from+m months does not pass to.
// The result is the magnitude of the interval regardless of direction.
func decomposeInterval(from, to time.Time) (months, days, hours int) {
	if to.Before(from) {
		from, to = to, from
	}

	months = (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	// AddDate normalizes end-of-month overflow (Jan 31 + 1 month lands in
	// March), so step back until the month anchor no longer passes to.
	for months > 0 && from.AddDate(0, months, 0).After(to) {
		months--
	}

	anchor := from.AddDate(0, months, 0)
	for !anchor.AddDate(0, 0, days+1).After(to) {
		days++
	}
	anchor = anchor.AddDate(0, 0, days)

	hours = int(to.Sub(anchor).Hours())
	return months, days, hours
}
