package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDecomposeInterval verifies the calendar-aware month/day/hour split,
// including end-of-month normalization and direction independence.
func TestDecomposeInterval(t *testing.T) {
	tests := []struct {
		name       string
		from       time.Time
		to         time.Time
		wantMonths int
		wantDays   int
		wantHours  int
	}{
		{
			name:       "Exact two months",
			from:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			to:         time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			wantMonths: 2,
		},
		{
			name: "End of month overflow collapses to days",
			// Jan 31 + 1 month normalizes past Mar 1, so no whole month fits.
			from:     time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			wantDays: 29,
		},
		{
			name:      "Days and hours remainder",
			from:      time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
			to:        time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC),
			wantDays:  3,
			wantHours: 5,
		},
		{
			name:       "Months days and hours",
			from:       time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC),
			to:         time.Date(2025, 3, 12, 11, 0, 0, 0, time.UTC),
			wantMonths: 2,
			wantDays:   2,
			wantHours:  3,
		},
		{
			name: "Zero interval",
			from: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:       "Reversed interval yields the same magnitudes",
			from:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			to:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantMonths: 2,
		},
		{
			name:       "Leap February counts as one month",
			from:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			to:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantMonths: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months, days, hours := decomposeInterval(tt.from, tt.to)
			assert.Equal(t, tt.wantMonths, months, "months")
			assert.Equal(t, tt.wantDays, days, "days")
			assert.Equal(t, tt.wantHours, hours, "hours")
		})
	}
}

// TestWholeDays pins the midnight-to-midnight counting rule: the count only
// changes when a day boundary is crossed, never after 24 wall-clock hours.
func TestWholeDays(t *testing.T) {
	cal := Gregorian{}

	tests := []struct {
		name string
		now  time.Time
		tgt  time.Time
		want int
	}{
		{
			name: "Same day late vs early",
			now:  time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC),
			tgt:  time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "One minute across midnight",
			now:  time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC),
			tgt:  time.Date(2025, 6, 16, 0, 1, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "Target in the past",
			now:  time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			tgt:  time.Date(2025, 6, 10, 22, 0, 0, 0, time.UTC),
			want: -5,
		},
		{
			name: "Full year ahead",
			now:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			tgt:  time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			want: 364,
		},
		{
			name: "Full leap year ahead",
			now:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			tgt:  time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			want: 365,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wholeDays(cal.StartOfDay(tt.now), cal.StartOfDay(tt.tgt))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestElapsedFraction_Bounds(t *testing.T) {
	iv := Interval{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	atStart := elapsedFraction(iv.Start, iv)
	assert.Equal(t, 0.0, atStart)

	justBefore := elapsedFraction(iv.End.Add(-time.Second), iv)
	assert.Less(t, justBefore, 1.0)
	assert.Greater(t, justBefore, 0.999)

	// Out-of-interval instants clamp instead of escaping [0,1).
	assert.Equal(t, 0.0, elapsedFraction(iv.Start.Add(-time.Hour), iv))
	assert.Less(t, elapsedFraction(iv.End.Add(time.Hour), iv), 1.0)
}

func TestElapsedFraction_Monotonic(t *testing.T) {
	iv := Interval{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	prev := -1.0
	for d := 0; d < 365; d += 30 {
		frac := elapsedFraction(iv.Start.AddDate(0, 0, d), iv)
		assert.GreaterOrEqual(t, frac, prev, "year progress must not decrease within a year")
		prev = frac
	}
}

func TestGregorian_WeekOfYear(t *testing.T) {
	cal := Gregorian{}

	// 2025-01-01 is a Wednesday; the first Sunday is Jan 5.
	assert.Equal(t, 1, cal.WeekOfYear(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, cal.WeekOfYear(time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2, cal.WeekOfYear(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)))

	// Jan 1 is always week 1 of its own year, unlike ISO 8601.
	assert.Equal(t, 1, cal.WeekOfYear(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestGregorian_DayOfYear(t *testing.T) {
	cal := Gregorian{}

	day, total := cal.DayOfYear(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 365, day)
	assert.Equal(t, 365, total)

	day, total = cal.DayOfYear(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 61, day, "leap year shifts March 1st to day 61")
	assert.Equal(t, 366, total)
}

func TestGregorian_QuarterInterval(t *testing.T) {
	cal := Gregorian{}

	tests := []struct {
		month       time.Month
		wantQuarter int
		wantStart   time.Month
	}{
		{time.January, 1, time.January},
		{time.March, 1, time.January},
		{time.April, 2, time.April},
		{time.September, 3, time.July},
		{time.December, 4, time.October},
	}

	for _, tt := range tests {
		iv, q, err := cal.QuarterInterval(time.Date(2025, tt.month, 15, 0, 0, 0, 0, time.UTC))
		assert.NoError(t, err)
		assert.Equal(t, tt.wantQuarter, q)
		assert.Equal(t, tt.wantStart, iv.Start.Month())
		assert.Equal(t, iv.Start.AddDate(0, 3, 0), iv.End)
	}
}

func TestDefaultTarget(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	want := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, DefaultTarget(now))
}
