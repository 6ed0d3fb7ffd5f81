package engine_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/oyeong011/go-dday/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// brokenCalendar simulates a calendar that cannot produce a year interval.
type brokenCalendar struct {
	engine.Gregorian
}

func (brokenCalendar) YearInterval(time.Time) (engine.Interval, error) {
	return engine.Interval{}, errors.New("no year interval")
}

func newEngine(now time.Time) *engine.Engine {
	return &engine.Engine{
		Clock:    MockClock{CurrentTime: now},
		Calendar: engine.Gregorian{},
	}
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestComputeSnapshot_TargetIsToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	e := newEngine(now)

	snap, err := e.ComputeSnapshot(now, engine.IconPie, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, snap.Days)
	assert.Equal(t, "D-Day", snap.DDayText)
	// Months and days are omitted at zero, the hour phrase always remains.
	assert.Equal(t, "0h", snap.RemainingText)
}

func TestComputeSnapshot_FutureAndPast(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	e := newEngine(now)

	tests := []struct {
		name     string
		target   time.Time
		wantDays int
		wantText string
	}{
		{
			name:     "Future by k whole days",
			target:   time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC),
			wantDays: 7,
			wantText: "D-7",
		},
		{
			name:     "Past by k whole days",
			target:   time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC),
			wantDays: -5,
			wantText: "D+5",
		},
		{
			name: "Late evening still counts as tomorrow",
			// 14 hours ahead but across midnight: one calendar day.
			target:   time.Date(2025, 6, 16, 0, 30, 0, 0, time.UTC),
			wantDays: 1,
			wantText: "D-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := e.ComputeSnapshot(tt.target, engine.IconPie, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, snap.Days)
			assert.Equal(t, tt.wantText, snap.DDayText)
		})
	}
}

func TestComputeSnapshot_YearStartBoundary(t *testing.T) {
	// Jan 1 00:00 against Dec 31: the canonical example from the product
	// description. 2025 is not a leap year.
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	e := newEngine(now)

	snap, err := e.ComputeSnapshot(engine.DefaultTarget(now), engine.IconPie, 0)
	require.NoError(t, err)

	assert.Equal(t, 364, snap.Days)
	assert.Equal(t, "D-364", snap.DDayText)
	assert.InDelta(t, 0.0, snap.YearProgress, 1e-9)
	assert.InDelta(t, 0.0, snap.QuarterProgress, 1e-9)
	assert.Equal(t, 1, snap.Quarter)
	assert.Equal(t, "Day 1 of 365", snap.DayOfYearText)
	assert.Equal(t, "Week 1", snap.WeekOfYearText)
}

func TestComputeSnapshot_LeapYearTarget(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	e := newEngine(now)

	snap, err := e.ComputeSnapshot(engine.DefaultTarget(now), engine.IconPie, 0)
	require.NoError(t, err)

	assert.Equal(t, 365, snap.Days, "leap years have one more day until Dec 31")
	assert.Equal(t, "Day 1 of 366", snap.DayOfYearText)
}

func TestComputeSnapshot_QuarterBoundaries(t *testing.T) {
	e := newEngine(time.Time{}) // clock replaced per case
	target := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	atStart := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	e.Clock = MockClock{CurrentTime: atStart}
	snap, err := e.ComputeSnapshot(target, engine.IconPie, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, snap.Quarter)
	assert.InDelta(t, 0.0, snap.QuarterProgress, 1e-9, "quarter progress resets at the boundary")

	nearEnd := time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)
	e.Clock = MockClock{CurrentTime: nearEnd}
	snap, err = e.ComputeSnapshot(target, engine.IconPie, 0)
	require.NoError(t, err)
	assert.Greater(t, snap.QuarterProgress, 0.99)
	assert.Less(t, snap.QuarterProgress, 1.0)
	assert.Less(t, snap.YearProgress, 1.0)
}

func TestComputeSnapshot_RemainingText(t *testing.T) {
	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	e := newEngine(now)

	target := time.Date(2025, 3, 12, 11, 0, 0, 0, time.UTC)
	snap, err := e.ComputeSnapshot(target, engine.IconPie, 0)
	require.NoError(t, err)
	assert.Equal(t, "2mo 2d 3h", snap.RemainingText)

	// Under a day out: only the hour phrase.
	target = now.Add(5 * time.Hour)
	snap, err = e.ComputeSnapshot(target, engine.IconPie, 0)
	require.NoError(t, err)
	assert.Equal(t, "5h", snap.RemainingText)
}

func TestComputeSnapshot_InjectedFormatters(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	e := newEngine(now)
	e.FormatDDay = func(days int) string {
		return fmt.Sprintf("%d days to go", days)
	}
	e.FormatUnit = func(unit engine.Unit, count int) string {
		return fmt.Sprintf("%d %s", count, unit)
	}

	target := time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC)
	snap, err := e.ComputeSnapshot(target, engine.IconPie, 0)
	require.NoError(t, err)

	assert.Equal(t, "2 days to go", snap.DDayText)
	assert.Equal(t, "2 days 0 hours", snap.RemainingText)
}

func TestComputeSnapshot_CalendarFailure(t *testing.T) {
	e := &engine.Engine{
		Clock:    MockClock{CurrentTime: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		Calendar: brokenCalendar{},
	}

	snap, err := e.ComputeSnapshot(time.Now(), engine.IconPie, 0)
	assert.Error(t, err)
	assert.Nil(t, snap, "a failed computation must not yield a partial snapshot")
}

func TestComputeSnapshot_GlyphMatchesFrameTable(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	e := newEngine(now)

	for _, style := range engine.AllIconStyles {
		for i := 0; i < style.FrameCount()*2; i++ {
			snap, err := e.ComputeSnapshot(engine.DefaultTarget(now), style, i)
			require.NoError(t, err)
			assert.Contains(t, style.Frames(), snap.Glyph)
			assert.Equal(t, i, snap.FrameIndex)
		}
	}
}

func TestHolder_WholesaleReplacement(t *testing.T) {
	var holder engine.Holder
	assert.Nil(t, holder.Current(), "holder starts empty")

	first := &engine.Snapshot{DDayText: "D-10"}
	holder.Update(first)
	assert.Same(t, first, holder.Current())

	second := &engine.Snapshot{DDayText: "D-9"}
	holder.Update(second)
	assert.Same(t, second, holder.Current(), "readers must see old or new, never a mix")
}
