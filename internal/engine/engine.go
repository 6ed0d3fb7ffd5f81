package engine

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/oyeong011/go-dday/internal/config"
)

// Unit identifies one component of the remaining-time text.
type Unit string

const (
	UnitMonths Unit = "months"
	UnitDays   Unit = "days"
	UnitHours  Unit = "hours"
)

// Engine derives all display values from a target date and the current
// instant. It performs no I/O and holds no mutable state; localized output
// is produced through closures injected by the UI layer, with English
// fallbacks when none are set.
type Engine struct {
	Clock    Clock    // Interface for time mocking.
	Calendar Calendar // Calendar boundary and ordinal rules.

	// FormatDDay renders the D-Day label. Zero means today, positive means
	// the target is days ahead, negative means days past.
	FormatDDay func(days int) string

	// FormatUnit renders one remaining-time unit phrase.
	FormatUnit func(unit Unit, count int) string

	// FormatDayOfYear renders the day ordinal within the year.
	FormatDayOfYear func(day, total int) string

	// FormatWeekOfYear renders the week ordinal within the year.
	FormatWeekOfYear func(week int) string
}

// ComputeSnapshot derives a complete snapshot for the given target, icon
// style and animation counter. Every field uses the same clock sample.
// On a calendar failure the caller is expected to keep its previous
// snapshot; the error is never fatal.
func (e *Engine) ComputeSnapshot(target time.Time, style IconStyle, frameIndex int) (*Snapshot, error) {
	now := e.Clock.Now()

	yearIv, err := e.Calendar.YearInterval(now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSnapshotFailed, err)
	}
	quarterIv, quarter, err := e.Calendar.QuarterInterval(now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSnapshotFailed, err)
	}

	yearProgress := elapsedFraction(now, yearIv)
	quarterProgress := elapsedFraction(now, quarterIv)

	days := wholeDays(e.Calendar.StartOfDay(now), e.Calendar.StartOfDay(target))
	months, remDays, remHours := decomposeInterval(now, target)
	dayOrd, dayTotal := e.Calendar.DayOfYear(now)
	week := e.Calendar.WeekOfYear(now)

	snap := &Snapshot{
		Now:             now,
		Target:          target,
		Days:            days,
		YearProgress:    yearProgress,
		QuarterProgress: quarterProgress,
		Quarter:         quarter,
		DDayText:        e.formatDDay(days),
		RemainingText:   e.formatRemaining(months, remDays, remHours),
		DayOfYearText:   e.formatDayOfYear(dayOrd, dayTotal),
		WeekOfYearText:  e.formatWeekOfYear(week),
		FrameIndex:      frameIndex,
		Glyph:           CurrentIconFrame(style, yearProgress, frameIndex),
	}

	slog.Debug(config.MsgSnapshotDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyDays, days,
		config.LogKeyProgress, yearProgress,
		config.LogKeyQuarter, quarter,
	)

	return snap, nil
}

// wholeDays counts midnight-to-midnight calendar days between two day
// boundaries. Rounding absorbs the odd-length days around DST transitions
// so that crossing midnight, not 24 wall-clock hours, changes the count.
func wholeDays(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// elapsedFraction returns the elapsed share of t within iv, clamped to [0,1).
func elapsedFraction(t time.Time, iv Interval) float64 {
	total := iv.Duration()
	if total <= 0 {
		return 0
	}
	frac := float64(t.Sub(iv.Start)) / float64(total)
	if frac < 0 {
		return 0
	}
	if frac >= 1 {
		return math.Nextafter(1, 0)
	}
	return frac
}

func (e *Engine) formatDDay(days int) string {
	if e.FormatDDay != nil {
		return e.FormatDDay(days)
	}
	switch {
	case days == 0:
		return config.FallbackDDayToday
	case days > 0:
		return fmt.Sprintf(config.FallbackDDayFuture, days)
	default:
		return fmt.Sprintf(config.FallbackDDayPast, -days)
	}
}

// formatRemaining joins the unit phrases month->day->hour. Zero months and
// zero days are omitted; the hour phrase is always emitted, even at zero,
// so the text never collapses to an empty string near the target.
func (e *Engine) formatRemaining(months, days, hours int) string {
	var phrases []string
	if months != 0 {
		phrases = append(phrases, e.formatUnit(UnitMonths, months))
	}
	if days != 0 {
		phrases = append(phrases, e.formatUnit(UnitDays, days))
	}
	phrases = append(phrases, e.formatUnit(UnitHours, hours))
	return strings.Join(phrases, " ")
}

func (e *Engine) formatUnit(unit Unit, count int) string {
	if e.FormatUnit != nil {
		return e.FormatUnit(unit, count)
	}
	switch unit {
	case UnitMonths:
		return fmt.Sprintf(config.FallbackMonths, count)
	case UnitDays:
		return fmt.Sprintf(config.FallbackDays, count)
	default:
		return fmt.Sprintf(config.FallbackHours, count)
	}
}

func (e *Engine) formatDayOfYear(day, total int) string {
	if e.FormatDayOfYear != nil {
		return e.FormatDayOfYear(day, total)
	}
	return fmt.Sprintf(config.FallbackDayOfYear, day, total)
}

func (e *Engine) formatWeekOfYear(week int) string {
	if e.FormatWeekOfYear != nil {
		return e.FormatWeekOfYear(week)
	}
	return fmt.Sprintf(config.FallbackWeekOfYear, week)
}
