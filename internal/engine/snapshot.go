package engine

import (
	"sync/atomic"
	"time"
)

// Snapshot is the complete set of derived display values for one instant.
// It is recomputed wholesale on every tick and never mutated in place.
type Snapshot struct {
	// Now is the instant all fields were derived from.
	Now time.Time

	// Target is the D-Day the snapshot was computed against.
	Target time.Time

	// Days is the whole-calendar-day distance from today to the target.
	// Positive means the target is in the future.
	Days int

	// YearProgress is the elapsed fraction of the current year, in [0,1).
	YearProgress float64

	// QuarterProgress is the elapsed fraction of the current quarter, in [0,1).
	QuarterProgress float64

	// Quarter is the ordinal quarter number (1-4) used by the quarter title.
	Quarter int

	DDayText       string
	RemainingText  string
	DayOfYearText  string
	WeekOfYearText string

	// FrameIndex is the animation counter the glyph was derived with.
	FrameIndex int

	// Glyph is the icon frame to display.
	Glyph string
}

// Holder publishes the latest snapshot for lock-free reads.
//
// The snapshot is read on every UI refresh but replaced at most once per
// tick, so an atomic.Pointer swap beats a mutex on the hot path and
// guarantees readers never observe a partially updated snapshot.
type Holder struct {
	cur atomic.Pointer[Snapshot]
}

// Update replaces the published snapshot.
func (h *Holder) Update(s *Snapshot) {
	h.cur.Store(s)
}

// Current returns the latest snapshot, or nil before the first Update.
func (h *Holder) Current() *Snapshot {
	return h.cur.Load()
}
