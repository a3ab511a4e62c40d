package layout

import (
	"sync"
	"time"

	"github.com/douglyuckling/movievis/pkg/model"
)

// TimeScale maps release dates onto the time axis. The mapping is linear,
// calibrated so the configured year window spans TimeSpan units centered on
// zero, and extrapolates without clamping outside the window. TimeScale is
// stateless.
type TimeScale struct {
	earliestYear float64
	unitsPerYear float64
	halfSpan     float64
}

// NewTimeScale builds the scale for the given calibration.
func NewTimeScale(cfg Config) TimeScale {
	years := float64(cfg.LatestYear - cfg.EarliestYear)
	unitsPerYear := cfg.TimeSpan / years
	return TimeScale{
		earliestYear: float64(cfg.EarliestYear),
		unitsPerYear: unitsPerYear,
		halfSpan:     years * unitsPerYear / 2,
	}
}

// Position maps a date onto the time axis.
func (s TimeScale) Position(d time.Time) float64 {
	return s.PositionForYear(fractionalYear(d))
}

// PositionForYear maps a fractional year onto the time axis. The midpoint of
// the calibration window maps to exactly zero. Useful for placing year grid
// lines.
func (s TimeScale) PositionForYear(year float64) float64 {
	return (year-s.earliestYear)*s.unitsPerYear - s.halfSpan
}

// fractionalYear converts a date to a year with a day-of-year fraction.
// Day one of a year contributes 1/365, matching the calendar convention the
// calibration was tuned against.
func fractionalYear(d time.Time) float64 {
	return float64(d.Year()) + float64(d.YearDay())/365.0
}

// DirectorScale assigns each distinct director a column on the director
// axis. Columns are handed out lazily in first-query order, spaced a fixed
// distance apart, and an assignment is permanent for the lifetime of the
// scale. All unresolvable director references share the single column keyed
// by the zero PersonID.
type DirectorScale struct {
	mu        sync.RWMutex
	spacing   float64
	positions map[model.PersonID]float64
}

// NewDirectorScale creates an empty scale with the given column spacing.
func NewDirectorScale(spacing float64) *DirectorScale {
	return &DirectorScale{
		spacing:   spacing,
		positions: make(map[model.PersonID]float64),
	}
}

// Position returns the director's column, assigning the next free one on
// first query.
func (s *DirectorScale) Position(director model.PersonID) float64 {
	s.mu.RLock()
	x, ok := s.positions[director]
	s.mu.RUnlock()
	if ok {
		return x
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if x, ok := s.positions[director]; ok {
		return x
	}
	x = s.spacing * float64(len(s.positions))
	s.positions[director] = x
	return x
}

// Assigned returns the number of columns handed out so far.
func (s *DirectorScale) Assigned() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.positions)
}
