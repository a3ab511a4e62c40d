// Package layout computes the 3D curve layout for a movie-timeline
// visualization. Each actor known to the catalog becomes a chain of cubic
// Bezier segments threading through their movies, which sit at positions
// derived from release date (time axis) and director (director axis). After
// all chains are built, segments that connect the same pair of movies are
// spread apart perpendicular to the line joining the pair so overlapping
// actor paths stay distinguishable.
package layout

import "fmt"

// Config holds the layout tunables. The defaults reproduce the calibration
// the engine was designed around; all of them are safe to play with.
type Config struct {
	// EarliestYear and LatestYear bound the calibration window of the time
	// axis. Dates outside the window extrapolate linearly.
	EarliestYear int `yaml:"earliest_year" validate:"required,min=1800"`
	LatestYear   int `yaml:"latest_year" validate:"required,gtfield=EarliestYear"`

	// TimeSpan is the total axis length the calibration window maps onto.
	TimeSpan float64 `yaml:"time_span" validate:"gt=0"`

	// DirectorSpacing is the distance between adjacent director columns.
	DirectorSpacing float64 `yaml:"director_spacing" validate:"gt=0"`

	// MaxDelta caps the vertical reach of a segment's handles.
	MaxDelta float64 `yaml:"max_delta" validate:"gt=0"`

	// DivergenceStep is the offset increment separating curves that share a
	// movie pair.
	DivergenceStep float64 `yaml:"divergence_step" validate:"gt=0"`
}

// DefaultConfig returns the standard calibration.
func DefaultConfig() Config {
	return Config{
		EarliestYear:    1985,
		LatestYear:      2009,
		TimeSpan:        5.0,
		DirectorSpacing: 4.0,
		MaxDelta:        5.0,
		DivergenceStep:  0.05,
	}
}

// check verifies the structural constraints the engine depends on.
func (c Config) check() error {
	if c.LatestYear <= c.EarliestYear {
		return fmt.Errorf("layout config: latest year %d must be after earliest year %d",
			c.LatestYear, c.EarliestYear)
	}
	if c.TimeSpan <= 0 {
		return fmt.Errorf("layout config: time span must be positive, got %v", c.TimeSpan)
	}
	if c.DirectorSpacing <= 0 {
		return fmt.Errorf("layout config: director spacing must be positive, got %v", c.DirectorSpacing)
	}
	if c.MaxDelta <= 0 {
		return fmt.Errorf("layout config: max delta must be positive, got %v", c.MaxDelta)
	}
	if c.DivergenceStep <= 0 {
		return fmt.Errorf("layout config: divergence step must be positive, got %v", c.DivergenceStep)
	}
	return nil
}
