package layout

import (
	"math"
	"testing"
	"time"

	"github.com/douglyuckling/movievis/pkg/model"
)

func TestTimeScaleCentering(t *testing.T) {
	s := NewTimeScale(DefaultConfig())

	// The midpoint of the 1985..2009 window maps to exactly zero.
	if got := s.PositionForYear(1997.0); got != 0 {
		t.Errorf("PositionForYear(1997) = %v, want 0", got)
	}

	// January 1st 1997 carries one day of fraction.
	got := s.Position(date(1997, 1, 1))
	want := (1.0 / 365.0) * (5.0 / 24.0)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Position(1997-01-01) = %v, want %v", got, want)
	}
}

func TestTimeScaleWindowEdges(t *testing.T) {
	s := NewTimeScale(DefaultConfig())

	// The window spans 5.0 units centered on zero.
	lo := s.PositionForYear(1985)
	hi := s.PositionForYear(2009)
	if math.Abs(lo+2.5) > 1e-12 {
		t.Errorf("PositionForYear(1985) = %v, want -2.5", lo)
	}
	if math.Abs(hi-2.5) > 1e-12 {
		t.Errorf("PositionForYear(2009) = %v, want 2.5", hi)
	}
}

func TestTimeScaleMonotonic(t *testing.T) {
	s := NewTimeScale(DefaultConfig())

	dates := []time.Time{
		date(1985, 1, 1),
		date(1989, 6, 3),
		date(1994, 12, 31),
		date(2000, 2, 29),
		date(2005, 7, 4),
		date(2009, 11, 20),
	}

	prev := math.Inf(-1)
	for _, d := range dates {
		pos := s.Position(d)
		if pos <= prev {
			t.Errorf("Position(%v) = %v, not greater than previous %v", d, pos, prev)
		}
		prev = pos
	}
}

func TestTimeScaleExtrapolates(t *testing.T) {
	s := NewTimeScale(DefaultConfig())

	// No clamping: dates outside the window keep the same slope.
	unitsPerYear := 5.0 / 24.0
	if got := s.PositionForYear(2010) - s.PositionForYear(2009); math.Abs(got-unitsPerYear) > 1e-12 {
		t.Errorf("slope above window = %v, want %v", got, unitsPerYear)
	}
	if got := s.PositionForYear(1985) - s.PositionForYear(1984); math.Abs(got-unitsPerYear) > 1e-12 {
		t.Errorf("slope below window = %v, want %v", got, unitsPerYear)
	}

	if s.Position(date(1960, 1, 1)) >= s.Position(date(1985, 1, 1)) {
		t.Error("date far below the window did not map below it")
	}
	if s.Position(date(2020, 1, 1)) <= s.Position(date(2009, 12, 31)) {
		t.Error("date far above the window did not map above it")
	}
}

func TestDirectorScaleSpacing(t *testing.T) {
	s := NewDirectorScale(4.0)

	d1 := model.NewPersonID()
	d2 := model.NewPersonID()

	x1 := s.Position(d1)
	x2 := s.Position(d2)

	if x1 != 0 {
		t.Errorf("first column = %v, want 0", x1)
	}
	if got := x2 - x1; got != 4.0 {
		t.Errorf("column spacing = %v, want 4.0", got)
	}

	// Re-querying returns the cached assignment unchanged.
	if again := s.Position(d1); again != x1 {
		t.Errorf("re-query moved the column: %v -> %v", x1, again)
	}
	if again := s.Position(d2); again != x2 {
		t.Errorf("re-query moved the column: %v -> %v", x2, again)
	}

	if got := s.Position(model.NewPersonID()); got != 8.0 {
		t.Errorf("third column = %v, want 8.0", got)
	}
	if got := s.Assigned(); got != 3 {
		t.Errorf("Assigned = %d, want 3", got)
	}
}

func TestDirectorScaleUnknownSharesColumn(t *testing.T) {
	s := NewDirectorScale(4.0)

	// All unknown-director movies collapse onto the zero PersonID and share
	// one column.
	x1 := s.Position(model.PersonID{})
	x2 := s.Position(model.PersonID{})

	if x1 != x2 {
		t.Errorf("unknown column not shared: %v vs %v", x1, x2)
	}
	if got := s.Assigned(); got != 1 {
		t.Errorf("Assigned = %d, want 1", got)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
