package layout

import (
	"errors"
	"fmt"

	"github.com/douglyuckling/movievis/pkg/model"
)

// ErrIdenticalMovies reports an attempt to pair a movie with itself.
var ErrIdenticalMovies = errors.New("movie pair requires two distinct movies")

// MoviePair is the unordered key identifying the two movies a curve segment
// connects. The pair is stored canonically (lower ID first) so that
// Pair(A, B) and Pair(B, A) are the same value and hash identically as map
// keys.
type MoviePair struct {
	first, second model.MovieID
}

// NewMoviePair builds the canonical pair for two distinct movies.
func NewMoviePair(a, b model.MovieID) (MoviePair, error) {
	if a == b {
		return MoviePair{}, fmt.Errorf("pair movie %s with itself: %w", a, ErrIdenticalMovies)
	}
	if b.Less(a) {
		a, b = b, a
	}
	return MoviePair{first: a, second: b}, nil
}

// First returns the canonically lower movie ID.
func (p MoviePair) First() model.MovieID {
	return p.first
}

// Second returns the canonically higher movie ID.
func (p MoviePair) Second() model.MovieID {
	return p.second
}

// Contains reports whether the pair names the given movie.
func (p MoviePair) Contains(id model.MovieID) bool {
	return p.first == id || p.second == id
}

func (p MoviePair) String() string {
	return fmt.Sprintf("(%s, %s)", p.first, p.second)
}
