package layout

import (
	"fmt"
	"sort"

	"github.com/douglyuckling/movievis/pkg/geometry"
	"github.com/douglyuckling/movievis/pkg/model"
)

// sameDirectorDamping divides the handle reach of a segment whose two movies
// share a director, so runs under one director draw as a gentler, visually
// grouped curve.
const sameDirectorDamping = 3.0

// buildCurves walks every actor the catalog knows, in catalog order. The
// order matters: it fixes which director is first queried and therefore the
// column assignment on the director axis.
func (p *Provider) buildCurves() error {
	for _, actor := range p.catalog.Actors() {
		if err := p.buildActorCurves(actor); err != nil {
			return err
		}
		p.stats.ActorsProcessed++
	}
	return nil
}

// buildActorCurves turns one actor's filmography into curve segments and
// registers them with the index.
func (p *Provider) buildActorCurves(actor *model.Person) error {
	movies := p.resolveFilmography(actor)
	if len(movies) < 2 {
		// A lone movie has no line to draw; an empty filmography even less.
		return nil
	}

	// Chronological order, stable so equal release dates keep their source
	// order and the layout stays reproducible.
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].ReleaseDate.Before(movies[j].ReleaseDate)
	})

	prev := movies[0]
	prevAnchor := p.moviePoint(prev, 0)

	for _, curr := range movies[1:] {
		currAnchor := p.moviePoint(curr, 0)

		delta := currAnchor.Y - prevAnchor.Y
		if p.sameDirector(prev, curr) {
			delta /= sameDirectorDamping
		}
		if delta > p.cfg.MaxDelta {
			delta = p.cfg.MaxDelta
		} else if delta < -p.cfg.MaxDelta {
			delta = -p.cfg.MaxDelta
		}

		// Handles reach along the time axis only.
		handle1 := prevAnchor.Add(geometry.Pt(0, delta, 0))
		handle2 := currAnchor.Sub(geometry.Pt(0, delta, 0))
		curve := geometry.NewCubicBezier(prevAnchor, handle1, handle2, currAnchor)

		pair, err := NewMoviePair(prev.ID, curr.ID)
		if err != nil {
			return fmt.Errorf("actor %s: %w", actor.Name, err)
		}

		p.index.register(&ActorCurve{
			actor:  actor,
			pair:   pair,
			curves: []geometry.CubicBezier{curve},
		})
		p.stats.CurvesBuilt++

		// Carry the computed anchor forward so the shared endpoint reuses
		// the exact same floating-point value.
		prev = curr
		prevAnchor = currAnchor
	}
	return nil
}

// resolveFilmography resolves an actor's movie references against the
// catalog, dropping references that no longer resolve.
func (p *Provider) resolveFilmography(actor *model.Person) []*model.Movie {
	refs := actor.Filmography()
	movies := make([]*model.Movie, 0, len(refs))
	for _, id := range refs {
		m, ok := p.catalog.Movie(id)
		if !ok {
			p.stats.SkippedMovieRefs++
			continue
		}
		movies = append(movies, m)
	}
	return movies
}

// sameDirector reports whether two movies were directed by the same person.
// An unresolvable director reference is unequal to everything, including
// another unresolvable reference.
func (p *Provider) sameDirector(a, b *model.Movie) bool {
	da, okA := p.catalog.Director(a)
	db, okB := p.catalog.Director(b)
	if !okA || !okB {
		return false
	}
	return da.ID == db.ID
}
