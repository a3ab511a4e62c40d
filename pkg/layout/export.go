package layout

import (
	"encoding/json"

	"github.com/douglyuckling/movievis/pkg/geometry"
	"github.com/douglyuckling/movievis/pkg/model"
)

// ExportJSON exports the computed layout for an external renderer: every
// movie that participates in a curve with its marker position, and every
// actor with the control points of their laid-out curve segments. Ordering
// is deterministic (movies in first-registration order, actors in catalog
// order).
func (p *Provider) ExportJSON() ([]byte, error) {
	type PointViz [3]float64

	type MovieViz struct {
		ID       string   `json:"id"`
		Title    string   `json:"title"`
		Released string   `json:"released"`
		Position PointViz `json:"position"`
	}

	type SegmentViz [4]PointViz

	type CurveViz struct {
		Movies   [2]string    `json:"movies"`
		Split    bool         `json:"split"`
		Segments []SegmentViz `json:"segments"`
	}

	type ActorViz struct {
		ID     string     `json:"id"`
		Name   string     `json:"name"`
		Curves []CurveViz `json:"curves"`
	}

	type LayoutViz struct {
		Movies []MovieViz `json:"movies"`
		Actors []ActorViz `json:"actors"`
	}

	viz := func(pt geometry.Point) PointViz {
		return PointViz{pt.X, pt.Y, pt.Z}
	}
	segment := func(c geometry.CubicBezier) SegmentViz {
		return SegmentViz{viz(c.P0), viz(c.P1), viz(c.P2), viz(c.P3)}
	}

	data := LayoutViz{
		Movies: make([]MovieViz, 0),
		Actors: make([]ActorViz, 0),
	}

	// Movies in first-registration order, each once.
	seen := make(map[model.MovieID]bool)
	appendMovie := func(id model.MovieID) {
		if seen[id] {
			return
		}
		seen[id] = true
		m, ok := p.catalog.Movie(id)
		if !ok {
			return
		}
		data.Movies = append(data.Movies, MovieViz{
			ID:       m.ID.String(),
			Title:    m.Title,
			Released: m.ReleaseDate.Format("2006-01-02"),
			Position: viz(p.moviePoint(m, 0)),
		})
	}
	for _, pair := range p.index.pairOrder {
		appendMovie(pair.First())
		appendMovie(pair.Second())
	}

	for _, actor := range p.catalog.Actors() {
		curves := p.index.actorCurves(actor.ID)
		if len(curves) == 0 {
			continue
		}

		av := ActorViz{
			ID:     actor.ID.String(),
			Name:   actor.Name,
			Curves: make([]CurveViz, 0, len(curves)),
		}
		for _, ac := range curves {
			cv := CurveViz{
				Movies: [2]string{ac.pair.First().String(), ac.pair.Second().String()},
				Split:  ac.Split(),
			}
			for _, seg := range ac.curves {
				cv.Segments = append(cv.Segments, segment(seg))
			}
			av.Curves = append(av.Curves, cv)
		}
		data.Actors = append(data.Actors, av)
	}

	return json.Marshal(data)
}
