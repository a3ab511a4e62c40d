package layout

import "github.com/douglyuckling/movievis/pkg/model"

// curveIndex keeps the two lookup structures the engine is driven by: curves
// grouped by actor and curves grouped by movie pair. Both groupings preserve
// insertion order; the per-pair order decides which side and how far each
// curve is pushed during overlap resolution. Entries are only ever appended.
type curveIndex struct {
	byActor map[model.PersonID][]*ActorCurve
	byPair  map[MoviePair][]*ActorCurve

	// pairOrder records first-registration order so pair groups are walked
	// deterministically.
	pairOrder []MoviePair
}

func newCurveIndex() *curveIndex {
	return &curveIndex{
		byActor: make(map[model.PersonID][]*ActorCurve),
		byPair:  make(map[MoviePair][]*ActorCurve),
	}
}

// register appends the curve to both groupings, creating either sequence
// lazily on first use.
func (ix *curveIndex) register(ac *ActorCurve) {
	actorID := ac.actor.ID
	ix.byActor[actorID] = append(ix.byActor[actorID], ac)

	if _, seen := ix.byPair[ac.pair]; !seen {
		ix.pairOrder = append(ix.pairOrder, ac.pair)
	}
	ix.byPair[ac.pair] = append(ix.byPair[ac.pair], ac)
}

// actorCurves returns the actor's curves in build order, or nil when the
// actor has none.
func (ix *curveIndex) actorCurves(actor model.PersonID) []*ActorCurve {
	return ix.byActor[actor]
}
