package layout

// divergeOverlapping spreads apart the curves of every movie pair that
// carries more than one. It runs exactly once, after all actors are built;
// every curve is still unsplit at that point, which splitAndShift depends
// on.
//
// Within a group, curves keep their registration order. The first stays on
// the original line; the rest alternate sides, each pair of successive
// indices stepping one increment further out. Every curve in a processed
// group is subdivided at its midpoint, even the unshifted first one, so a
// group renders with a uniform structure.
func (p *Provider) divergeOverlapping() {
	for _, pair := range p.index.pairOrder {
		group := p.index.byPair[pair]
		if len(group) <= 1 {
			continue
		}

		m1, _ := p.catalog.Movie(pair.First())
		m2, _ := p.catalog.Movie(pair.Second())

		// In-plane perpendicular to the line between the two movies. For
		// degenerate data (both movies at the same position) this is the
		// zero vector and the group splits without spreading.
		p1 := p.moviePoint(m1, 0)
		p2 := p.moviePoint(m2, 0)
		offsetDir := p2.Sub(p1).Perp().Normalize()

		for i, ac := range group {
			magnitude := 0.0
			if i > 0 {
				magnitude = float64((i+1)/2) * p.cfg.DivergenceStep
				if i%2 == 0 {
					magnitude = -magnitude
				}
			}
			ac.splitAndShift(offsetDir.Mul(magnitude))
		}
		p.stats.GroupsDiverged++
	}
}
