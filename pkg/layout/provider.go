package layout

import (
	"errors"

	"github.com/douglyuckling/movievis/pkg/geometry"
	"github.com/douglyuckling/movievis/pkg/model"
)

// ErrNilCatalog reports a provider constructed without a catalog.
var ErrNilCatalog = errors.New("layout requires a catalog")

// Provider computes and serves the layout for one catalog. The whole
// computation happens inside the constructor: curves are built actor by
// actor, then curves sharing a movie pair are diverged, and the result never
// changes afterwards. Queries are safe for concurrent use.
//
// Providers share nothing; computing layouts for two catalogs concurrently
// just means constructing two providers.
type Provider struct {
	catalog *model.Catalog
	cfg     Config

	timeScale     TimeScale
	directorScale *DirectorScale
	index         *curveIndex

	stats Stats
}

// Stats summarizes one layout computation.
type Stats struct {
	ActorsProcessed   int // actors whose filmography was walked
	CurvesBuilt       int // curve segments constructed
	PairGroups        int // distinct movie pairs seen
	GroupsDiverged    int // pair groups with two or more curves spread apart
	DirectorsAssigned int // director columns handed out during the build
	SkippedMovieRefs  int // filmography references that failed to resolve
}

// New computes the layout for the catalog with the default calibration.
func New(catalog *model.Catalog) (*Provider, error) {
	return NewWithConfig(catalog, DefaultConfig())
}

// NewWithConfig computes the layout for the catalog with a custom
// calibration.
func NewWithConfig(catalog *model.Catalog, cfg Config) (*Provider, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}

	p := &Provider{
		catalog:       catalog,
		cfg:           cfg,
		timeScale:     NewTimeScale(cfg),
		directorScale: NewDirectorScale(cfg.DirectorSpacing),
		index:         newCurveIndex(),
	}

	if err := p.buildCurves(); err != nil {
		return nil, err
	}
	p.divergeOverlapping()

	p.stats.PairGroups = len(p.index.pairOrder)
	p.stats.DirectorsAssigned = p.directorScale.Assigned()
	return p, nil
}

// ActorCurves returns the actor's laid-out curves in build order. Actors
// with nothing laid out yield an empty slice, not an error.
func (p *Provider) ActorCurves(actor model.PersonID) []*ActorCurve {
	return p.index.actorCurves(actor)
}

// MoviePoint returns the 3D position of a movie at the given depth. The
// position combines the director column with the mapped release date. A
// movie whose director was never seen before is assigned the next free
// column, exactly as during the build.
func (p *Provider) MoviePoint(id model.MovieID, z float64) (geometry.Point, bool) {
	m, ok := p.catalog.Movie(id)
	if !ok {
		return geometry.Point{}, false
	}
	return p.moviePoint(m, z), true
}

// TimeScale returns the date mapping used by this layout.
func (p *Provider) TimeScale() TimeScale {
	return p.timeScale
}

// Config returns the calibration the layout was computed with.
func (p *Provider) Config() Config {
	return p.cfg
}

// Stats returns the computation summary.
func (p *Provider) Stats() Stats {
	return p.stats
}

// moviePoint places a movie: director column on X, mapped release date on Y.
func (p *Provider) moviePoint(m *model.Movie, z float64) geometry.Point {
	x := p.directorScale.Position(p.directorKey(m))
	y := p.timeScale.Position(m.ReleaseDate)
	return geometry.Pt(x, y, z)
}

// directorKey resolves a movie's director to the identity used on the
// director axis. Every unresolvable reference collapses onto the zero
// PersonID, so all unknown-director movies share one column.
func (p *Provider) directorKey(m *model.Movie) model.PersonID {
	if d, ok := p.catalog.Director(m); ok {
		return d.ID
	}
	return model.PersonID{}
}
