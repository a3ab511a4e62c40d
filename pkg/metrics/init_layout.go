package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLayoutMetrics() {
	r.LayoutBuildsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "movievis_layout_builds_total",
			Help: "Total number of layout builds by outcome",
		},
		[]string{"status"},
	)

	r.LayoutBuildDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movievis_layout_build_duration_seconds",
			Help:    "Time spent building a complete layout",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
	)

	r.LayoutActorsProcessed = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "movievis_layout_actors_processed",
			Help: "Actors processed in the most recent layout build",
		},
	)

	r.LayoutCurvesBuilt = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "movievis_layout_curves_built",
			Help: "Curves built in the most recent layout build",
		},
	)

	r.LayoutPairGroups = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "movievis_layout_pair_groups",
			Help: "Distinct movie pairs with at least one curve",
		},
	)

	r.LayoutGroupsDiverged = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "movievis_layout_groups_diverged",
			Help: "Movie pair groups whose curves were spread apart",
		},
	)

	r.LayoutDirectorColumns = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "movievis_layout_director_columns",
			Help: "Director columns assigned on the director axis",
		},
	)

	r.LayoutSkippedMovieRefs = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "movievis_layout_skipped_movie_refs",
			Help: "Filmography references that did not resolve to a movie",
		},
	)
}
