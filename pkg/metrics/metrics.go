// Package metrics exposes Prometheus instrumentation for the layout
// engine and its serving surfaces.
package metrics

import (
	"time"
)

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordLayoutBuild records one layout build with its outcome
func (r *Registry) RecordLayoutBuild(status string, duration time.Duration) {
	r.LayoutBuildsTotal.WithLabelValues(status).Inc()
	r.LayoutBuildDuration.Observe(duration.Seconds())
}

// UpdateLayoutStats publishes the counters from the most recent build
func (r *Registry) UpdateLayoutStats(actors, curves, pairGroups, groupsDiverged, directorColumns, skippedRefs int) {
	r.LayoutActorsProcessed.Set(float64(actors))
	r.LayoutCurvesBuilt.Set(float64(curves))
	r.LayoutPairGroups.Set(float64(pairGroups))
	r.LayoutGroupsDiverged.Set(float64(groupsDiverged))
	r.LayoutDirectorColumns.Set(float64(directorColumns))
	r.LayoutSkippedMovieRefs.Set(float64(skippedRefs))
}

// UpdateCatalogStats publishes the size of the loaded catalog
func (r *Registry) UpdateCatalogStats(persons, movies int) {
	r.CatalogPersonsTotal.Set(float64(persons))
	r.CatalogMoviesTotal.Set(float64(movies))
}

// RecordQuery records a GraphQL query execution
func (r *Registry) RecordQuery(operation, status string, duration time.Duration) {
	r.QueriesTotal.WithLabelValues(operation, status).Inc()
	r.QueryDuration.WithLabelValues(operation).Observe(duration.Seconds())

	if duration > time.Second {
		r.SlowQueries.WithLabelValues(operation).Inc()
	}
}
