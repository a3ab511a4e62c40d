package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initCatalogMetrics() {
	r.CatalogPersonsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "movievis_catalog_persons_total",
			Help: "Persons in the loaded catalog",
		},
	)

	r.CatalogMoviesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "movievis_catalog_movies_total",
			Help: "Movies in the loaded catalog",
		},
	)
}
