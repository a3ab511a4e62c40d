// Package api serves a computed movie-timeline layout over HTTP: a GraphQL
// query surface for actors, movies, and curves, plus JSON endpoints for
// health, stats, and the full layout export, and a Prometheus metrics
// endpoint.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/douglyuckling/movievis/pkg/layout"
	"github.com/douglyuckling/movievis/pkg/logging"
	"github.com/douglyuckling/movievis/pkg/metrics"
	"github.com/douglyuckling/movievis/pkg/model"
)

const serverVersion = "0.3.0"

// Server exposes a catalog and its layout over HTTP. The layout is computed
// before the server starts; requests only read it.
type Server struct {
	catalog         *model.Catalog
	provider        *layout.Provider
	graphqlHandler  *GraphQLHandler
	logger          logging.Logger
	metricsRegistry *metrics.Registry
	cfg             Config
	startTime       time.Time
}

// NewServer wires a server around an already-built layout. The config is
// validated up front so a bad calibration fails here, not mid-request.
func NewServer(catalog *model.Catalog, provider *layout.Provider, cfg Config) (*Server, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog must not be nil")
	}
	if provider == nil {
		return nil, fmt.Errorf("layout provider must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	schema, err := GenerateSchema(catalog, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate graphql schema: %w", err)
	}

	logger := logging.NewDefaultLogger()
	logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	componentLogger := logger.With(logging.Component("api"))

	registry := metrics.DefaultRegistry()
	st := provider.Stats()
	registry.UpdateLayoutStats(st.ActorsProcessed, st.CurvesBuilt, st.PairGroups,
		st.GroupsDiverged, st.DirectorsAssigned, st.SkippedMovieRefs)
	registry.UpdateCatalogStats(catalog.NumPersons(), catalog.NumMovies())

	s := &Server{
		catalog:         catalog,
		provider:        provider,
		logger:          componentLogger,
		metricsRegistry: registry,
		cfg:             cfg,
		startTime:       time.Now(),
	}
	s.graphqlHandler = NewGraphQLHandler(schema).
		WithLogger(componentLogger).
		WithMetrics(registry)
	return s, nil
}

// Handler assembles the full route table and middleware chain. Split out
// from Start so tests can drive it with httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/layout", s.handleLayout)
	mux.Handle("/graphql", s.graphqlHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(
		s.metricsRegistry.GetPrometheusRegistry(),
		promhttp.HandlerOpts{},
	))

	return s.panicRecoveryMiddleware(
		s.loggingMiddleware(
			s.metricsMiddleware(
				s.corsMiddleware(mux))))
}

// Start runs the HTTP server until it fails. It blocks.
func (s *Server) Start() error {
	server := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout(),
		WriteTimeout: s.cfg.WriteTimeout(),
		IdleTimeout:  s.cfg.IdleTimeout(),
	}

	go s.updateMetricsPeriodically()

	st := s.provider.Stats()
	s.logger.Info("api server listening",
		logging.String("addr", s.cfg.Addr()),
		logging.Curves(st.CurvesBuilt),
		logging.Count(s.catalog.NumMovies()),
	)
	return server.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   serverVersion,
		Uptime:    time.Since(s.startTime).String(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st := s.provider.Stats()
	s.respondJSON(w, http.StatusOK, StatsResponse{
		Persons:           s.catalog.NumPersons(),
		Movies:            s.catalog.NumMovies(),
		ActorsProcessed:   st.ActorsProcessed,
		CurvesBuilt:       st.CurvesBuilt,
		PairGroups:        st.PairGroups,
		GroupsDiverged:    st.GroupsDiverged,
		DirectorsAssigned: st.DirectorsAssigned,
		SkippedMovieRefs:  st.SkippedMovieRefs,
		Uptime:            time.Since(s.startTime).String(),
	})
}

// handleLayout serves the full layout in the viewer exchange format.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed", "use GET")
		return
	}

	data, err := s.provider.ExportJSON()
	if err != nil {
		s.logger.Error("layout export failed", logging.Error(err))
		s.respondError(w, http.StatusInternalServerError, "export failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Error("failed to write layout response", logging.Error(err))
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, errText, message string) {
	s.respondJSON(w, status, ErrorResponse{
		Error:   errText,
		Message: message,
		Code:    status,
	})
}
