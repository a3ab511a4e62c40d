package api

import "time"

// HealthResponse reports liveness of the server.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

// StatsResponse summarizes the catalog and the computed layout.
type StatsResponse struct {
	Persons           int    `json:"persons"`
	Movies            int    `json:"movies"`
	ActorsProcessed   int    `json:"actors_processed"`
	CurvesBuilt       int    `json:"curves_built"`
	PairGroups        int    `json:"pair_groups"`
	GroupsDiverged    int    `json:"groups_diverged"`
	DirectorsAssigned int    `json:"directors_assigned"`
	SkippedMovieRefs  int    `json:"skipped_movie_refs"`
	Uptime            string `json:"uptime"`
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}
