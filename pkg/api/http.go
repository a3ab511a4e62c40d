package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/douglyuckling/movievis/pkg/logging"
	"github.com/douglyuckling/movievis/pkg/metrics"
)

// GraphQLRequest is the JSON body of a POST /graphql request.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
	OperationName string                 `json:"operationName,omitempty"`
}

// GraphQLResponse is the JSON body of a GraphQL response.
type GraphQLResponse struct {
	Data   interface{}    `json:"data,omitempty"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

// GraphQLError carries a single error message back to the client.
type GraphQLError struct {
	Message string `json:"message"`
}

// GraphQLHandler serves GraphQL queries over HTTP POST.
type GraphQLHandler struct {
	schema  graphql.Schema
	logger  logging.Logger
	metrics *metrics.Registry
}

// NewGraphQLHandler creates a handler for the given schema. Logging and
// metrics are off until wired in with the With* methods.
func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{
		schema: schema,
		logger: logging.NewNopLogger(),
	}
}

// WithLogger attaches a logger and returns the handler for chaining.
func (h *GraphQLHandler) WithLogger(logger logging.Logger) *GraphQLHandler {
	if logger != nil {
		h.logger = logger
	}
	return h
}

// WithMetrics attaches a metrics registry and returns the handler.
func (h *GraphQLHandler) WithMetrics(registry *metrics.Registry) *GraphQLHandler {
	h.metrics = registry
	return h
}

// ServeHTTP handles a GraphQL HTTP request. Query-level failures are
// reported in the response errors array with status 200; only transport
// problems produce a non-200 status.
func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed, use POST", http.StatusMethodNotAllowed)
		return
	}

	var req GraphQLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON request body", http.StatusBadRequest)
		return
	}

	operation := req.OperationName
	if operation == "" {
		operation = "query"
	}

	start := time.Now()
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
	})
	elapsed := time.Since(start)

	response := GraphQLResponse{Data: result.Data}
	for _, err := range result.Errors {
		response.Errors = append(response.Errors, GraphQLError{Message: err.Message})
	}

	status := "success"
	if len(result.Errors) > 0 {
		status = "error"
	}
	if h.metrics != nil {
		h.metrics.RecordQuery(operation, status, elapsed)
	}
	h.logger.Debug("graphql query executed",
		logging.Operation(operation),
		logging.String("status", status),
		logging.Latency(elapsed),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode graphql response", logging.Error(err))
	}
}
