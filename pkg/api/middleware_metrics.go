package api

import (
	"net/http"
	"runtime"
	"strconv"
	"time"
)

// metricsResponseWriter captures the status code and body size of a
// response for metric labels.
type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (w *metricsResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *metricsResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

// metricsMiddleware measures every request: in-flight count, latency,
// status, and response size.
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.metricsRegistry.HTTPRequestsInFlight.Inc()
		defer s.metricsRegistry.HTTPRequestsInFlight.Dec()

		mw := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(mw, r)

		s.metricsRegistry.RecordHTTPRequest(r.Method, r.URL.Path, strconv.Itoa(mw.statusCode), time.Since(start))
		s.metricsRegistry.HTTPResponseSizeBytes.WithLabelValues(r.Method, r.URL.Path).Observe(float64(mw.bytesWritten))
	})
}

// updateMetricsPeriodically refreshes the system and catalog gauges every
// ten seconds for as long as the server runs.
func (s *Server) updateMetricsPeriodically() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.metricsRegistry.UptimeSeconds.Set(time.Since(s.startTime).Seconds())
		s.metricsRegistry.GoRoutines.Set(float64(runtime.NumGoroutine()))

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		s.metricsRegistry.MemoryAllocBytes.Set(float64(m.Alloc))
		s.metricsRegistry.MemorySysBytes.Set(float64(m.Sys))

		s.metricsRegistry.UpdateCatalogStats(s.catalog.NumPersons(), s.catalog.NumMovies())
	}
}
