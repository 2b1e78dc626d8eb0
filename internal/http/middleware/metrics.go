package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/metrics"
)

// Metrics records request counts and durations for Prometheus. The path
// label uses the chi route pattern so IDs do not blow up cardinality.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rw, r)

			duration := time.Since(start).Seconds()

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}
			status := strconv.Itoa(rw.statusCode)

			metrics.HttpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
			metrics.HttpRequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
		})
	}
}
