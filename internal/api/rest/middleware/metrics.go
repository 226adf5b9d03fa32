package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/davidmoltin/command-center/pkg/metrics"
	"github.com/go-chi/chi/v5/middleware"
)

// Metrics returns a middleware that records HTTP metrics. Paths are labelled by
// route pattern so session and workflow ids do not create new series.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap the response writer to capture status code and size
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			// Process the request
			next.ServeHTTP(ww, r)

			route := routePattern(r)
			duration := time.Since(start).Seconds()
			statusStr := normalizeStatusCode(ww.Status())

			if r.ContentLength > 0 {
				m.HTTPRequestSize.WithLabelValues(r.Method, route).Observe(float64(r.ContentLength))
			}

			m.HTTPRequestsTotal.WithLabelValues(r.Method, route, statusStr).Inc()
			m.HTTPDuration.WithLabelValues(r.Method, route).Observe(duration)

			// Record response size
			if responseSize := ww.BytesWritten(); responseSize > 0 {
				m.HTTPResponseSize.WithLabelValues(r.Method, route, statusStr).Observe(float64(responseSize))
			}
		})
	}
}

// normalizeStatusCode converts status codes to ranges for high-cardinality reduction
func normalizeStatusCode(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 300 && status < 400:
		return "3xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500:
		return "5xx"
	default:
		return fmt.Sprintf("%d", status)
	}
}
