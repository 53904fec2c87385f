// Package metrics provides Prometheus instrumentation for veritrace.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Middleware returns HTTP middleware for request metrics.
func Middleware(next http.Handler) http.Handler {
	if !enabled {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			duration := time.Since(start).Seconds()
			path := normalizePath(r.URL.Path)

			httpRequestsTotal.WithLabelValues(
				r.Method,
				path,
				strconv.Itoa(rw.status),
			).Inc()

			httpDuration.WithLabelValues(
				r.Method,
				path,
			).Observe(duration)
		}()

		next.ServeHTTP(rw, r)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

// normalizePath collapses dynamic path segments so verification codes and
// vendor addresses do not blow up label cardinality:
//
//	/api/v1/verify/ABC123/qr           -> /api/v1/verify/{code}/qr
//	/api/v1/vendors/0x1234.../registered -> /api/v1/vendors/{address}/registered
func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/api/v1/") {
		return path
	}

	parts := strings.Split(strings.TrimPrefix(path, "/api/v1/"), "/")
	if len(parts) < 2 {
		return path
	}

	switch parts[0] {
	case "verify":
		if len(parts) >= 3 && parts[2] == "qr" {
			return "/api/v1/verify/{code}/qr"
		}
	case "vendors":
		if len(parts) >= 3 && parts[2] == "registered" {
			return "/api/v1/vendors/{address}/registered"
		}
	}
	return path
}
