// Package rpc exposes the oracle over JSON-RPC 2.0 on a single HTTP POST
// endpoint and declares route registration helpers.
package rpc

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/okian/soundproof/pkg/logger"
	"github.com/okian/soundproof/pkg/metrics"
)

// LoggingMiddleware tags each request with a generated ID, logs its
// completion, and records transport-level metrics. The oracle core itself
// stays silent; this is the only place a request touches the log.
func LoggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		durationMs := float64(time.Since(start).Milliseconds())
		metrics.RecordRPCRequest(r.Method, wrapped.statusCode, durationMs)

		logger.Get().Debug(r.Context(), "rpc request served",
			logger.String("request_id", requestID),
			logger.String("remote", r.RemoteAddr),
			logger.Int("status", wrapped.statusCode),
			logger.Float64("duration_ms", durationMs),
		)
	}
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
