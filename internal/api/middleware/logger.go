// Package middleware provides HTTP middleware for request logging,
// CORS, and URL parameter validation.
package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Logger logs one line per request: method, path, status, duration, and
// the request ID assigned upstream.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		// Strip CR/LF from user-supplied values to prevent log injection.
		sanitize := strings.NewReplacer("\n", "", "\r", "").Replace
		log.Printf(
			"%s %s %d %s reqid=%s",
			sanitize(r.Method),
			sanitize(r.URL.Path),
			wrapped.status,
			time.Since(start),
			middleware.GetReqID(r.Context()),
		)
	})
}

// statusRecorder captures the status code written by the handler chain.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}
