package server

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/copyleftdev/benchfn/internal/logging"
)

// RecoveryMiddleware returns a middleware that recovers from panics, logs them
// with the request context and answers 500. onPanic, when non-nil, is called
// once per recovered panic.
func RecoveryMiddleware(logger *logging.Logger, onPanic func()) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("Recovered from panic", map[string]interface{}{
					"error":      fmt.Sprintf("%v", rec),
					"stack":      string(debug.Stack()),
					"request_id": middleware.GetReqID(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"query":      r.URL.RawQuery,
				})
				if onPanic != nil {
					onPanic()
				}

				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// ErrorHandler is a middleware that logs requests answered with status >= 500.
// Client errors are left to the request logger.
func ErrorHandler(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rw, r)

			if rw.status >= http.StatusInternalServerError {
				logger.Error("Request error", map[string]interface{}{
					"status":     rw.status,
					"request_id": middleware.GetReqID(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"query":      r.URL.RawQuery,
					"ip":         r.RemoteAddr,
				})
			}
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

// WriteHeader captures the status code before writing the header.
func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.status = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}
