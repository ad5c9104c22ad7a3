package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/copyleftdev/benchfn/internal/logging"
)

func TestRecoveryMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.DebugLevel, &buf)

	panics := 0
	h := RecoveryMiddleware(logger, func() { panics++ })(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/functions?x=1", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, 1, panics)
	assert.Contains(t, buf.String(), "Recovered from panic")
	assert.Contains(t, buf.String(), "kaboom")
	assert.Contains(t, buf.String(), `"query":"x=1"`)
}

func TestRecoveryMiddlewarePassThrough(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.DebugLevel, &buf)

	h := RecoveryMiddleware(logger, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, buf.String())
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		status int
		logged bool
	}{
		{"ok", http.StatusOK, false},
		{"client error", http.StatusUnprocessableEntity, false},
		{"server error", http.StatusNotImplemented, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.New(logging.DebugLevel, &buf)

			h := ErrorHandler(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.WriteHeader(http.StatusOK) // superfluous, must not mask the first status
			}))

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/rpc", nil))

			assert.Equal(t, tt.logged, bytes.Contains(buf.Bytes(), []byte("Request error")))
		})
	}
}
