package logging

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// entries decodes every JSON line written to buf
func entries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var out []map[string]interface{}
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var e map[string]interface{}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e), sc.Text())
		out = append(out, e)
	}
	return out
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WarnLevel, &buf)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown", map[string]interface{}{"n": 1})
	logger.Error("also shown")

	got := entries(t, &buf)
	require.Len(t, got, 2)
	assert.Equal(t, "WARN", got[0]["level"])
	assert.Equal(t, "shown", got[0]["message"])
	assert.Equal(t, float64(1), got[0]["n"])
	assert.Contains(t, got[0]["caller"], "logging/logger_test.go")
	assert.NotEmpty(t, got[0]["timestamp"])
	assert.Equal(t, "ERROR", got[1]["level"])

	assert.False(t, logger.Enabled(InfoLevel))
	assert.True(t, logger.Enabled(ErrorLevel))
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	base := New(DebugLevel, &buf)

	child := base.WithFields(map[string]interface{}{"service": "benchfn"}).
		WithField("function", "ackley").
		WithError(errors.New("boom"))
	child.Info("child", map[string]interface{}{"err": errors.New("field error")})
	base.Info("base")

	got := entries(t, &buf)
	require.Len(t, got, 2)
	assert.Equal(t, "benchfn", got[0]["service"])
	assert.Equal(t, "ackley", got[0]["function"])
	assert.Equal(t, "boom", got[0]["error"])
	assert.Equal(t, "field error", got[0]["err"])

	_, ok := got[1]["service"]
	assert.False(t, ok, "parent logger must not inherit child fields")
}

func TestZapAndNamed(t *testing.T) {
	var buf bytes.Buffer
	logger := New(InfoLevel, &buf).Named("server")

	logger.Zap().Info("typed", zap.Int("dim", 3))

	got := entries(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "server", got[0]["logger"])
	assert.Equal(t, float64(3), got[0]["dim"])
	assert.Contains(t, got[0]["caller"], "logging/logger_test.go")
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	logger, err := NewLogger(&Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)
	logger.Debug("to file")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to file"`)

	logger, err = NewLogger(nil)
	require.NoError(t, err)
	assert.True(t, logger.Enabled(InfoLevel))
	assert.False(t, logger.Enabled(DebugLevel))

	_, err = NewLogger(&Config{Output: filepath.Join(t.TempDir(), "missing", "out.log")})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"warning": WarnLevel,
		"Error":   ErrorLevel,
		"fatal":   FatalLevel,
		"verbose": InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestFromContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	l := &CtxLogger{New(InfoLevel, &buf)}
	ctx := l.WithContext(context.Background())
	assert.Same(t, l, FromContext(ctx))
}

func TestMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := New(DebugLevel, &buf)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(Middleware(logger))
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		FromContext(r.Context()).Info("inside")
		w.Write([]byte("ok"))
	})
	r.Get("/bad", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad", http.StatusBadRequest)
	})

	for _, path := range []string{"/ok", "/bad"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	}

	got := entries(t, &buf)
	require.Len(t, got, 5)

	assert.Equal(t, "Request started", got[0]["message"])
	assert.Equal(t, "inside", got[1]["message"])
	assert.Equal(t, "/ok", got[1]["path"], "handler logger carries request fields")
	assert.NotEmpty(t, got[1]["request_id"])

	assert.Equal(t, "Request completed", got[2]["message"])
	assert.Equal(t, "INFO", got[2]["level"])
	assert.Equal(t, float64(http.StatusOK), got[2]["status"])

	assert.Equal(t, "Request started", got[3]["message"])
	assert.Equal(t, "WARN", got[4]["level"])
	assert.Equal(t, float64(http.StatusBadRequest), got[4]["status"])
	assert.Equal(t, "Bad Request", got[4]["error"])
}
