package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, 1000, cfg.Benchmark.MaxDimensionality)
	assert.Equal(t, 256, cfg.Benchmark.CacheSize)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("BENCH_MAX_DIMENSIONALITY", "50")
	t.Setenv("BENCH_CACHE_SIZE", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 50, cfg.Benchmark.MaxDimensionality)
	assert.Equal(t, 0, cfg.Benchmark.CacheSize)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unparsable port", "HTTP_PORT", "eighty"},
		{"port range", "HTTP_PORT", "70000"},
		{"zero max dimensionality", "BENCH_MAX_DIMENSIONALITY", "0"},
		{"negative cache", "BENCH_CACHE_SIZE", "-1"},
		{"log format", "LOG_FORMAT", "xml"},
		{"duration", "HTTP_READ_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("BENCHFN_TEST_VALUE", "12")
	assert.Equal(t, "12", GetEnv("BENCHFN_TEST_VALUE", "x"))
	assert.Equal(t, "x", GetEnv("BENCHFN_TEST_MISSING", "x"))
}

func TestValidateError(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.Port = 8080
	cfg.Benchmark.MaxDimensionality = 10
	cfg.Logging.Format = "yaml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, `config.Validate: LOG_FORMAT must be json or console, got "yaml"`, err.Error())
}
