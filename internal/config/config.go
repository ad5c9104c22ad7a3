package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"

	errs "github.com/copyleftdev/benchfn/internal/errors"
)

type Config struct {
	Environment string `env:"ENV" envDefault:"development"`
	HTTP        struct {
		Port            int           `env:"HTTP_PORT" envDefault:"8080"`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
		IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
		RequestTimeout  time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"60s"`
	}
	Logging struct {
		Level  string `env:"LOG_LEVEL"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
		Output string `env:"LOG_OUTPUT" envDefault:"stderr"`
	}
	Benchmark struct {
		// MaxDimensionality caps the dimensionality a request may ask for.
		MaxDimensionality int `env:"BENCH_MAX_DIMENSIONALITY" envDefault:"1000"`
		// CacheSize caps the number of constructed functions kept for reuse.
		CacheSize int `env:"BENCH_CACHE_SIZE" envDefault:"256"`
	}
}

func Load() (*Config, error) {
	cfg := &Config{}

	// Parse environment variables
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Default logging level depends on environment
	if cfg.Logging.Level == "" {
		if cfg.Environment == "development" {
			cfg.Logging.Level = "debug"
		} else {
			cfg.Logging.Level = "info"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges env tags cannot express.
func (c *Config) Validate() error {
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return invalid("HTTP_PORT out of range: %d", c.HTTP.Port)
	}
	if c.Benchmark.MaxDimensionality < 1 {
		return invalid("BENCH_MAX_DIMENSIONALITY must be positive, got %d", c.Benchmark.MaxDimensionality)
	}
	if c.Benchmark.CacheSize < 0 {
		return invalid("BENCH_CACHE_SIZE must not be negative, got %d", c.Benchmark.CacheSize)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return invalid("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return errs.Errorf(format, args...).WithComponent("config").WithOperation("Validate")
}

// GetEnv returns the value of the environment variable or the default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
