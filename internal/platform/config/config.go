package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration of cmd/api.
type Config struct {
	Port     string
	LogLevel string

	// LatencyScale multiplies every simulated service delay. 0 disables waiting.
	LatencyScale float64

	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration

	MetricsNamespace string

	// IdempotencyTTL bounds how long a booking confirmation is replayed for a key.
	IdempotencyTTL time.Duration
}

// Load reads configuration from the environment after loading an optional .env
// file from the working directory. Variables already set in the environment win.
func Load() (Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from the environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:              getenv("PORT", "8080"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		LatencyScale:      1.0,
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MetricsNamespace:  getenv("METRICS_NAMESPACE", "travelplanner"),
		IdempotencyTTL:    24 * time.Hour,
	}

	if v := os.Getenv("LATENCY_SCALE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("LATENCY_SCALE must be a number (e.g. 0.5): %w", err)
		}
		if f < 0 {
			return Config{}, fmt.Errorf("LATENCY_SCALE must be >= 0, got %v", f)
		}
		cfg.LatencyScale = f
	}

	var err error
	if cfg.ShutdownTimeout, err = getenvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return Config{}, err
	}
	if cfg.ReadHeaderTimeout, err = getenvDuration("READ_HEADER_TIMEOUT", cfg.ReadHeaderTimeout); err != nil {
		return Config{}, err
	}
	if cfg.IdempotencyTTL, err = getenvDuration("IDEMPOTENCY_TTL", cfg.IdempotencyTTL); err != nil {
		return Config{}, err
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("PORT must be numeric: %w", err)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", cfg.LogLevel)
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.Port }

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration (e.g. 10s): %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must be >= 0, got %s", key, d)
	}
	return d, nil
}
