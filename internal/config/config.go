package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config carries everything the engine's benchmark harness treats as a
// parameter rather than a constant: the benchmark schema shape, the
// batch size for grouped aggregation, and logging destinations.
type Config struct {
	SeqURL   string `envconfig:"SEQ_URL" default:""`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	Records   int `envconfig:"BENCH_RECORDS" default:"10000"`
	Columns   int `envconfig:"BENCH_COLUMNS" default:"5"`
	KeyColumn int `envconfig:"BENCH_KEY_COLUMN" default:"0"`
	BatchSize int `envconfig:"BATCH_SIZE" default:"100"`
	Workers   int `envconfig:"BENCH_WORKERS" default:"1"`
}

// Load reads .env (when present) and the process environment.
func Load() (Config, error) {
	// A missing .env file is fine; explicit env vars still apply.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("recstore", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Records < 1 {
		return fmt.Errorf("BENCH_RECORDS must be positive, got %d", c.Records)
	}
	if c.Columns < 1 {
		return fmt.Errorf("BENCH_COLUMNS must be positive, got %d", c.Columns)
	}
	if c.KeyColumn < 0 || c.KeyColumn >= c.Columns {
		return fmt.Errorf("BENCH_KEY_COLUMN %d out of range [0,%d)", c.KeyColumn, c.Columns)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("BATCH_SIZE must be positive, got %d", c.BatchSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("BENCH_WORKERS must be positive, got %d", c.Workers)
	}
	return nil
}

// Level parses the configured log level, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
