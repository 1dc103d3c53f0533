package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10000, cfg.Records)
	assert.Equal(t, 5, cfg.Columns)
	assert.Equal(t, 0, cfg.KeyColumn)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, 1, cfg.Workers)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BENCH_RECORDS", "500")
	t.Setenv("BATCH_SIZE", "25")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Records)
	assert.Equal(t, 25, cfg.BatchSize)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero records", "BENCH_RECORDS", "0"},
		{"zero batch size", "BATCH_SIZE", "0"},
		{"key column out of range", "BENCH_KEY_COLUMN", "9"},
		{"zero workers", "BENCH_WORKERS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLevelFallsBackToInfo(t *testing.T) {
	cfg := Config{LogLevel: "nonsense"}
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}
