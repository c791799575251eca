package config

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/fixtures"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/realtime"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "FIXTURE_SEED", "REALTIME_ENABLED", "REALTIME_SCHEDULE"} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, fixtures.DefaultSeed, cfg.FixtureSeed)
	assert.True(t, cfg.RealtimeEnabled)
	assert.Equal(t, realtime.DefaultSchedule, cfg.RealtimeSchedule)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("FIXTURE_SEED", "7")
	t.Setenv("REALTIME_ENABLED", "false")
	t.Setenv("REALTIME_SCHEDULE", "@every 5s")

	cfg := FromEnv()
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(7), cfg.FixtureSeed)
	assert.False(t, cfg.RealtimeEnabled)
	assert.Equal(t, "@every 5s", cfg.RealtimeSchedule)
}

func TestFromEnv_MalformedFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("FIXTURE_SEED", "abc")
	t.Setenv("REALTIME_ENABLED", "maybe")

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	cfg := FromEnv()
	assert.Equal(t, fixtures.DefaultSeed, cfg.FixtureSeed)
	assert.True(t, cfg.RealtimeEnabled)

	out := buf.String()
	assert.Contains(t, out, `"key":"FIXTURE_SEED"`)
	assert.Contains(t, out, `"value":"abc"`)
	assert.Contains(t, out, `"key":"REALTIME_ENABLED"`)
	assert.Contains(t, out, "Invalid boolean, using default")
}
