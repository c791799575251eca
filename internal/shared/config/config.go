package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/fixtures"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/realtime"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/shared/utils"
)

type Config struct {
	Port             string
	Env              string
	LogLevel         string
	FixtureSeed      int64
	RealtimeEnabled  bool
	RealtimeSchedule string
}

// IsProduction selects JSON logs
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadConfig reads .env when present and falls back to the process environment
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.LogWarn(".env file not found, using system environment variables", nil)
	}
	return FromEnv()
}

// FromEnv builds the config from the process environment only
func FromEnv() *Config {
	cfg := &Config{
		Port:             os.Getenv("PORT"),
		Env:              os.Getenv("ENV"),
		LogLevel:         strings.ToLower(os.Getenv("LOG_LEVEL")),
		FixtureSeed:      envInt64("FIXTURE_SEED", fixtures.DefaultSeed),
		RealtimeEnabled:  envBool("REALTIME_ENABLED", true),
		RealtimeSchedule: os.Getenv("REALTIME_SCHEDULE"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.RealtimeSchedule == "" {
		cfg.RealtimeSchedule = realtime.DefaultSchedule
	}

	return cfg
}

func envInt64(key string, def int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.LogWarn("Invalid integer, using default", map[string]interface{}{
			"key":     key,
			"value":   raw,
			"default": def,
		})
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		utils.LogWarn("Invalid boolean, using default", map[string]interface{}{
			"key":     key,
			"value":   raw,
			"default": def,
		})
		return def
	}
	return v
}
