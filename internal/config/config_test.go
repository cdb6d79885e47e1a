package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "KAFKA_BROKERS", "ACCESS_TOKEN_TTL", "LOG_LEVEL", "MIGRATIONS_ON_START"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.MigrationsOnStart)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	t.Setenv("REFRESH_TOKEN_TTL", "garbage")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MIGRATIONS_ON_START", "true")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.MigrationsOnStart)
}

func TestLogValue_HidesDSN(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{PostgresDSN: "postgres://u:s3cret@db/x", HTTPAddr: ":8080"}
	NewLogger(&buf, cfg).Info("config", "config", cfg)
	assert.Contains(t, buf.String(), ":8080")
	assert.NotContains(t, buf.String(), "s3cret")
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, Config{LogFormat: "text", LogLevel: slog.LevelWarn}).Info("hidden")
	assert.Empty(t, buf.String())
}
