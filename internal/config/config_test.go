package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "dev", cfg.Server.Env)
	assert.Equal(t, zerolog.InfoLevel, cfg.Server.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Database.MigrateOnStart)
	assert.Equal(t, "signalbench-profiles", cfg.AWS.S3Bucket)
	assert.Equal(t, 24*time.Hour, cfg.Export.URLExpiry)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("S3_ENDPOINT", "localhost:9000")
	t.Setenv("MIGRATE_ON_START", "false")
	t.Setenv("EXPORT_URL_EXPIRY", "15m")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, zerolog.DebugLevel, cfg.Server.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "localhost:9000", cfg.AWS.S3Endpoint)
	assert.False(t, cfg.Database.MigrateOnStart)
	assert.Equal(t, 15*time.Minute, cfg.Export.URLExpiry)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad log level", "LOG_LEVEL", "loud"},
		{"bad expiry", "EXPORT_URL_EXPIRY", "soon"},
		{"negative expiry", "EXPORT_URL_EXPIRY", "-1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := load(viper.New())
			assert.Error(t, err)
		})
	}
}
