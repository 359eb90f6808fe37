package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
password = "p@ss"

[redis]
address = "redis:6379"

[booking]
slot_step_minutes = 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, 30, cfg.Booking.SlotStepMinutes)
	assert.Equal(t, 15, cfg.Booking.ServiceLengthChunkMinutes)
	assert.Equal(t, "postgres://postgres:p%40ss@db:5432/salon_booking?sslmode=disable", cfg.Database.DSN())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[server\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[booking]\nslot_step_minutes = 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"db host", func(c *Config) { c.Database.Host = "" }},
		{"metrics path", func(c *Config) { c.Metrics.Path = "" }},
		{"staff url", func(c *Config) { c.StaffService.URL = "" }},
		{"chunk", func(c *Config) { c.Booking.ServiceLengthChunkMinutes = -15 }},
		{"retries", func(c *Config) { c.Booking.TxMaxRetries = -1 }},
	}

	require.NoError(t, Default().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
