package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "file", cfg.KVBackend)
	assert.Equal(t, 3*time.Second, cfg.NotificationTTL)
	assert.Equal(t, 2500*time.Millisecond, cfg.CheckoutSuccessDelay)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTTL)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(KeyAppPort, "9090")
	t.Setenv(KeyKVBackend, "SQLITE")
	t.Setenv(KeySearchDebounce, "50ms")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.KVBackend)
	assert.Equal(t, 50*time.Millisecond, cfg.SearchDebounce)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ADMIN_EMAIL=owner@indikart.in\nADMIN_PASSWORD=secret\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv(KeyAdminEmail)
		os.Unsetenv(KeyAdminPassword)
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "owner@indikart.in", cfg.AdminEmail)
	assert.True(t, cfg.AdminEnabled())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown kv backend", mutate: func(c *Config) { c.KVBackend = "etcd" }, wantErr: true},
		{name: "redis without url", mutate: func(c *Config) { c.KVBackend = "redis" }, wantErr: true},
		{name: "redis with url", mutate: func(c *Config) { c.KVBackend = "redis"; c.RedisURL = "localhost:6379" }},
		{name: "zero ttl", mutate: func(c *Config) { c.NotificationTTL = 0 }, wantErr: true},
		{name: "negative debounce", mutate: func(c *Config) { c.SearchDebounce = -time.Millisecond }, wantErr: true},
		{name: "negative session ttl", mutate: func(c *Config) { c.SessionIdleTTL = -time.Minute }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{KVBackend: "memory", NotificationTTL: time.Second}
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
