package config

import (
	"os"
	"testing"

	"github.com/caarlos0/env/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	os.Clearenv()

	cfg := &Config{}
	require.NoError(t, env.Parse(cfg))

	assert.Equal(t, "http://localhost:3000/api", cfg.APIBaseURL)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30, cfg.HTTPTimeoutSec)
	assert.Empty(t, cfg.APIToken)

	require.NoError(t, cfg.Validate())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("LF_API_BASE_URL", "https://library.example.com/api")
	t.Setenv("LF_LISTEN_ADDR", ":9090")
	t.Setenv("LF_LOG_LEVEL", "debug")
	t.Setenv("LF_API_TOKEN", "static-token")
	t.Setenv("LF_HTTP_TIMEOUT_SEC", "5")

	cfg := &Config{}
	require.NoError(t, env.Parse(cfg))

	assert.Equal(t, "https://library.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "static-token", cfg.APIToken)
	assert.Equal(t, 5, cfg.HTTPTimeoutSec)

	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"relative base url", func(c *Config) { c.APIBaseURL = "/api" }},
		{"empty base url", func(c *Config) { c.APIBaseURL = "" }},
		{"empty listen addr", func(c *Config) { c.ListenAddr = "" }},
		{"negative timeout", func(c *Config) { c.HTTPTimeoutSec = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				APIBaseURL:     "http://localhost:3000/api",
				ListenAddr:     ":8080",
				HTTPTimeoutSec: 30,
			}
			tt.mod(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDefaultTokenFile(t *testing.T) {
	cfg := &Config{TokenFilePath: "/tmp/custom.json"}
	assert.Equal(t, "/tmp/custom.json", cfg.DefaultTokenFile())

	cfg = &Config{}
	assert.Contains(t, cfg.DefaultTokenFile(), "libfront")
}
