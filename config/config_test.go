package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greg-hacke/stripclean/meta"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())
	assert.Equal(t, int64(32<<20), cfg.Server.MaxUploadBytes())
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Zero(t, cfg.Server.RateLimit)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 95, cfg.Clean.JPEGQuality)
	assert.Equal(t, meta.DefaultPolicy(), cfg.Policy())
}

func TestLoad_TOML(t *testing.T) {
	v := New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(`
[server]
port = 8080
cors_origins = ["https://example.com"]
rate_limit = 5.5

[log]
format = "json"

[classification]
critical = ["GPS", "Serial"]
warning = ["Make"]
`)))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"https://example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 5.5, cfg.Server.RateLimit)
	assert.Equal(t, "json", cfg.Log.Format)
	// Default kept
	assert.Equal(t, 95, cfg.Clean.JPEGQuality)

	policy := cfg.Policy()
	assert.Equal(t, meta.ThreatCritical, policy.Classify("GPSAltitude"))
	assert.Equal(t, meta.ThreatWarning, policy.Classify("Make"))
	assert.Equal(t, meta.ThreatSafe, policy.Classify("Artist"))
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("STRIPCLEAN_SERVER_PORT", "9090")
	t.Setenv("STRIPCLEAN_CLEAN_JPEG_QUALITY", "80")
	t.Setenv("STRIPCLEAN_LOG_LEVEL", "debug")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 80, cfg.Clean.JPEGQuality)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"port", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"upload", func(c *Config) { c.Server.MaxUploadMB = 0 }, "server.max_upload_mb"},
		{"rate", func(c *Config) { c.Server.RateLimit = -1 }, "server.rate_limit"},
		{"burst", func(c *Config) { c.Server.RateLimit = 1; c.Server.RateBurst = 0 }, "server.rate_burst"},
		{"format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"quality low", func(c *Config) { c.Clean.JPEGQuality = 0 }, "clean.jpeg_quality"},
		{"quality high", func(c *Config) { c.Clean.JPEGQuality = 101 }, "clean.jpeg_quality"},
		{"empty marker", func(c *Config) { c.Classification.Warning = []string{"Make", ""} }, "classification"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(New())
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	v := New()
	v.Set("clean.jpeg_quality", 0)

	cfg, err := Load(v)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nport = 7000\n"), 0o600))

	cfg, used, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, path, used)

	_, _, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestPolicy_IsCopy(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)

	policy := cfg.Policy()
	policy.Critical[0] = "changed"
	assert.NotEqual(t, "changed", cfg.Classification.Critical[0])
}
