package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, int64(8), cfg.Fetch.MaxBodyMB)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Empty(t, cfg.Lexicons.Positive)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("TEXTMETRICS_PORT", "9090")
	t.Setenv("TEXTMETRICS_LOG_FORMAT", "json")
	t.Setenv("TEXTMETRICS_POSITIVE_WORDS", "/tmp/positive.txt")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/positive.txt", cfg.Lexicons.Positive)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `server:
  host: 127.0.0.1
  port: 9000
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.Equal(t, "debug", cfg.Log.Level)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "Mozilla/5.0", cfg.Fetch.UserAgent)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Host: "localhost", Port: 8080},
			Fetch:  FetchConfig{MaxBodyMB: 8},
			Log:    LogConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		mutate func(*Config)
		valid  bool
		desc   string
	}{
		{func(c *Config) {}, true, "Baseline config"},
		{func(c *Config) { c.Log.Format = "json" }, true, "JSON log format"},
		{func(c *Config) { c.Log.Level = "debug" }, true, "Debug log level"},
		{func(c *Config) { c.Server.Port = 0 }, false, "Port zero"},
		{func(c *Config) { c.Server.Port = 70000 }, false, "Port above range"},
		{func(c *Config) { c.Fetch.MaxBodyMB = 0 }, false, "Body cap zero"},
		{func(c *Config) { c.Log.Format = "xml" }, false, "Unknown log format"},
		{func(c *Config) { c.Log.Level = "verbose" }, false, "Unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
