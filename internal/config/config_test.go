package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[capture]
keyboard = true
mouse = false
wheel = true

[store]
path = "/tmp/hookwatch/events.db"

[logging]
level = "debug"
format = "json"
output = "stderr"
`), 0o644))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.False(t, cfg.Capture.Mouse)
	assert.True(t, cfg.Capture.Wheel)
	assert.Equal(t, "/tmp/hookwatch/events.db", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: warn
  format: text
  output: stdout
`), 0o644))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "stdout", cfg.Logging.Output)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"capture": {"keyboard": true, "mouse": true, "wheel": false}}`), 0o644))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.False(t, cfg.Capture.Wheel)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader(filepath.Join(t.TempDir(), "absent.toml")).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Logging, cfg.Logging)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"bad output", func(c *Config) { c.Logging.Output = "syslog" }},
		{"file output without path", func(c *Config) { c.Logging.Output = "file" }},
		{"empty store path", func(c *Config) { c.Store.Path = "" }},
		{"moves without mouse", func(c *Config) { c.Capture.MouseMoves = true; c.Capture.Mouse = false }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOOKWATCH_LOG_LEVEL", "error")
	t.Setenv("HOOKWATCH_STORE_PATH", "/tmp/override.db")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "/tmp/override.db", cfg.Store.Path)
}

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, created, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.True(t, created)
	require.NoError(t, cfg.Validate())

	_, created, err = LoadOrCreate(path)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, SaveConfig(DefaultConfig(), path))

	loader := NewLoader(path)
	_, err := loader.Load()
	require.NoError(t, err)
	defer loader.Close()

	changed := make(chan *Config, 1)
	loader.OnChange(func(c *Config) {
		select {
		case changed <- c:
		default:
		}
	})
	require.NoError(t, loader.Watch())

	cfg := DefaultConfig()
	cfg.Logging.Level = "debug"
	require.NoError(t, SaveConfig(cfg, path))

	select {
	case got := <-changed:
		assert.Equal(t, "debug", got.Logging.Level)
	case <-time.After(3 * time.Second):
		t.Fatal("config change not observed")
	}
}
