// Package config handles configuration loading and validation for
// hookwatch.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the hookwatch daemon configuration.
type Config struct {
	Capture CaptureConfig `toml:"capture" yaml:"capture" json:"capture"`
	Store   StoreConfig   `toml:"store" yaml:"store" json:"store"`
	Logging LoggingConfig `toml:"logging" yaml:"logging" json:"logging"`
}

// CaptureConfig selects which event families get persisted.
type CaptureConfig struct {
	Keyboard bool `toml:"keyboard" yaml:"keyboard" json:"keyboard"`
	Mouse    bool `toml:"mouse" yaml:"mouse" json:"mouse"`
	Wheel    bool `toml:"wheel" yaml:"wheel" json:"wheel"`

	// MouseMoves additionally persists plain pointer movement, which
	// dominates event volume. Off by default.
	MouseMoves bool `toml:"mouse_moves" yaml:"mouse_moves" json:"mouse_moves"`
}

// StoreConfig configures the SQLite event log.
type StoreConfig struct {
	Path string `toml:"path" yaml:"path" json:"path"`
}

// LoggingConfig configures daemon logging.
type LoggingConfig struct {
	Level    string `toml:"level" yaml:"level" json:"level"`
	Format   string `toml:"format" yaml:"format" json:"format"`
	Output   string `toml:"output" yaml:"output" json:"output"`
	FilePath string `toml:"file_path" yaml:"file_path" json:"file_path"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Capture: CaptureConfig{
			Keyboard: true,
			Mouse:    true,
			Wheel:    true,
		},
		Store: StoreConfig{
			Path: filepath.Join(dataDir(), "events.db"),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ConfigPath returns the platform-specific default config file path.
func ConfigPath() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "hookwatch", "config.toml")
	case "windows":
		appData := os.Getenv("APPDATA")
		return filepath.Join(appData, "hookwatch", "config.toml")
	default:
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			home, _ := os.UserHomeDir()
			configHome = filepath.Join(home, ".config")
		}
		return filepath.Join(configHome, "hookwatch", "config.toml")
	}
}

// dataDir returns the platform-specific default data directory.
func dataDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "hookwatch")
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = os.Getenv("APPDATA")
		}
		return filepath.Join(appData, "hookwatch")
	default:
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			home, _ := os.UserHomeDir()
			dataHome = filepath.Join(home, ".local", "share")
		}
		return filepath.Join(dataHome, "hookwatch")
	}
}

// ApplyEnvOverrides overrides fields from HOOKWATCH_* environment
// variables.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("HOOKWATCH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("HOOKWATCH_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("HOOKWATCH_LOG_OUTPUT"); v != "" {
		c.Logging.Output = v
	}
	if v := os.Getenv("HOOKWATCH_STORE_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("HOOKWATCH_CAPTURE_MOUSE_MOVES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Capture.MouseMoves = b
		}
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Logging.Format)
	}

	switch c.Logging.Output {
	case "stdout", "stderr", "file", "both":
	default:
		return fmt.Errorf("invalid log output %q", c.Logging.Output)
	}
	if (c.Logging.Output == "file" || c.Logging.Output == "both") && c.Logging.FilePath == "" {
		return fmt.Errorf("log output %q requires logging.file_path", c.Logging.Output)
	}

	if c.Store.Path == "" {
		return fmt.Errorf("store.path must not be empty")
	}

	if c.Capture.MouseMoves && !c.Capture.Mouse {
		return fmt.Errorf("capture.mouse_moves requires capture.mouse")
	}
	return nil
}

// SaveConfig writes the configuration as TOML.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
