// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/timegrid/internal/schedule"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// ScheduleConfig seeds the settings of a fresh state. Once a state has been
// saved its own settings win.
type ScheduleConfig struct {
	SlotMinutes    int  `toml:"slot_minutes"` // 10, 15, 20, 30 or 60
	PreventOverlap bool `toml:"prevent_overlap"`
	AutoColor      bool `toml:"auto_color"`
}

// StorageConfig holds persistence settings.
type StorageConfig struct {
	Backend   string `toml:"backend"` // "sqlite" or "json"
	DBPath    string `toml:"db_path"`
	StatePath string `toml:"state_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte"
}

// LogConfig holds logger settings.
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

var validThemes = map[string]bool{
	"mocha": true,
	"latte": true,
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			SlotMinutes:    schedule.DefaultSlotMinutes,
			PreventOverlap: true,
			AutoColor:      true,
		},
		Storage: StorageConfig{
			Backend:   BackendSQLite,
			DBPath:    defaultDataPath("timegrid.db"),
			StatePath: defaultDataPath("state.json"),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
		Log: LogConfig{
			Dir: defaultLogDir(),
		},
	}
}

// defaultDataPath returns a path under the user's data directory.
func defaultDataPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".local", "share", "timegrid", name)
}

func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state", "timegrid")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "timegrid", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Storage.StatePath = expandPath(cfg.Storage.StatePath)
	cfg.Log.Dir = expandPath(cfg.Log.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	// Schedule overrides
	if v := os.Getenv("TIMEGRID_SLOT_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TIMEGRID_SLOT_MINUTES: %w", err)
		}
		cfg.Schedule.SlotMinutes = n
	}
	if err := envBool("TIMEGRID_PREVENT_OVERLAP", &cfg.Schedule.PreventOverlap); err != nil {
		return err
	}
	if err := envBool("TIMEGRID_AUTO_COLOR", &cfg.Schedule.AutoColor); err != nil {
		return err
	}

	// Storage overrides
	if v := os.Getenv("TIMEGRID_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("TIMEGRID_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("TIMEGRID_STATE_PATH"); v != "" {
		cfg.Storage.StatePath = v
	}

	// UI overrides
	if v := os.Getenv("TIMEGRID_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}

	// Log overrides
	if v := os.Getenv("TIMEGRID_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	return envBool("TIMEGRID_DEBUG", &cfg.Log.Debug)
}

func envBool(name string, dst *bool) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = b
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !schedule.ValidSlotMinutes(c.Schedule.SlotMinutes) {
		return fmt.Errorf("slot_minutes must be one of %v, got %d", schedule.SlotOptions(), c.Schedule.SlotMinutes)
	}
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.DBPath == "" {
			return errors.New("db_path must be set")
		}
	case BackendJSON:
		if c.Storage.StatePath == "" {
			return errors.New("state_path must be set")
		}
	default:
		return fmt.Errorf("backend must be %q or %q, got %q", BackendSQLite, BackendJSON, c.Storage.Backend)
	}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	if c.Log.Dir == "" {
		return errors.New("log dir must be set")
	}
	return nil
}

// StoragePath returns the file used by the configured backend.
func (c *Config) StoragePath() string {
	if c.Storage.Backend == BackendJSON {
		return c.Storage.StatePath
	}
	return c.Storage.DBPath
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
