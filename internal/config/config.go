package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const appName = "calcpad"

// Store backends
const (
	StoreMemory  = "memory"
	StoreSQLite3 = "sqlite3" // github.com/mattn/go-sqlite3, needs cgo
	StoreSQLite  = "sqlite"  // modernc.org/sqlite, pure Go
)

// Environment overrides
const (
	EnvLogLevel = "CALCPAD_LOG_LEVEL"
	EnvLogPath  = "CALCPAD_LOG_PATH"
	EnvAddr     = "CALCPAD_ADDR"
)

// StoreConfig selects where session snapshots are kept
type StoreConfig struct {
	Driver string `json:"driver"` // "memory", "sqlite3" or "sqlite"
	Path   string `json:"path,omitempty"`
}

// Config represents application configuration
type Config struct {
	Addr              string      `json:"addr"`
	OpenBrowser       bool        `json:"open_browser"`
	DisableAnimations bool        `json:"disable_animations"`
	Pprof             bool        `json:"pprof"` // mount /debug/pprof on the web server
	LogLevel          string      `json:"log_level"` // debug, info, warn, error, none
	LogPath           string      `json:"log_path,omitempty"`
	Store             StoreConfig `json:"store"`
}

func defaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appData := strings.TrimSpace(os.Getenv("APPDATA")); appData != "" {
			return filepath.Join(appData, appName)
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Roaming", appName)
	default:
		if configHome := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); configHome != "" {
			return filepath.Join(configHome, appName)
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".config", appName)
	}
}

func defaultStateDir() string {
	switch runtime.GOOS {
	case "linux":
		if stateHome := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); stateHome != "" {
			return filepath.Join(stateHome, appName)
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".local", "state", appName)
	case "windows":
		if localAppData := strings.TrimSpace(os.Getenv("LOCALAPPDATA")); localAppData != "" {
			return filepath.Join(localAppData, appName)
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Local", appName)
	default:
		return defaultConfigDir()
	}
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	stateDir := defaultStateDir()

	return &Config{
		Addr:     "localhost:8937",
		LogLevel: "info",
		LogPath:  filepath.Join(stateDir, appName+".log"),
		Store: StoreConfig{
			Driver: StoreMemory,
			Path:   filepath.Join(stateDir, "sessions.db"),
		},
	}
}

// Load loads configuration from file; a missing file yields the defaults
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	// Unmarshal into default config (overrides only provided fields)
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	defaults := DefaultConfig()
	if config.Addr == "" {
		config.Addr = defaults.Addr
	}
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.LogPath == "" {
		config.LogPath = defaults.LogPath
	}
	if config.Store.Driver == "" {
		config.Store.Driver = defaults.Store.Driver
	}
	if config.Store.Path == "" {
		config.Store.Path = defaults.Store.Path
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory, StoreSQLite3, StoreSQLite:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}

// ApplyEnv lets environment variables override file values
func (c *Config) ApplyEnv() {
	if envLevel := strings.TrimSpace(os.Getenv(EnvLogLevel)); envLevel != "" {
		c.LogLevel = envLevel
	}
	if envPath := strings.TrimSpace(os.Getenv(EnvLogPath)); envPath != "" {
		c.LogPath = envPath
	}
	if envAddr := strings.TrimSpace(os.Getenv(EnvAddr)); envAddr != "" {
		c.Addr = envAddr
	}
}

// Save saves configuration to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetConfigPath returns the default config path
func GetConfigPath() string {
	return filepath.Join(defaultConfigDir(), "config.json")
}
