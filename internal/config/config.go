// ABOUTME: devstats configuration management.
// ABOUTME: JSON config file with environment variable overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/harperreed/devstats/internal/storage"
)

// Config stores devstats configuration.
type Config struct {
	// DataDir is the root directory for the SQLite database.
	// Supports ~ expansion. Defaults to ~/.local/share/devstats.
	DataDir string `json:"data_dir,omitempty" env:"DEVSTATS_DATA_DIR"`

	// DBFile overrides the database filename inside DataDir.
	DBFile string `json:"db_file,omitempty" env:"DEVSTATS_DB_FILE"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDBPath returns the full path of the SQLite database file.
func (c *Config) GetDBPath() string {
	file := c.DBFile
	if file == "" {
		file = "devstats.db"
	}
	return filepath.Join(c.GetDataDir(), file)
}

// OpenStorage opens the SQLite store at the configured path.
func (c *Config) OpenStorage() (*storage.DB, error) {
	return storage.Open(c.GetDBPath())
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "devstats", "config.json")
}

// Load reads config from disk, then applies environment overrides.
func Load() (*Config, error) {
	path := GetConfigPath()

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
