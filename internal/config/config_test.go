// ABOUTME: Tests for configuration loading and path handling.
// ABOUTME: Covers defaults, file config, env overrides, and ~ expansion.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if !strings.HasSuffix(cfg.GetDataDir(), "devstats") {
		t.Errorf("Expected default data dir to end with devstats, got %q", cfg.GetDataDir())
	}
	if filepath.Base(cfg.GetDBPath()) != "devstats.db" {
		t.Errorf("Expected default db file devstats.db, got %q", cfg.GetDBPath())
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"bare tilde", "~", home},
		{"tilde prefix", "~/data", filepath.Join(home, "data")},
		{"absolute", "/var/lib/devstats", "/var/lib/devstats"},
		{"relative", "data", "data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.input); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// clearEnvOverrides removes DEVSTATS_* variables for the test's duration.
func clearEnvOverrides(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DEVSTATS_DATA_DIR", "DEVSTATS_DB_FILE"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	clearEnvOverrides(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "" {
		t.Errorf("Expected empty DataDir, got %q", cfg.DataDir)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "devstats")
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"data_dir":"/from/file"}`), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	t.Setenv("DEVSTATS_DATA_DIR", "/from/env")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/from/env" {
		t.Errorf("Expected env override /from/env, got %q", cfg.DataDir)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	clearEnvOverrides(t)

	cfg := &Config{DataDir: "/tmp/devstats-data", DBFile: "custom.db"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DataDir != cfg.DataDir || loaded.DBFile != cfg.DBFile {
		t.Errorf("Round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}
