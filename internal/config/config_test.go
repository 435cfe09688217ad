package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage != "file" {
		t.Errorf("storage = %q, want file", cfg.Storage)
	}
	if cfg.StorageKey != "mood-diary-entries" {
		t.Errorf("storage_key = %q", cfg.StorageKey)
	}
	if cfg.HTTP.Listen != ":8080" || cfg.HTTP.RequestTimeout != 5*time.Second {
		t.Errorf("http = %+v", cfg.HTTP)
	}
	if cfg.Redis.ConnectTimeout != 10*time.Second {
		t.Errorf("redis.connect_timeout = %v", cfg.Redis.ConnectTimeout)
	}
	if cfg.Feed.Enabled {
		t.Error("feed should be disabled by default")
	}
	if cfg.Theme.Preset != "default-dark" {
		t.Errorf("theme preset = %q", cfg.Theme.Preset)
	}
	if cfg.Shell.CacheTTL != "5m" || !cfg.Shell.ShowMood || cfg.Shell.ShowBackend {
		t.Errorf("shell = %+v", cfg.Shell)
	}
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	content := `
storage = "sqlite"
data_dir = "/tmp/moods"

[log]
level = "debug"

[redis]
addr = "cache:6380"
db = 2

[feed]
enabled = true

[theme]
preset = "default-light"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage != "sqlite" || cfg.DataDir != "/tmp/moods" {
		t.Errorf("storage/data_dir = %q/%q", cfg.Storage, cfg.DataDir)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q", cfg.Log.Level)
	}
	if cfg.Redis.Addr != "cache:6380" || cfg.Redis.DB != 2 {
		t.Errorf("redis = %+v", cfg.Redis)
	}
	if !cfg.Feed.Enabled {
		t.Error("feed.enabled not read")
	}
	if cfg.Theme.Preset != "default-light" {
		t.Errorf("theme preset = %q", cfg.Theme.Preset)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("MOODMEMO_STORAGE", "diskv")
	t.Setenv("MOODMEMO_LOG_LEVEL", "error")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage != "diskv" {
		t.Errorf("storage = %q, want diskv", cfg.Storage)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("log.level = %q, want error", cfg.Log.Level)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
