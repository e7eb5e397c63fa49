package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	t.Parallel()

	config, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}

	want := Config{
		Data:     DataConfig{Path: DefaultDataPath},
		Timezone: DefaultTimezone,
		Log:      LogConfig{Level: DefaultLogLevel, Path: DefaultLogPath},
	}
	if config != want {
		t.Fatalf("expected defaults %#v, got %#v", want, config)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "data:\n  path: /var/lib/fitlog/tracker.db\ntimezone: Europe/Berlin\nlog:\n  level: debug\n  path: \"\"\n"
	if err := os.WriteFile(filepath.Join(dir, "fitlog.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if config.Data.Path != "/var/lib/fitlog/tracker.db" {
		t.Fatalf("unexpected data path %q", config.Data.Path)
	}
	if config.Timezone != "Europe/Berlin" || config.Log.Level != "debug" {
		t.Fatalf("unexpected config %#v", config)
	}
	if config.Log.Path != "" {
		t.Fatalf("expected explicit empty log path to select stderr, got %q", config.Log.Path)
	}
}

func TestLoadConfigFirstSearchPathWins(t *testing.T) {
	t.Parallel()

	first := t.TempDir()
	second := t.TempDir()
	if err := os.WriteFile(filepath.Join(second, "fitlog.yaml"), []byte("timezone: Asia/Tokyo\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(first, "fitlog.yaml"), []byte("timezone: UTC\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := LoadConfig(first, second)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if config.Timezone != "UTC" {
		t.Fatalf("expected first search path to win, got %q", config.Timezone)
	}
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "fitlog.yaml"), []byte("data: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(dir); err == nil {
		t.Fatalf("expected malformed config to fail")
	}
}
