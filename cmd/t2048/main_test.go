package main

import (
	"os"
	"path/filepath"
	"testing"
)

func resetFlags(t *testing.T) {
	t.Helper()
	flagConfig, flagDBPath, flagLogLevel, flagPreset = "", "", "", ""
	flagSize, flagTarget = 0, 0
	t.Cleanup(func() {
		flagConfig, flagDBPath, flagLogLevel, flagPreset = "", "", "", ""
		flagSize, flagTarget = 0, 0
	})
}

func TestLoadConfigOverrides(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "t2048.yaml")
	if err := os.WriteFile(path, []byte("game:\n  size: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	flagDBPath = "/tmp/x.db"
	flagLogLevel = "debug"
	flagTarget = 4096

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Game.Size != 5 || cfg.Game.WinTarget != 4096 {
		t.Errorf("game = %+v", cfg.Game)
	}
	if cfg.Storage.Path != "/tmp/x.db" || cfg.Log.Level != "debug" {
		t.Errorf("storage = %q, log = %q", cfg.Storage.Path, cfg.Log.Level)
	}
	if got := cfg.Rules().Variant(); got != "5x5-4096" {
		t.Errorf("Variant() = %q", got)
	}
}

func TestLoadConfigRejectsBadOverride(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "t2048.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	flagTarget = 1000

	if _, err := loadConfig(); err == nil {
		t.Error("a target that is not a power of two should fail")
	}
}

func TestOpenLogFile(t *testing.T) {
	w, closeFn, err := openLogFile("")
	if err != nil || w == nil {
		t.Fatalf("empty path: %v", err)
	}
	closeFn()

	path := filepath.Join(t.TempDir(), "logs", "t2048.log")
	w, closeFn, err = openLogFile(path)
	if err != nil {
		t.Fatalf("openLogFile() failed: %v", err)
	}
	logger := newLogger(w, "info", "test")
	logger.Info("hello", "k", 1)
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"nonsense":       "nonsense",
	}
	for in, want := range tests {
		if got := portOf(in); got != want {
			t.Errorf("portOf(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadConfigPreset(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "t2048.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	flagPreset = "mini"

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if got := cfg.Rules().Variant(); got != "3x3-256" {
		t.Errorf("Variant() = %q, want 3x3-256", got)
	}

	// Explicit size and target still win over the preset.
	flagTarget = 512
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if got := cfg.Rules().Variant(); got != "3x3-512" {
		t.Errorf("Variant() = %q, want 3x3-512", got)
	}

	flagPreset = "nope"
	if _, err := loadConfig(); err == nil {
		t.Error("unknown preset should fail")
	}
}
