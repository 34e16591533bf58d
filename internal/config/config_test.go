package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TickInterval != time.Second {
		t.Fatalf("TickInterval = %v, want 1s", cfg.TickInterval)
	}
	if cfg.Theme != ThemeLight {
		t.Fatalf("Theme = %q, want light", cfg.Theme)
	}
	if cfg.ResumeOnLoad {
		t.Fatalf("ResumeOnLoad should default to false")
	}
	if cfg.DBPath() != filepath.Join(dir, AppName, DBFileName) {
		t.Fatalf("DBPath() = %q", cfg.DBPath())
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "multitimer.yaml")
	content := "data_dir: " + dir + "\ntheme: DARK\ntick_interval: 250ms\nresume_on_load: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv("MULTITIMER_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != ThemeDark {
		t.Fatalf("Theme = %q, want dark", cfg.Theme)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Fatalf("TickInterval = %v", cfg.TickInterval)
	}
	if !cfg.ResumeOnLoad {
		t.Fatalf("expected ResumeOnLoad from file")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want env override", cfg.LogLevel)
	}
	if cfg.DBPath() != filepath.Join(dir, DBFileName) {
		t.Fatalf("DBPath() = %q", cfg.DBPath())
	}
}

func TestLoadBadFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}

func TestNormalizeRejectsUnknownTheme(t *testing.T) {
	cfg := Config{Theme: "neon", TickInterval: -1}.normalize()
	if cfg.Theme != ThemeLight {
		t.Fatalf("Theme = %q, want light fallback", cfg.Theme)
	}
	if cfg.TickInterval != TickInterval {
		t.Fatalf("TickInterval = %v, want default", cfg.TickInterval)
	}
	if cfg.DBFile != DBFileName {
		t.Fatalf("DBFile = %q, want default", cfg.DBFile)
	}
}
