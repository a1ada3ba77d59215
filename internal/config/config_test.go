package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDatabasePathEnvOverride(t *testing.T) {
	t.Setenv(DBEnvVar, "/tmp/override.db")

	got, err := DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath() error = %v", err)
	}
	if got != "/tmp/override.db" {
		t.Errorf("DatabasePath() = %q, want /tmp/override.db", got)
	}
}

func TestDatabasePathFromConfigFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv(DBEnvVar, "")

	dir := filepath.Join(tmp, ConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("db_path: /data/poised.db\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath() error = %v", err)
	}
	if got != "/data/poised.db" {
		t.Errorf("DatabasePath() = %q, want /data/poised.db", got)
	}
}

func TestDatabasePathDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv(DBEnvVar, "")

	got, err := DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath() error = %v", err)
	}
	want := filepath.Join(home, ".local", "share", "poised", "poised.db")
	if got != want {
		t.Errorf("DatabasePath() = %q, want %q", got, want)
	}
}

func TestLoadMissingConfigIsEmpty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != "" {
		t.Errorf("cfg.DBPath = %q, want empty", cfg.DBPath)
	}
}

func TestExpandTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandTilde("~/poised.db"); got != filepath.Join(home, "poised.db") {
		t.Errorf("ExpandTilde(~/poised.db) = %q", got)
	}
	if got := ExpandTilde("/abs/path.db"); got != "/abs/path.db" {
		t.Errorf("ExpandTilde(/abs/path.db) = %q", got)
	}
}
