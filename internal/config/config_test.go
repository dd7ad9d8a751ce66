package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.DataFile != defaultDataFile {
		t.Fatalf("data file = %q, want %q", cfg.App.DataFile, defaultDataFile)
	}
	if cfg.App.HistoryDB != defaultHistoryDB {
		t.Fatalf("history db = %q, want %q", cfg.App.HistoryDB, defaultHistoryDB)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("footer should default to on")
	}
	if cfg.App.WatchInterval != defaultWatchInterval {
		t.Fatalf("watch interval = %s", cfg.App.WatchInterval)
	}
	if cfg.Logging.Trace {
		t.Fatalf("trace should default to off")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"RENTROLL_DATA_FILE=/env/book.json",
		"RENTROLL_TRACE=1",
	}
	cfg, err := LoadArgs([]string{"-data-file", "/flag/book.json"}, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.DataFile != "/flag/book.json" {
		t.Fatalf("flag should beat env, got %q", cfg.App.DataFile)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("env trace should apply when no flag is given")
	}
}

func TestLoadArgsConfigFileSeedsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rentroll.yaml")
	body := "data_file: /cfg/book.json\nwidth: 120\nfooter: false\nwatch_interval: 5s\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadArgs([]string{"-config", path}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.DataFile != "/cfg/book.json" {
		t.Fatalf("data file = %q", cfg.App.DataFile)
	}
	if cfg.App.Width != 120 {
		t.Fatalf("width = %d, want 120", cfg.App.Width)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("config file should disable the footer")
	}
	if cfg.App.WatchInterval != 5*time.Second {
		t.Fatalf("watch interval = %s, want 5s", cfg.App.WatchInterval)
	}
}

func TestLoadArgsConfigFileLosesToFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rentroll.yaml")
	if err := os.WriteFile(path, []byte("width: 120\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadArgs([]string{"-config=" + path, "-width", "80"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("width = %d, want flag value 80", cfg.App.Width)
	}
}

func TestLoadArgsRejectsNegativeGeometry(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsBadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte(":\t not yaml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadArgs([]string{"-config", path}, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}
