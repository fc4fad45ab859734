package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/wheel-of-names/config"
	"github.com/lixenwraith/wheel-of-names/logger"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	log, closer, err := setupLogging(&config.Config{Log: logger.Config{Output: "none", Level: "info"}})
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer closer.Close()

	log.Info("discarded")
	if _, err := os.Stat("logs"); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	log, closer, err := setupLogging(&config.Config{Debug: true, Log: logger.Config{Output: "none", Level: "info"}})
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if !log.IsLevelEnabled(logger.DebugLevel) {
		t.Error("Expected debug level with --debug")
	}
	log.Debug("Test log message")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	info, err := os.Stat(logger.DebugLogPath)
	if err != nil {
		t.Fatalf("Expected log file to be created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestRun_Simulate(t *testing.T) {
	t.Chdir(t.TempDir())

	args := []string{"--simulate", "2000", "--seed", "42", "--names", "Alice,Bob"}
	var first, second bytes.Buffer
	if err := run(args, &first); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := run(args, &second); err != nil {
		t.Fatalf("run: %v", err)
	}

	out := first.String()
	for _, want := range []string{"2,000 spins over 2 entries", "Alice", "Bob", "50%", "max deviation"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
	if first.String() != second.String() {
		t.Error("Expected identical reports for the same seed")
	}
}

func TestRun_SimulateDocument(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	doc := `{"entries":[{"name":"Alice","weight":3},{"name":"Bob"}],"spinDuration":"2","maxNames":"10"}`
	path := filepath.Join(dir, "team.spinnyboi")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run([]string{"--file", path, "--simulate", "500", "--seed", "3"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "75%") || !strings.Contains(out.String(), "25%") {
		t.Errorf("Expected weighted shares in report, got:\n%s", out.String())
	}
}

func TestRun_InvalidDocument(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "bad.spinnyboi")
	if err := os.WriteFile(path, []byte(`{"entries":[{"name":"A","weight":-1}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := run([]string{"--file", path, "--simulate", "1"}, &bytes.Buffer{}); err == nil {
		t.Error("Expected an error for a negative weight")
	}
}

func TestLoadEntries_MissingFileFallsBack(t *testing.T) {
	cfg := &config.Config{
		File:  filepath.Join(t.TempDir(), "new-wheel"),
		Names: []string{"Alice", "Bob", "Carol"},
	}
	set, opts, err := loadEntries(cfg, logger.Nop())
	if err != nil {
		t.Fatalf("loadEntries: %v", err)
	}
	if opts != nil {
		t.Error("Expected no document options for a missing file")
	}
	if set.Len() != 3 {
		t.Errorf("Expected 3 entries from names, got %d", set.Len())
	}
}
