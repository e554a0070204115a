package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_WithoutDebugCreatesNoFileOnCleanRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, closeFn, err := New(false, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("key pressed")
	logger.Warn("copy failed")
	closeFn()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no log file without errors, stat err = %v", err)
	}
}

func TestNew_WithoutDebugKeepsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := os.WriteFile(path, []byte("{\"msg\":\"earlier run\"}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	logger, closeFn, err := New(false, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("starting")
	logger.Error("loading dataset failed", zap.String("dataset", "portfolio_artworks.json"))
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected the earlier line plus one error entry, got %d lines:\n%s", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatalf("line is not JSON: %q", lines[1])
	}
	if entry["msg"] != "loading dataset failed" || entry["level"] != "error" {
		t.Errorf("entry = %v", entry)
	}
	if entry["dataset"] != "portfolio_artworks.json" {
		t.Errorf("dataset field = %v", entry["dataset"])
	}
}

func TestNew_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, closeFn, err := New(true, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Error("loading dataset", zap.String("dataset", "portfolio_artworks.json"))
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}

	var found bool
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("line is not JSON: %q", line)
		}
		if entry["msg"] == "loading dataset" {
			found = true
			if entry["dataset"] != "portfolio_artworks.json" {
				t.Errorf("dataset field = %v", entry["dataset"])
			}
			if entry["level"] != "error" {
				t.Errorf("level = %v", entry["level"])
			}
		}
	}
	if !found {
		t.Error("expected the error entry in the log file")
	}
}

func TestNew_BadPath(t *testing.T) {
	_, _, err := New(true, filepath.Join(t.TempDir(), "missing", "debug.log"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
