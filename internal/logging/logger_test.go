package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gamechat.log")

	logger, err := New(path, zapcore.InfoLevel)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("hidden")
	logger.Info("tab changed", zap.String("tab", "profile"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("log lines = %d, want 1 (debug filtered): %q", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	for _, key := range []string{"ts", "msg", "run", "pid", "tab"} {
		if _, ok := entry[key]; !ok {
			t.Errorf("log entry missing %q: %v", key, entry)
		}
	}
	if entry["msg"] != "tab changed" {
		t.Errorf("msg = %v, want tab changed", entry["msg"])
	}
}

func TestNewUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := New(filepath.Join(blocker, "gamechat.log"), zapcore.InfoLevel); err == nil {
		t.Error("New() expected error when log dir is a file")
	}
}
