package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", name, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	logger, err := New("error", true)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level when verbose")
	}
}

func TestToFileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profileform.log")
	logger, err := ToFile(path, "info", false)
	if err != nil {
		t.Fatalf("to file: %v", err)
	}
	logger.Info("submitted")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"submitted"`) {
		t.Fatalf("log output = %q", data)
	}

	nop, err := ToFile("", "info", false)
	if err != nil || nop.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("expected no-op logger, err=%v", err)
	}
}
