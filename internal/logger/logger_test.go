package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndLog(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "test.log")

	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
		Compress:   false,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	Info("texture loaded")
	Debug("frame rendered")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "texture loaded") {
		t.Error("log file missing info message")
	}
	if !strings.Contains(string(data), "frame rendered") {
		t.Error("log file missing debug message at debug level")
	}
}

func TestLevelFiltering(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "filtered.log")

	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false
	if err := InitWithFileConfig("warn", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	Info("should be dropped")
	Warn("should be kept")
	Sync()

	data, _ := os.ReadFile(logFile)
	if strings.Contains(string(data), "should be dropped") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(string(data), "should be kept") {
		t.Error("warn message missing at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("nonsense").String() != "info" {
		t.Errorf("unknown level should default to info, got %s", parseLevel("nonsense"))
	}
	if parseLevel("debug").String() != "debug" {
		t.Error("debug level not parsed")
	}
}
