package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"trace", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"off", LevelNone},
		{" none ", LevelNone},
		{"invalid", LevelInfo}, // defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLoggerWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "homeval.log")

	logger, err := New(LevelInfo, logPath, "router")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info("opened channel %d", 3)
	logger.Debug("should not appear")
	logger.Close()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)
	if !strings.Contains(contentStr, "[INFO] [router] opened channel 3") {
		t.Errorf("unexpected log contents: %q", contentStr)
	}
	if strings.Contains(contentStr, "should not appear") {
		t.Errorf("Log file contains debug message when level is INFO")
	}
}

func TestWithPrefixSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(LevelInfo, &buf, "chan")
	child := logger.WithPrefix("3")

	logger.SetLevel(LevelDebug)
	child.Debug("debug line")

	if !strings.Contains(buf.String(), "[DEBUG] [chan:3] debug line") {
		t.Errorf("child logger did not pick up level change, got: %q", buf.String())
	}
}

func TestLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(LevelNone, &buf, "test")

	logger.Error("error")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(LevelInfo, &buf, "http")

	sl := slog.New(NewSlogHandler(logger)).With("addr", "127.0.0.1").WithGroup("req")
	sl.Info("served", "status", 200)
	sl.Debug("hidden")

	got := buf.String()
	if !strings.Contains(got, "served addr=127.0.0.1 req.status=200") {
		t.Errorf("unexpected slog output: %q", got)
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("debug record should be filtered at info level")
	}
}

func TestStdLogger(t *testing.T) {
	var buf bytes.Buffer
	std := StdLogger(NewWriter(LevelInfo, &buf, "http"), slog.LevelError)
	std.Printf("http: TLS handshake error")

	if !strings.Contains(buf.String(), "[ERROR] [http] http: TLS handshake error") {
		t.Errorf("unexpected std logger output: %q", buf.String())
	}
}

func TestGlobalLogger(t *testing.T) {
	if Global() == nil {
		t.Errorf("Global() returned nil")
	}
	if Named("x").Prefix() != "x" {
		t.Errorf("Named prefix mismatch")
	}
}
