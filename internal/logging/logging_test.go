package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWithWriter_Formats(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{"text", []string{"msg=\"gate restored\"", "username=alice"}},
		{"json", []string{`"msg":"gate restored"`, `"username":"alice"`}},
		{"JSON", []string{`"msg":"gate restored"`}},
		{"", []string{"username=alice"}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerWithWriter(slog.LevelInfo, tt.format, &buf)
			logger.Info("gate restored", "username", "alice")

			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("expected %q in output, got: %s", w, buf.String())
				}
			}
		})
	}
}

func TestNewLoggerWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelWarn, "text", &buf)

	logger.Info("should not appear")
	logger.Warn("should appear")

	output := buf.String()
	if strings.Contains(output, "should not appear") {
		t.Errorf("INFO message should be filtered at WARN level, got: %s", output)
	}
	if !strings.Contains(output, "should appear") {
		t.Errorf("WARN message should appear at WARN level, got: %s", output)
	}
}

func TestNewLoggerWithWriter_ChildLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelDebug, "text", &buf)
	child := logger.With("component", "session")

	child.Debug("login", "role", "admin")

	output := buf.String()
	if !strings.Contains(output, "component=session") {
		t.Errorf("expected component in output, got: %s", output)
	}
	if !strings.Contains(output, "role=admin") {
		t.Errorf("expected role in output, got: %s", output)
	}
}

func TestNewLogger_FileTee(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")
	var console bytes.Buffer

	logger, closer := newLogger(Options{Level: "info", Format: "text", File: path}, &console)
	logger.Info("listening", "addr", ":8090")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "addr=:8090") {
		t.Errorf("log file missing record: %s", data)
	}
	if !strings.Contains(console.String(), "addr=:8090") {
		t.Errorf("console missing record: %s", console.String())
	}
}

func TestNewLogger_NoFile(t *testing.T) {
	var console bytes.Buffer
	logger, closer := newLogger(Options{Level: "debug"}, &console)
	logger.Debug("hello")
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if !strings.Contains(console.String(), "hello") {
		t.Errorf("expected debug record, got: %s", console.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
