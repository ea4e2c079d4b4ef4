package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"playbox/internal/config"
	"playbox/internal/logging"
)

func TestConsoleFormatIncludesComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	child := logging.NewComponentLogger(logger, "reconcile")
	child.Info("probe complete", logging.Args(logging.Int("exists", 3), logging.String("scope", "all"))...)

	line := buf.String()
	if !strings.Contains(line, "INFO reconcile: probe complete") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "exists=3") || !strings.Contains(line, "scope=all") {
		t.Fatalf("missing attrs in line: %q", line)
	}
}

func TestConsoleQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	logger.Info("generated", logging.Args(logging.String("name", "Red Apple"))...)
	if !strings.Contains(buf.String(), `name="Red Apple"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestJSONFormatEmitsValidJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	logger.Info("batch complete", logging.Args(logging.Int("processed", 7))...)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if record["msg"] != "batch complete" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["level"] != "info" {
		t.Fatalf("unexpected level: %v", record["level"])
	}
}

func TestUnsupportedFormatRejected(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("info should be filtered at warn level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("warn should pass: %q", buf.String())
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("nothing happens")
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()

	var buf bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("hello")

	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("writer missing message: %q", buf.String())
	}
	data, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "playbox.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("log file missing message: %q", data)
	}
}

func TestNewFromConfigNilUsesDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewFromConfig(nil, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig(nil): %v", err)
	}
	logger.Info("fallback")
	if !strings.Contains(buf.String(), "fallback") {
		t.Fatalf("writer missing message: %q", buf.String())
	}
}
