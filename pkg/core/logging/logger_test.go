package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/msto63/imstr/foundation/core/log"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:   "imstr",
		Level:  "debug",
		Format: "json",
		RunID:  "run-42",
		Output: &buf,
	})

	logger.Debug("demo step", mdwlog.Int("length", 4))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if entry["correlation_id"] != "run-42" {
		t.Errorf("correlation_id = %v", entry["correlation_id"])
	}
	if entry["logger"] != "imstr" || entry["length"] != float64(4) {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewLogger_GeneratesRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Format: "json", Output: &buf})
	logger.Info("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	id, _ := entry["correlation_id"].(string)
	if len(id) != 36 {
		t.Errorf("correlation_id = %q, want a UUID", id)
	}
}

func TestNewLogger_Defaults(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel mdwlog.Level
	}{
		{"valid", "warn", "text", mdwlog.LevelWarn},
		{"warning alias", "warning", "console", mdwlog.LevelWarn},
		{"invalid level", "loud", "json", mdwlog.LevelInfo},
		{"empty", "", "", mdwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(LoggerConfig{Level: tt.level, Format: tt.format, Output: &bytes.Buffer{}})
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestNewLogger_ColorDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Format: "console", Color: false, Output: &buf})
	logger.Error("no colors")

	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("unexpected ANSI codes: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "no colors") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Format:            "logfmt",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})
	logger.Info("once")

	for name, buf := range map[string]*bytes.Buffer{"primary": &primary, "extra": &extra} {
		if strings.Count(buf.String(), "once") != 1 {
			t.Errorf("%s = %q", name, buf.String())
		}
	}
}

func TestLogger_KeyValues(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(LoggerConfig{Level: "debug", Format: "json", Output: &buf})
	logger := New("demo", base)

	logger.Info("message", "key1", "value1", "key2", 42, 7, "skipped", "orphan")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["logger"] != "demo" || entry["key1"] != "value1" || entry["key2"] != float64(42) {
		t.Errorf("entry = %v", entry)
	}
	if _, ok := entry["orphan"]; ok {
		t.Error("odd trailing key should be dropped")
	}
	if logger.Name() != "demo" {
		t.Errorf("Name() = %q", logger.Name())
	}
}

func TestToFields(t *testing.T) {
	if toFields() != nil {
		t.Error("toFields() should be nil for no pairs")
	}
	fields := toFields("a", 1, 2, "b")
	if len(fields) != 1 || fields["a"] != 1 {
		t.Errorf("toFields() = %v", fields)
	}
}

func TestLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(LoggerConfig{Level: "trace", Format: "json", Output: &buf})
	New("demo", base).Trace("operation started", "operation", "demo.slice")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["level"] != "trace" || entry["operation"] != "demo.slice" {
		t.Errorf("entry = %v", entry)
	}
}
