// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context handling, error logging
//              and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-19 v0.2.0: Allocation error and timer coverage

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/imstr/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "imstr",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("level = %v, want %v", logger.GetLevel(), LevelError)
	}
	if logger.name != "imstr" {
		t.Errorf("name = %v, want imstr", logger.name)
	}
	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatJSON)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown")

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["level"] != "warn" || lines[1]["level"] != "error" {
		t.Errorf("levels = %v, %v", lines[0]["level"], lines[1]["level"])
	}
}

func TestWithMethodsDoNotModifyParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatJSON)
	child := parent.WithField("component", "demo").WithCorrelationID("run-1").WithName("imstr")

	if child == parent {
		t.Fatal("With* should return a new logger")
	}

	parent.Info("from parent")
	child.Info("from child", Int("step", 3))

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if _, ok := lines[0]["component"]; ok {
		t.Error("parent should not carry child fields")
	}
	if lines[1]["component"] != "demo" || lines[1]["correlation_id"] != "run-1" || lines[1]["logger"] != "imstr" {
		t.Errorf("child entry = %v", lines[1])
	}
	if lines[1]["step"] != float64(3) {
		t.Errorf("step = %v", lines[1]["step"])
	}
}

func TestWithFieldsAndFormat(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatJSON)
	fields := Field("command", "imstr op concat").Merge(Bool("budgeted", true))
	child := parent.WithFields(fields).WithFormat(FormatLogfmt)

	child.Info("done")
	want := `message="done" budgeted=true command="imstr op concat"`
	if !strings.Contains(buf.String(), want) {
		t.Errorf("output = %q, want it to contain %q", buf.String(), want)
	}

	buf.Reset()
	parent.Info("done")
	lines := decodeLines(t, buf)
	if _, ok := lines[0]["command"]; ok {
		t.Error("parent should keep its own fields and format")
	}
}

func TestFieldsMerge(t *testing.T) {
	base := Fields{"a": 1, "b": 2}
	merged := base.Merge(Fields{"b": 3, "c": 4})

	if merged["a"] != 1 || merged["b"] != 3 || merged["c"] != 4 {
		t.Errorf("Merge() = %v", merged)
	}
	if base["b"] != 2 || len(base) != 2 {
		t.Errorf("Merge() modified receiver: %v", base)
	}
}

func TestSetLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)

	logger.Trace("hidden")
	logger.SetLevel(LevelTrace)
	logger.Trace("shown")

	lines := decodeLines(t, buf)
	if len(lines) != 1 || lines[0]["level"] != "trace" {
		t.Errorf("lines = %v", lines)
	}
	if logger.GetLevel() != LevelTrace {
		t.Errorf("GetLevel() = %v", logger.GetLevel())
	}
}

func TestLogWithErr(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)

	logger.WarnWithErr("command failed", errors.New("bad index"))
	logger.ErrorWithErr("command failed", errors.New("no memory"), Int("requested", 12))

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["level"] != "warn" || lines[0]["error"] != "bad index" {
		t.Errorf("warn entry = %v", lines[0])
	}
	if lines[1]["level"] != "error" || lines[1]["error"] != "no memory" || lines[1]["requested"] != float64(12) {
		t.Errorf("error entry = %v", lines[1])
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"plain error", errors.New("boom"), "error"},
		{"low severity", mdwerror.New("bad input").WithCode(mdwerror.CodeInvalidInput), "info"},
		{"medium severity", mdwerror.New("odd"), "warn"},
		{"high severity", mdwerror.New("no memory").WithCode(mdwerror.CodeAllocationFailed), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			lines := decodeLines(t, buf)
			if len(lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(lines))
			}
			if lines[0]["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", lines[0]["level"], tt.wantLevel)
			}
		})
	}
}

func TestLogErrorFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatJSON)

	err := mdwerror.New("cannot allocate").
		WithCode(mdwerror.CodeAllocationFailed).
		WithOperation("imstr.Concat").
		WithDetail("requested", 12)
	logger.LogError(err)
	logger.LogError(nil)

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]
	if line["error_code"] != "ALLOCATION_FAILED" {
		t.Errorf("error_code = %v", line["error_code"])
	}
	if line["error_operation"] != "imstr.Concat" {
		t.Errorf("error_operation = %v", line["error_operation"])
	}
	if line["error_requested"] != float64(12) {
		t.Errorf("error_requested = %v", line["error_requested"])
	}
	if _, ok := line["error_details"]; !ok {
		t.Error("error_details missing")
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("imstr.ReplaceAll").WithField("input_len", 59)
	if !timer.IsRunning() {
		t.Error("timer should be running")
	}
	timer.Stop()
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}

	failing := logger.StartTimer("imstr.Concat")
	failing.StopWithError(errors.New("budget exceeded"))

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["message"] != "imstr.ReplaceAll completed" || lines[0]["input_len"] != float64(59) {
		t.Errorf("completion entry = %v", lines[0])
	}
	if lines[1]["level"] != "error" || lines[1]["error"] != "budget exceeded" || lines[1]["success"] != false {
		t.Errorf("failure entry = %v", lines[1])
	}
}

func TestTimerBelowLevelLogsNothing(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger.StartTimer("quiet").Stop()
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("dropped")
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard() should not enable any level")
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	logger, buf := newBufferLogger(LevelDebug, FormatText)
	SetDefault(logger)
	Info("via default")

	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger output = %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" INFO ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
