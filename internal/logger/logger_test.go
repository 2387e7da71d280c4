package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: WARN, Format: TextFormat, Output: &buf})

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below WARN leaked: %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("WARN and ERROR missing: %q", out)
	}
	if !strings.Contains(out, "error=boom") {
		t.Errorf("error detail missing: %q", out)
	}
}

func TestTextFormatFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: DEBUG, Format: TextFormat, Output: &buf})

	l.Info("snapshot", map[string]interface{}{
		"zeta":  1,
		"alpha": 2,
	})

	out := buf.String()
	if strings.Index(out, "alpha=") > strings.Index(out, "zeta=") {
		t.Errorf("fields not sorted: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: DEBUG, Format: JSONFormat, Output: &buf, Component: "fetchers"})

	l.Warn("feed unavailable", map[string]interface{}{"status": 503})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry.Level != "WARN" {
		t.Errorf("level = %q", entry.Level)
	}
	if entry.Component != "fetchers" {
		t.Errorf("component = %q", entry.Component)
	}
	if entry.Fields["status"] != float64(503) {
		t.Errorf("fields = %v", entry.Fields)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: DEBUG, Format: TextFormat, Output: &buf})

	l.WithComponent("aurora").Info("estimate ready")
	if !strings.Contains(buf.String(), "[aurora]") {
		t.Errorf("component tag missing: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
		ok   bool
	}{
		{"debug", DEBUG, true},
		{"INFO", INFO, true},
		{"Warn", WARN, true},
		{"error", ERROR, true},
		{"fatal", FATAL, true},
		{"verbose", INFO, false},
	}
	for _, tc := range tests {
		got, ok := ParseLevel(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ParseLevel(%q) = %v,%v", tc.in, got, ok)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, ok := ParseFormat("json"); !ok || f != JSONFormat {
		t.Errorf("ParseFormat(json) = %v,%v", f, ok)
	}
	if f, ok := ParseFormat("text"); !ok || f != TextFormat {
		t.Errorf("ParseFormat(text) = %v,%v", f, ok)
	}
	if _, ok := ParseFormat("yaml"); ok {
		t.Error("ParseFormat(yaml) should fail")
	}
}
