package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_InfoWithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log = log.WithFields(map[string]any{"rule": ".card", "layer": 1})
	log.Info("layer committed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["message"] != "layer committed" {
		t.Errorf("message = %v, expected %q", entry["message"], "layer committed")
	}
	if entry["rule"] != ".card" {
		t.Errorf("rule field = %v, expected %q", entry["rule"], ".card")
	}
}

func TestLogger_DebugRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Debug("hidden")
	if got := strings.TrimSpace(buf.String()); got != "" {
		t.Errorf("debug entry written at info level: %q", got)
	}
}

func TestLogger_ErrorAttachesErr(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Error("save failed", errors.New("disk full"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["error"] != "disk full" {
		t.Errorf("error field = %v, expected %q", entry["error"], "disk full")
	}
}

func TestLogger_InvalidLevel(t *testing.T) {
	if _, err := New(Options{Level: "shouty"}); err == nil {
		t.Error("expected error for invalid level, got nil")
	}
}

func TestLogger_NopDiscards(t *testing.T) {
	log := Nop()
	log.Info("nothing")
	log.Error("nothing", errors.New("x"))
}
