package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"DEBUG", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"Warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCorrelationIDIsLogged(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: slog.LevelDebug, Format: FormatJSON, Output: &buf})

	ctx := WithCorrelationID(context.Background(), "abc123")
	l.Error(ctx, "render failed", errors.New("boom"), "problem", "wire-field")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log entry: %v", err)
	}
	if entry["correlation_id"] != "abc123" {
		t.Errorf("correlation_id = %v, want abc123", entry["correlation_id"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v, want boom", entry["error"])
	}
	if entry["problem"] != "wire-field" {
		t.Errorf("problem = %v, want wire-field", entry["problem"])
	}
}

func TestGeneratedCorrelationID(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "")
	if CorrelationID(ctx) == "" {
		t.Fatal("expected a generated correlation ID")
	}
	if CorrelationID(context.Background()) != "" {
		t.Error("expected empty ID on bare context")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: slog.LevelWarn, Format: FormatText, Output: &buf})
	l.Info(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered, got %q", buf.String())
	}
	l.Warn(context.Background(), "shown")
	if buf.Len() == 0 {
		t.Error("expected warn to be written")
	}
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	var buf bytes.Buffer
	SetDefault(New(Options{Level: slog.LevelInfo, Output: &buf}))
	Default().Info(context.Background(), "hello")
	if !bytes.Contains(buf.Bytes(), []byte("hello")) {
		t.Errorf("default logger did not write, got %q", buf.String())
	}
}
