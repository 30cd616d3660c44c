package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_TextIsSortedAndFiltered(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatText, App: "inpatient-chart", Output: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"chart_id": "c1"}).Info("layout built", map[string]any{"pages": 2})

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %q", out)
	}
	if !strings.HasPrefix(out, "app=inpatient-chart chart_id=c1 level=info msg=layout built pages=2 ts=") {
		t.Fatalf("unexpected line %q", out)
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, Output: &buf})

	l.Warn("capture failed", map[string]any{"status": 500, "": "ignored"})

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if m["level"] != "warn" || m["msg"] != "capture failed" || m["status"] != float64(500) {
		t.Fatalf("unexpected entry %v", m)
	}
	if _, ok := m[""]; ok {
		t.Fatalf("empty key must be dropped")
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("nope") != Info || ParseLevel("debug") != Debug {
		t.Fatalf("unexpected level parsing")
	}
	if ParseFormat(" JSON ") != FormatJSON || ParseFormat("logfmt") != FormatText {
		t.Fatalf("unexpected format parsing")
	}
}

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatalf("FromContext must never return nil")
	}

	var buf bytes.Buffer
	l := New(Options{Output: &buf})
	FromContext(WithContext(context.Background(), l)).Info("hello", nil)
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Fatalf("expected logger from context to be used, got %q", buf.String())
	}
}
