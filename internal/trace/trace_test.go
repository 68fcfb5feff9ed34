package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"PHASE", LevelPhase, false},
		{"detail", LevelDetail, false},
		{"debug", LevelDebug, false},
		{"verbose", LevelOff, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShouldEmit(t *testing.T) {
	if LevelPhase.ShouldEmit(ScopeFile) {
		t.Error("phase level must not emit file events")
	}
	if !LevelDetail.ShouldEmit(ScopeFile) {
		t.Error("detail level must emit file events")
	}
	if LevelDetail.ShouldEmit(ScopeBlock) || !LevelDebug.ShouldEmit(ScopeBlock) {
		t.Error("block events belong to debug level only")
	}
	if LevelOff.ShouldEmit(ScopeDriver) {
		t.Error("off emits nothing")
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)

	run := Begin(tr, ScopeDriver, "align", 0)
	file := Begin(tr, ScopeFile, "file", run.ID())
	Point(tr, ScopeBlock, "align.degraded", file.ID(), "filtered")
	file.WithExtra("lines", "3").End("a.ts")
	run.End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d events, want 4:\n%s", len(lines), buf.String())
	}
	var ev struct {
		Kind     string            `json:"kind"`
		Scope    string            `json:"scope"`
		ParentID uint64            `json:"parent_id"`
		Detail   string            `json:"detail"`
		Extra    map[string]string `json:"extra"`
	}
	if err := json.Unmarshal([]byte(lines[2]), &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Kind != "end" || ev.Scope != "file" || ev.Detail != "a.ts" || ev.Extra["lines"] != "3" {
		t.Errorf("unexpected file end event: %+v", ev)
	}
	if ev.ParentID != run.ID() {
		t.Errorf("parent = %d, want %d", ev.ParentID, run.ID())
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatText)
	Point(tr, ScopeBlock, "align.degraded", 7, "lines 3-4")
	out := buf.String()
	if !strings.Contains(out, "• block align.degraded (lines 3-4)") {
		t.Errorf("unexpected text event: %q", out)
	}
}

func TestNopSpan(t *testing.T) {
	s := Begin(Nop, ScopeDriver, "x", 0)
	if s.ID() != 0 {
		t.Errorf("nop span id = %d", s.ID())
	}
	if d := s.WithExtra("k", "v").End(""); d != 0 {
		t.Errorf("nop span duration = %v", d)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("empty context must yield Nop")
	}
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	ctx := WithParentSpan(WithTracer(context.Background(), tr), 42)
	if FromContext(ctx) != tr {
		t.Error("tracer not propagated")
	}
	if ParentSpan(ctx) != 42 {
		t.Errorf("parent span = %d", ParentSpan(ctx))
	}
}
