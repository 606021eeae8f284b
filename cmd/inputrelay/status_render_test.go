package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"inputrelay/internal/preflight"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Working directory", statusError, "missing", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Working directory:", "[ERROR] missing")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Marker file", statusOK, "absent", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestPreflightLines(t *testing.T) {
	lines := preflightLines([]preflight.Result{
		{Name: "Working directory", Passed: true, Detail: "ok"},
		{Name: "Request file", Optional: true, Detail: "not written yet"},
		{Name: "State directory", Detail: "does not exist"},
	}, false)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, want := range []string{"[OK] ok", "[WARN] not written yet", "[ERROR] does not exist"} {
		if !strings.Contains(lines[i], want) {
			t.Fatalf("line %d: expected %q, got %q", i, want, lines[i])
		}
	}
}

func TestShouldColorizeBuffer(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("expected buffers to be uncolored")
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"Setting", "Value"}, [][]string{{"only-key"}})
	if !strings.Contains(out, "only-key") || !strings.Contains(out, "SETTING") {
		t.Fatalf("unexpected table output:\n%s", out)
	}
	if renderTable(nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}
