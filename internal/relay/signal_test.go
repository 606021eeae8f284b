package relay_test

import (
	"testing"

	"inputrelay/internal/relay"
)

func TestIsStopSignal(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{content: "stop", want: true},
		{content: "STOP", want: true},
		{content: " stop ", want: true},
		{content: "Stop\n", want: true},
		{content: "\t sToP \r\n", want: true},
		{content: "please stop soon", want: false},
		{content: "stopped", want: false},
		{content: "s top", want: false},
		{content: "", want: false},
		{content: "   ", want: false},
		{content: "hello world", want: false},
		// Full Unicode folding maps the long s to "s".
		{content: "\u017ftop", want: true},
		// Control characters are not whitespace and are not trimmed.
		{content: "\x1fstop", want: false},
	}

	for _, tt := range tests {
		if got := relay.IsStopSignal(tt.content); got != tt.want {
			t.Errorf("IsStopSignal(%q) = %v, want %v", tt.content, got, tt.want)
		}
	}
}
