package relay

import (
	"fmt"
	"io"
	"strings"
)

// Kind selects the color used for a console line.
type Kind int

const (
	KindInfo Kind = iota
	KindOK
	KindWarn
	KindStop
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const ruleWidth = 50

// Console writes the relay's human-readable status lines. Write errors are
// sticky: the first one is kept and later writes are skipped.
type Console struct {
	w        io.Writer
	colorize bool
	err      error
}

// NewConsole returns a console that writes to w. When colorize is set each
// line is wrapped in an ANSI color matching its kind.
func NewConsole(w io.Writer, colorize bool) *Console {
	if w == nil {
		w = io.Discard
	}
	return &Console{w: w, colorize: colorize}
}

// Line writes a single status line.
func (c *Console) Line(kind Kind, text string) {
	if c.err != nil {
		return
	}
	if c.colorize {
		if color := kindColor(kind); color != "" {
			text = color + text + ansiReset
		}
	}
	_, c.err = fmt.Fprintln(c.w, text)
}

// Rule writes a horizontal separator.
func (c *Console) Rule() {
	c.Line(KindInfo, strings.Repeat("-", ruleWidth))
}

// Err returns the first write error, if any.
func (c *Console) Err() error {
	return c.err
}

func kindColor(kind Kind) string {
	switch kind {
	case KindOK:
		return ansiGreen
	case KindWarn:
		return ansiYellow
	case KindStop:
		return ansiRed
	case KindInfo:
		return ansiBlue
	default:
		return ""
	}
}

func (c *Console) banner(requestFile string) {
	c.Line(KindInfo, "🔄 Direct File Access Mode")
	c.Line(KindInfo, fmt.Sprintf("📝 Request file: %s", requestFile))
	c.Line(KindInfo, fmt.Sprintf("💡 Save your message in '%s' before running", requestFile))
	c.Rule()
}

func (c *Console) missing(requestFile string) {
	c.Line(KindWarn, fmt.Sprintf("⚠️ No %s found. Please create it with your message first.", requestFile))
	c.Line(KindInfo, "💡 It will be read directly - no waiting needed!")
}

func (c *Console) stop() {
	c.Line(KindStop, "🛑 Stop command received")
}

func (c *Console) received(content string) {
	c.Line(KindOK, "✅ Received: "+content)
	c.Line(KindOK, "🤖 Ready to process this request")
	c.Rule()
}
