package relay

import (
	"strings"

	"golang.org/x/text/cases"
)

const stopWord = "stop"

// IsStopSignal reports whether the whole request content, after trimming
// surrounding whitespace and case folding, is the word "stop". Content that
// merely contains the word, such as "please stop soon", is a payload.
func IsStopSignal(content string) bool {
	return cases.Fold().String(strings.TrimSpace(content)) == stopWord
}
