package util

import (
	"strings"
)

// SnippetLimit is the number of runes Snippet keeps.
const SnippetLimit = 200

// Snippet returns a single-line prefix of b for debug logs. Line breaks are
// folded into spaces and anything past SnippetLimit runes becomes "...".
func Snippet(b []byte) string {
	s := strings.Join(strings.Fields(string(b)), " ")
	runes := []rune(s)
	if len(runes) <= SnippetLimit {
		return s
	}
	return string(runes[:SnippetLimit]) + "..."
}
