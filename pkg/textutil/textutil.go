// Package textutil formats help text for terminal output.
package textutil

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Wrap collapses whitespace in text and breaks it into lines of at most width characters. Words
// longer than width are kept whole on their own line. Wrap never returns an empty slice, so
// callers can always print the first element.
func Wrap(text string, width int) []string {
	text = strings.Join(strings.Fields(text), " ")
	if width < 1 {
		width = 1
	}
	return strings.Split(wordwrap.WrapString(text, uint(width)), "\n")
}

// Indent prefixes every line of text with prefix. Empty lines are left empty.
func Indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
