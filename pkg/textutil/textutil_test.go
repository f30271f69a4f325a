package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{
			name:     "fits",
			text:     "read input from file",
			width:    80,
			expected: []string{"read input from file"},
		},
		{
			name:     "wraps at word boundary",
			text:     "prefix each selected line with its line number",
			width:    20,
			expected: []string{"prefix each selected", "line with its line", "number"},
		},
		{
			name:     "collapses whitespace",
			text:     "  a \n\t b  ",
			width:    80,
			expected: []string{"a b"},
		},
		{
			name:     "long word kept whole",
			text:     "see https://example.com/a/very/long/path here",
			width:    10,
			expected: []string{"see", "https://example.com/a/very/long/path", "here"},
		},
		{
			name:     "empty",
			text:     "",
			width:    10,
			expected: []string{""},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Wrap(tt.text, tt.width))
		})
	}
}

func TestIndent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  a\n\n  b", Indent("a\n\nb", "  "))
	assert.Equal(t, "", Indent("", "  "))
}
