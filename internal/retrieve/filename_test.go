package retrieve

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "My Video", "My Video"},
		{"accents folded", "Léon: The Café", "Leon_ The Cafe"},
		{"path separators", "a/b\\c", "a_b_c"},
		{"reserved punctuation", `what? "this" <here>`, "what_ _this_ _here_"},
		{"whitespace collapsed", "too   many\tspaces", "too many spaces"},
		{"newlines become spaces", "line\none\r\ntwo", "line one two"},
		{"trailing dots trimmed", "name...", "name"},
		{"control chars dropped", "a\x00b\x1fc", "abc"},
		{"separators only", "///", "___"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.title))
		})
	}
}

func TestSanitizeFilename_LongTitleTruncated(t *testing.T) {
	long := strings.Repeat("x", 400)

	got := SanitizeFilename(long)

	assert.Len(t, []rune(got), maxFilenameRunes)
}
