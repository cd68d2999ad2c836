package retrieve

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxFilenameRunes keeps title-based names well below common filesystem
// name limits once a language suffix and extension are appended.
const maxFilenameRunes = 150

var (
	forbiddenChars = regexp.MustCompile(`[/\\:*?"<>|]`)
	multiSpace     = regexp.MustCompile(`\s+`)
)

// SanitizeFilename converts a video title into a safe filename stem.
// Accents are folded to their base letters, control characters and
// path-hostile punctuation are dropped, and whitespace is collapsed.
// Returns "" when nothing usable remains.
func SanitizeFilename(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, title)
	if err != nil {
		s = title
	}

	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			// Tabs and newlines are word boundaries, not noise.
			if unicode.IsSpace(r) {
				return ' '
			}
			return -1
		}
		return r
	}, s)

	s = forbiddenChars.ReplaceAllString(s, "_")
	s = multiSpace.ReplaceAllString(s, " ")
	s = strings.Trim(s, " .")

	if r := []rune(s); len(r) > maxFilenameRunes {
		s = strings.TrimRight(string(r[:maxFilenameRunes]), " .")
	}

	return s
}
