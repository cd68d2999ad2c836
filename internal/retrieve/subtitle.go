package retrieve

import (
	"os"
	"path/filepath"
	"strings"
)

// FindSubtitle searches next to the downloaded video for a subtitle file.
// Candidates are tried in preference order: per-language suffixes first
// (<base>.<lang>.<format>), then the bare <base>.<format>. The first
// existing file wins. Missing subtitles are not an error; the caller
// degrades the result instead.
func FindSubtitle(videoPath string, langs []string, format string) (string, bool) {
	base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))

	var candidates []string
	for _, lang := range langs {
		candidates = append(candidates, base+"."+lang+"."+format)
	}
	candidates = append(candidates, base+"."+format)

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}

	return "", false
}
