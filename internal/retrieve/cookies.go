package retrieve

import (
	"os"
	"path/filepath"
)

// cookieFileName is the browser-exported cookie jar the tool looks for.
const cookieFileName = "cookies.txt"

// CookieSource identifies where authentication cookies come from. Exactly
// one field is set, or neither when no source is available.
type CookieSource struct {
	File    string
	Browser string
}

// IsZero reports whether no cookie source was resolved.
func (s CookieSource) IsZero() bool {
	return s.File == "" && s.Browser == ""
}

// ResolveCookieSource picks the cookie source for a download:
// a cookies.txt in the output directory wins, then one in the working
// directory, then the live browser cookie store. An empty browser name
// disables the fallback, leaving the source empty.
func ResolveCookieSource(outputDir, workDir, browser string) CookieSource {
	for _, dir := range []string{outputDir, workDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, cookieFileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return CookieSource{File: path}
		}
	}

	return CookieSource{Browser: browser}
}
