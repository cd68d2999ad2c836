package retrieve

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// videoIDPattern matches the 11-character YouTube video ID alphabet.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

var youtubeHosts = map[string]bool{
	"youtube.com":       true,
	"www.youtube.com":   true,
	"m.youtube.com":     true,
	"music.youtube.com": true,
}

// ValidateURL checks that raw looks like a YouTube video URL. It accepts
// watch, shorts, live and embed paths on youtube.com hosts, and short
// youtu.be links.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}

	host := strings.ToLower(u.Hostname())

	if host == "youtu.be" {
		if videoIDPattern.MatchString(strings.Trim(u.Path, "/")) {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}

	if !youtubeHosts[host] {
		return fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}

	switch {
	case u.Path == "/watch":
		if videoIDPattern.MatchString(u.Query().Get("v")) {
			return nil
		}
	case strings.HasPrefix(u.Path, "/shorts/"),
		strings.HasPrefix(u.Path, "/live/"),
		strings.HasPrefix(u.Path, "/embed/"):
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) == 2 && videoIDPattern.MatchString(parts[1]) {
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidURL, raw)
}
