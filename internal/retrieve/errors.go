package retrieve

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidURL indicates the URL failed YouTube shape validation.
	// No filesystem side effects have happened when this is returned.
	ErrInvalidURL = errors.New("invalid YouTube URL")

	// ErrNotInstalled indicates the retrieval capability is unavailable.
	ErrNotInstalled = errors.New("yt-dlp not available")
)

// authErrorFragments are substrings of retrieval errors that usually mean
// the request needed a logged-in session or the session cookies are stale.
var authErrorFragments = []string{
	"Sign in to confirm",
	"Requested format is not available",
	"Only images are available",
}

// DownloadError wraps a failed retrieval. Guidance, when non-empty, carries
// actionable remediation text for known failure modes; the error still
// propagates either way.
type DownloadError struct {
	Err      error
	Guidance string
}

func (e *DownloadError) Error() string {
	if e.Guidance != "" {
		return fmt.Sprintf("download failed: %v\n%s", e.Err, e.Guidance)
	}
	return fmt.Sprintf("download failed: %v", e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// wrapDownload builds a DownloadError, attaching cookie remediation guidance
// when the cause matches a known auth-shaped failure.
func wrapDownload(err error, outputDir string) *DownloadError {
	dlErr := &DownloadError{Err: err}

	msg := err.Error()
	for _, fragment := range authErrorFragments {
		if strings.Contains(msg, fragment) {
			dlErr.Guidance = cookieGuidance(outputDir)
			break
		}
	}

	return dlErr
}

func cookieGuidance(outputDir string) string {
	cookiePath := filepath.Join(outputDir, "cookies.txt")
	return strings.Join([]string{
		"Suggested fixes:",
		"  1. Close the browser so its cookie database is unlocked",
		"  2. Or export cookies manually with a browser extension",
		"     (e.g. \"Get cookies.txt LOCALLY\"), sign in to YouTube,",
		"     save the export to " + cookiePath + ", and rerun",
	}, "\n")
}
