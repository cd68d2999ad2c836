// Package progress renders in-place download progress lines for the terminal.
package progress

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// barWidth is the total number of segments in the proportional bar.
const barWidth = 30

// Renderer writes single-line progress updates, overwriting the current
// line with \r until Finish emits the terminating newline.
type Renderer struct {
	w     io.Writer
	dirty bool
}

// New creates a renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Update renders one progress sample. When totalBytes is zero the total is
// unknown and only the downloaded count and rate are shown.
func (r *Renderer) Update(downloadedBytes, totalBytes, bytesPerSec int64) {
	if totalBytes > 0 {
		percent := float64(downloadedBytes) / float64(totalBytes) * 100
		fmt.Fprintf(r.w, "\r   [%s] %.1f%% - %s/%s - %s",
			Bar(percent, barWidth),
			percent,
			humanize.Bytes(uint64(downloadedBytes)),
			humanize.Bytes(uint64(totalBytes)),
			Rate(bytesPerSec),
		)
	} else {
		fmt.Fprintf(r.w, "\r   downloading... %s - %s",
			humanize.Bytes(uint64(downloadedBytes)),
			Rate(bytesPerSec),
		)
	}
	r.dirty = true
}

// Finish terminates the in-place line. Safe to call when nothing was drawn.
func (r *Renderer) Finish() {
	if r.dirty {
		fmt.Fprintln(r.w)
		r.dirty = false
	}
}

// Bar renders a fixed-width proportional bar for percent in [0,100].
func Bar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(float64(width) * percent / 100)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Rate formats a byte rate, or "N/A" when the rate is unknown.
func Rate(bytesPerSec int64) string {
	if bytesPerSec <= 0 {
		return "N/A"
	}
	return humanize.Bytes(uint64(bytesPerSec)) + "/s"
}
