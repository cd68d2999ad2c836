package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBar_HalfFull(t *testing.T) {
	bar := Bar(50, 30)

	assert.Equal(t, 15, strings.Count(bar, "█"))
	assert.Equal(t, 15, strings.Count(bar, "░"))
}

func TestBar_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		filled  int
	}{
		{"empty", 0, 0},
		{"full", 100, 30},
		{"clamped low", -5, 0},
		{"clamped high", 150, 30},
		{"third", 33.3, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := Bar(tt.percent, 30)
			assert.Equal(t, tt.filled, strings.Count(bar, "█"))
		})
	}
}

func TestRenderer_Update_KnownTotal(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Update(50, 100, 1024)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\r"), "line must be overwritten in place")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "50 B/100 B")
	assert.Contains(t, out, "1.0 kB/s")
}

func TestRenderer_Update_UnknownTotal(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Update(2048, 0, 0)

	out := buf.String()
	assert.Contains(t, out, "downloading...")
	assert.Contains(t, out, "2.0 kB")
	assert.Contains(t, out, "N/A")
	assert.NotContains(t, out, "%")
}

func TestRenderer_Finish(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	// Nothing drawn yet: no stray newline.
	r.Finish()
	assert.Empty(t, buf.String())

	r.Update(10, 100, 0)
	r.Finish()
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))

	// Finish is idempotent.
	n := buf.Len()
	r.Finish()
	assert.Equal(t, n, buf.Len())
}
