package retrieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "unknown"},
		{-1, "unknown"},
		{59, "0:59"},
		{212, "3:32"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.seconds), "seconds=%d", tt.seconds)
	}
}
