package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		width   int
		want    string
	}{
		{"zero width", 50, 0, ""},
		{"negative width", 50, -3, ""},
		{"half", 50, 10, "█████░░░░░  50%"},
		{"quarter", 25, 4, "█░░░  25%"},
		{"clamps low", -5, 10, "░░░░░░░░░░   0%"},
		{"clamps high", 150, 10, "██████████ 100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderProgressBar(tt.percent, tt.width))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "   0%", FormatPercent(0))
	assert.Equal(t, "  33%", FormatPercent(100.0/3))
	assert.Equal(t, " 100%", FormatPercent(100))
}
