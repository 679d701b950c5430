package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Progress bar block characters.
const (
	progressFilled = '█'
	progressEmpty  = '░'
)

// RenderProgressBar creates a completion bar.
// The percent parameter should be 0-100 (values outside this range are clamped).
// The width parameter is the width of the bar itself, excluding the percentage.
// Output format: ████████░░░░  67%
// The bar is colored with CompletionColor.
func RenderProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}

	percent = clampPercent(percent)

	filledCount := int((percent / 100.0) * float64(width))
	emptyCount := width - filledCount

	var sb strings.Builder
	sb.Grow(width * 3)
	for i := 0; i < filledCount; i++ {
		sb.WriteRune(progressFilled)
	}
	for i := 0; i < emptyCount; i++ {
		sb.WriteRune(progressEmpty)
	}

	style := lipgloss.NewStyle().Foreground(CompletionColor(percent))
	return style.Render(sb.String()) + FormatPercent(percent)
}

// FormatPercent renders a whole-number percentage padded to five columns.
func FormatPercent(percent float64) string {
	return fmt.Sprintf(" %3.0f%%", percent)
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
