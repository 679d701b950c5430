package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

// sparklineBlockRunes provides indexed access to block characters.
var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderSparkline draws one block per percentage value on a fixed 0-100 scale,
// so an all-zero month stays flat at the bottom. Each block is colored with
// CompletionColor for its own value.
func RenderSparkline(percents []float64) string {
	if len(percents) == 0 {
		return ""
	}

	var sb strings.Builder
	numLevels := len(sparklineBlockRunes)

	for _, v := range percents {
		v = clampPercent(v)
		level := int(v / 100 * float64(numLevels-1))
		style := lipgloss.NewStyle().Foreground(CompletionColor(v))
		sb.WriteString(style.Render(string(sparklineBlockRunes[level])))
	}

	return sb.String()
}
