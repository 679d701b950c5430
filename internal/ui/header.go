package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo is the top block of 'tally show'.
type HeaderInfo struct {
	Title   string
	Version string // empty for dev builds
	Range   string // "2026-01-01 → 2026-01-28", empty without a start date
	Today   string // e.g. "today is day 5", empty outside the window
}

// HeaderWidth is the width of the divider under the header.
const HeaderWidth = 50

var (
	headerTitleStyle   = lipgloss.NewStyle().Foreground(ColorChecked).Bold(true)
	headerVersionStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	headerDivider      = lipgloss.NewStyle().Foreground(ColorMuted)
)

// RenderHeader renders the title line, the window line when there is one,
// and a divider.
func RenderHeader(info HeaderInfo) string {
	var b strings.Builder

	b.WriteString(headerTitleStyle.Render(info.Title))
	if info.Version != "" {
		b.WriteString(" " + headerVersionStyle.Render(info.Version))
	}
	b.WriteString("\n")

	window := info.Range
	if info.Today != "" {
		if window != "" {
			window += "  "
		}
		window += "(" + info.Today + ")"
	}
	if window != "" {
		b.WriteString(MutedStyle().Render(window) + "\n")
	}

	b.WriteString(headerDivider.Render(strings.Repeat("━", HeaderWidth)) + "\n")
	return b.String()
}

// PrintHeader writes the header to w.
func PrintHeader(w io.Writer, info HeaderInfo) {
	fmt.Fprint(w, RenderHeader(info))
}
