// Package ui renders tally's static terminal output.
//
// Everything here returns strings styled with Lip Gloss so the same pieces
// serve the one-shot commands and the interactive board:
//
//	RenderGrid         - habit × day grid with week/date headers and bars
//	RenderStatsSummary - best/worst habit and day buckets
//	RenderHabitTable   - per-habit completion table (bubbles/table)
//	RenderProgressBar  - completion bar colored by CompletionColor
//	RenderSparkline    - one block per day on a fixed 0-100 scale
//	RenderChartPNG     - PNG line chart of per-day completion (go-chart)
//
// # Colors
//
// Colors are ANSI codes for broad terminal compatibility, plus ColorChecked
// for completed cells. CompletionColor maps a percentage to green (100),
// yellow (50 and up) or gray. SetColorMode applies the ui.color setting and
// DisableColors switches to monochrome (for --no-color).
package ui
