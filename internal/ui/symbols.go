package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolWarning = "⚠"
	SymbolParty   = "🎉"
)

// Grid cell glyphs.
const (
	SymbolChecked   = "■"
	SymbolUnchecked = "□"
)
