// Package cli implements the tally command-line interface.
//
// Each Cobra command is a thin shell around a *Command function that opens
// the app (config, store, tracker), performs one tracker operation and prints
// the result:
//
//	tally                      - Open the interactive board (same as 'tally board')
//	tally show [--table]       - Print the grid and summary
//	tally stats [--json]       - Print statistics
//	tally toggle <habit> <day> - Flip one cell
//	tally rename <habit> <name>
//	tally start <date>
//	tally reset [--yes]
//	tally chart [-o file.png]
//	tally export [--format json|yaml]
//	tally init / tally config [path|show|set]
//
// Habits and days are 1-based on the command line. A habit may also be named,
// and a day may be given as a date inside the tracked window.
//
// # Error Handling
//
// Commands return structured errors from internal/errors. Execute prints them
// to stderr, or as a JSON envelope when --json is active, and exits 1.
package cli
