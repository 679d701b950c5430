// Package board implements the interactive habit board.
//
// The board is a Bubble Tea program over a tracker.Tracker. Every key that
// changes data becomes a tracker event passed to Dispatch; the returned
// signals decide what else happens (a celebration when a day is fully
// complete, cursor clamping after a reset). The view is rebuilt from the
// tracker state on every frame.
//
// # Keys
//
//	arrows / hjkl  move the cursor
//	space / x      toggle the focused cell
//	e / enter      rename the focused habit
//	d              edit the start date
//	R              reset everything (asks y/n)
//	?              help
//	q / ctrl+c     quit
package board
