// Package tracker holds the habit × day completion grid and everything derived
// from it.
//
// State is plain data. Tracker owns one State, applies user events to it
// (rename, toggle, start date, reset), persists through a Saver after each
// accepted event and notifies listeners with the resulting Signal set.
// Compute, DateLabels and DayComplete are pure functions over a State and are
// re-run in full after every change; the grid is small enough that caching
// would only add invalidation bugs.
package tracker
