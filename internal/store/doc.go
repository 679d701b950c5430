// Package store persists the habit tracker record in a key-value sink.
//
// A Store reads and writes one JSON record under a namespace key. Loading is
// lenient: an absent or broken record yields defaults, and a partial record is
// merged field by field before the grid is reconciled to its habit count.
package store
