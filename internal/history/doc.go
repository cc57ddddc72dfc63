// Package history provides SQLite-based storage of past comparison runs.
//
// Every successful plot records its identity (variant, suffix, output
// path) and the bin counts of every series, so earlier survey models can
// be compared against later ones without keeping the figures around.
// The ledger lives in the XDG data directory by default and recording can
// be disabled per run.
package history
