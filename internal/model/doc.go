// Package model defines the core data structures used throughout survcomp.
//
// This package contains the following main types:
//   - Variable: a physical quantity with bin edges and axis display limits
//   - DatasetSpec: a catalog source with its column layout and display label
//   - Sample: per-variable values extracted from a loaded catalog
//   - Comparison: the assembled multi-panel comparison (one Panel per
//     Variable, one Series per dataset that maps a column for it)
//
// Design decision: models live in their own package so that catalog loading,
// figure rendering, report writing, and the run ledger can all share them
// without import cycles. Everything here is constructed once per run and
// never mutated afterwards.
package model
