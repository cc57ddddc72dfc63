// Package log provides slog handler utilities for survcomp.
//
// The main type is QuietHandler, a wrapper that drops records below a
// minimum level. The figure save path runs under a quiet handler so that
// non-fatal rendering warnings (degenerate bins, empty datasets) cannot
// drown out or abort the final write.
package log
