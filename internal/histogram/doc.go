// Package histogram provides deterministic one-dimensional binning over
// explicit bin edges.
//
// The binning semantics match the numeric-array convention used by survey
// analysis pipelines: every bin is half-open [edge[i], edge[i+1]) except the
// last, which also includes its right edge. Values outside the edge range
// and NaN values are ignored rather than treated as errors, because an
// out-of-range or missing detection is a valid observational outcome.
//
// Design decision: binning is kept separate from rendering so that bin
// counts can be unit-tested, written to reports, and stored in the run
// ledger without touching any plotting backend.
package histogram
