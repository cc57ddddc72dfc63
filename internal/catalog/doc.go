// Package catalog loads flat text survey tables into in-memory numeric
// matrices and extracts the columns each dataset consumes.
//
// Tables are whitespace- or comma-delimited with a configurable number of
// header lines to skip. Fields that fail numeric parsing (such as the
// source-name column of the CORNISH catalog) become NaN rather than errors,
// matching the behavior of the array library the survey pipelines were
// originally built on. Structural problems, by contrast, fail fast: a
// missing file, a ragged row, or a column map referencing beyond the
// table's width abort the run before any rendering starts.
package catalog
