package catalog

import (
	"errors"
	"fmt"
)

// Structural load errors. All of them abort the run; none are retried.
var (
	// ErrRaggedRow is returned when a data row has a different number of
	// columns than the first data row of the table.
	ErrRaggedRow = errors.New("catalog: inconsistent column count")

	// ErrColumnOutOfRange is returned when a dataset's column map
	// references a column the loaded table does not have.
	ErrColumnOutOfRange = errors.New("catalog: column index out of range")

	// ErrEmptyTable is returned when a table has rows but no columns,
	// which indicates a delimiter mismatch rather than an empty survey.
	ErrEmptyTable = errors.New("catalog: table has no columns")
)

// LoadError wraps a structural or I/O failure with the file it came from.
// It corresponds to the fail-fast data-load failure mode: the caller is
// expected to abort, not recover.
type LoadError struct {
	// Path is the file the error originated from.
	Path string

	// Source is the dataset source name the file was loaded for.
	Source string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Source, e.Path, e.Err)
}

// Unwrap returns the underlying cause for errors.Is / errors.As.
func (e *LoadError) Unwrap() error {
	return e.Err
}
