package figure

import (
	"errors"
	"fmt"
)

// ErrNoPanels is returned when a comparison has nothing to draw.
var ErrNoPanels = errors.New("figure: comparison has no panels")

// RenderError wraps a failure of the plotting backend or of persisting the
// figure. Like catalog load failures it is terminal: the run aborts and no
// output file is left behind.
type RenderError struct {
	// Op names the rendering stage that failed (e.g. "encode", "write").
	Op string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause for errors.Is / errors.As.
func (e *RenderError) Unwrap() error {
	return e.Err
}
