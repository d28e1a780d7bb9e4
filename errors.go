package layersheet

import (
	"errors"
	"fmt"
)

// ErrNoLayers is returned when discovery finds no displayable layer
// definitions in the input at all.
var ErrNoLayers = errors.New("no displayable layer definitions found")

// InputNotFoundError is returned when the input file does not exist or
// cannot be read. It is reported before any parsing begins.
type InputNotFoundError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e InputNotFoundError) Error() string {
	return fmt.Sprintf("input %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e InputNotFoundError) Unwrap() error { return e.Err }

// OutputWriteError is returned when the destination document cannot be
// created or written. The destination is never left with partial content.
type OutputWriteError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e OutputWriteError) Error() string {
	return fmt.Sprintf("output %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e OutputWriteError) Unwrap() error { return e.Err }
