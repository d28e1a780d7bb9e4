package keymap

import "fmt"

// LayerNotFoundError is returned when no definition header for the requested
// layer exists in the config text.
type LayerNotFoundError struct {
	Layer string // requested layer name, e.g. "BASE"
}

// Error implements the error interface.
func (e LayerNotFoundError) Error() string {
	return fmt.Sprintf("layer %s: no %s%s definition found", e.Layer, headerPrefix, e.Layer)
}

// MalformedDefinitionError is returned when a layer definition's
// continuation-line structure is inconsistent.
type MalformedDefinitionError struct {
	Layer  string // offending layer name
	Reason string // human-readable description of the inconsistency
}

// Error implements the error interface.
func (e MalformedDefinitionError) Error() string {
	return fmt.Sprintf("layer %s: malformed definition: %s", e.Layer, e.Reason)
}
