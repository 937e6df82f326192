package bpmn

import (
	"errors"
	"fmt"
)

// Sentinel error kinds from the translation's error taxonomy. Every
// fatal condition the translator can raise wraps one of these so callers
// can distinguish them with errors.Is.
var (
	// ErrMalformedInput signals an XML parse failure or a root element
	// that is not a BPMN definitions element.
	ErrMalformedInput = errors.New("bpmn: malformed input")
	// ErrUnresolvedReference signals a sequence or message flow whose
	// endpoint, after alias resolution, names no node.
	ErrUnresolvedReference = errors.New("bpmn: unresolved reference")
	// ErrIOFailure signals an output directory or file write failure.
	ErrIOFailure = errors.New("bpmn: io failure")
)

// MalformedInput wraps ErrMalformedInput with the failing detail.
func MalformedInput(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrMalformedInput)
}

// UnresolvedReference wraps ErrUnresolvedReference naming the offending
// edge and endpoint id.
func UnresolvedReference(edgeID, endpointID string) error {
	return fmt.Errorf("edge %q references unknown id %q: %w", edgeID, endpointID, ErrUnresolvedReference)
}

// IOFailure wraps ErrIOFailure with the underlying cause.
func IOFailure(op string, cause error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrIOFailure, cause)
}
