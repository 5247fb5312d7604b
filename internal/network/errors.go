package network

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrParamCountMismatch = errors.New("wrong number of parameters for given network")
	ErrArityMismatch      = errors.New("layer inputs do not match previous layer outputs")
	ErrSpent              = errors.New("network formulas already generated")
)

// MismatchError reports a parameter list whose length differs from what the
// layers require.
type MismatchError struct {
	Want int // Sum of the layers' parameter counts
	Got  int // Length of the supplied parameter list
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: layers need %d, got %d", ErrParamCountMismatch, e.Want, e.Got)
}

// Unwrap returns ErrParamCountMismatch.
func (e *MismatchError) Unwrap() error {
	return ErrParamCountMismatch
}

// LayerError attaches the position of a failing layer to its error.
type LayerError struct {
	Index int    // 1-based layer index
	Spec  string // Layer specification string, if any
	Err   error
}

// Error implements the error interface.
func (e *LayerError) Error() string {
	if e.Spec != "" {
		return fmt.Sprintf("layer %d (%s): %v", e.Index, e.Spec, e.Err)
	}
	return fmt.Sprintf("layer %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *LayerError) Unwrap() error {
	return e.Err
}
