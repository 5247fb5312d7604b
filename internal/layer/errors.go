package layer

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrBadSpec          = errors.New("bad layer specification")
	ErrZeroNeurons      = errors.New("neuron count must be positive")
	ErrParamsOutOfRange = errors.New("parameter range exceeds parameter list")
	ErrBadIndex         = errors.New("layer index must be at least 1")
)

// SpecError reports a specification string that could not be parsed.
type SpecError struct {
	Spec   string // Rejected specification string
	Reason string // What was wrong with it
	Err    error  // ErrBadSpec or ErrZeroNeurons
}

// Error implements the error interface.
func (e *SpecError) Error() string {
	return fmt.Sprintf("%v %q: %s", e.Err, e.Spec, e.Reason)
}

// Unwrap returns the sentinel the error is classified under.
func (e *SpecError) Unwrap() error {
	return e.Err
}

func badSpec(spec, format string, args ...any) *SpecError {
	return &SpecError{Spec: spec, Reason: fmt.Sprintf(format, args...), Err: ErrBadSpec}
}
