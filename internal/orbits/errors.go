package orbits

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDegree     = errors.New("recurrence degree must be >= 1")
	ErrZeroWeights       = errors.New("sample weights sum to zero")
	ErrNoPoints          = errors.New("no sample points")
	ErrUnknownFractal    = errors.New("unknown fractal kind")
	ErrUnknownSampling   = errors.New("unknown sampling level")
	ErrUnknownColoring   = errors.New("unknown coloring mode")
	ErrUnknownMap        = errors.New("unknown value map")
	ErrInvalidGradient   = errors.New("invalid gradient")
	ErrNoStep            = errors.New("no render step covers time")
	ErrUnknownStep       = errors.New("unknown render step kind")
	ErrUnknownPreset     = errors.New("unknown preset")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrInvalidView       = errors.New("zoom must be positive and finite")
)

// ParamError reports an invalid parameter file field.
type ParamError struct {
	Field string
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("param %s: %v", e.Field, e.Err)
}

func (e *ParamError) Unwrap() error { return e.Err }
