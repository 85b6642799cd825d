package random

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed distribution parameters and CDF tables.
// Construction-time problems (invalid CDF tables) return an error the
// caller can propagate, while per-sample parameter problems (NextGamma
// called with alpha<=0 deep inside a running model) panic with
// *ParameterError so Simulator.Run's recover can surface them as a
// configuration-category failure without the model author having to
// thread an error return through every sampler call.
var (
	ErrNonPositiveParameter = errors.New("distribution parameter must be positive")
	ErrNegativeParameter    = errors.New("distribution parameter must not be negative")
	ErrProbabilityRange     = errors.New("probability must be in [0,1]")
	ErrTriangularMode       = errors.New("triangular mode must satisfy a <= b <= c, a != c")
	ErrTableMonotone        = errors.New("CDF table y-axis must be non-decreasing")
	ErrTableIncreasing      = errors.New("CDF table x-axis must be strictly increasing")
	ErrTableNotNormalized   = errors.New("CDF table cumulative probability must reach 1")
	ErrTableEmpty           = errors.New("CDF table is too short (continuous needs 2 points, discrete 1) or its axes differ in length")
)

// ParameterError is raised (via panic) when a sampler is called with a
// parameter its distribution disallows, e.g. NextGamma(alpha<=0, ...).
type ParameterError struct {
	Func string
	Err  error
}

func (e *ParameterError) Error() string { return fmt.Sprintf("random.%s: %s", e.Func, e.Err) }
func (e *ParameterError) Unwrap() error { return e.Err }

func fail(funcName string, base error, format string, args ...any) {
	panic(&ParameterError{Func: funcName, Err: fmt.Errorf("%w: "+format, append([]any{base}, args...)...)})
}
