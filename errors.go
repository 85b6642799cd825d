package simkernel

import (
	"errors"
	"fmt"
)

// Sentinel errors, in the teacher's package-level var-block style.
var (
	ErrEventTimeInPast        = errors.New("scheduled time is before the current clock")
	ErrProcessAlreadyActive   = errors.New("process already has a pending event")
	ErrProcessNotActive       = errors.New("process has no pending event to cancel")
	ErrResourceOverRelinquish = errors.New("relinquished more units than the process holds")
	ErrNoEventsRemaining      = errors.New("no events remain on either list")
)

// ErrorCategory classifies a KernelError into configuration, scheduling,
// or semantic failures.
type ErrorCategory int

const (
	// ErrorConfiguration covers malformed model construction: invalid CDF
	// tables, non-positive distribution parameters, degenerate histogram
	// bounds. Raised at construction time, before a run starts.
	ErrorConfiguration ErrorCategory = iota
	// ErrorScheduling covers kernel-invariant violations during a run:
	// scheduling into the past, activating or resuming a notice that is
	// already scheduled, suspending one that is not.
	ErrorScheduling
	// ErrorSemantic covers model-author logic errors that the kernel can
	// detect but not recover from, e.g. relinquishing more units of a
	// resource than a process holds.
	ErrorSemantic
)

func (c ErrorCategory) String() string {
	switch c {
	case ErrorConfiguration:
		return "configuration"
	case ErrorScheduling:
		return "scheduling"
	case ErrorSemantic:
		return "semantic"
	default:
		return "unknown"
	}
}

// KernelError is the fatal error type raised by kernel invariant violations.
// Construction-time configuration errors panic immediately; scheduling and
// semantic errors raised while a run is in progress panic and are
// recovered by Simulator.Run, which converts them into a returned error so
// the embedding program can log and exit cleanly instead of crashing
// mid-run.
type KernelError struct {
	Category ErrorCategory
	Err      error
}

func (e *KernelError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Category, e.Err)
}

func (e *KernelError) Unwrap() error { return e.Err }

func newKernelError(category ErrorCategory, err error) *KernelError {
	return &KernelError{Category: category, Err: err}
}

// fail raises a fatal kernel error. Only called from contexts recovered by
// Simulator.Run, or, for ErrorConfiguration, from constructors called before
// a run has started (in which case it propagates as a panic to the caller).
func fail(category ErrorCategory, err error) {
	panic(newKernelError(category, err))
}

func failf(category ErrorCategory, base error, format string, args ...any) {
	fail(category, fmt.Errorf("%w: "+format, append([]any{base}, args...)...))
}
