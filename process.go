package simkernel

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnhandledPhase is a sentinel a PhasedProcess implementation can use to
// signal that it reached a phase value it does not recognize. Raising an
// error here is deliberate: silently blocking forever on the conditional
// event list would leave a model author who forgot a case in their phase
// switch with a run that hangs, with no indication why.
var ErrUnhandledPhase = errors.New("phased process reached an unrecognized phase")

// NewUnhandledPhaseError builds the panic value a PhasedProcess should
// raise (via panic, recovered by Simulator.Run) when RunToBlocked is called
// with a phase it does not implement.
func NewUnhandledPhaseError(processName string, phase int) *KernelError {
	return newKernelError(ErrorSemantic, fmt.Errorf("%w: process %q phase %d", ErrUnhandledPhase, processName, phase))
}

// PhasedProcess is the model-author-implemented behavior of a phased
// process: a state machine whose reactivation points are enumerated
// integer phases. The kernel drives it through a ProcessNotice.
type PhasedProcess interface {
	// RunToBlocked advances the process from its current phase until it
	// must block, returning the absolute simulated time of its next
	// reactivation (>= sim.Clock()), or a negative value if it should
	// instead be re-evaluated conditionally (its next phase depends on a
	// guard rather than a fixed delay). Implementations that determine the
	// process has terminated call ProcessNotice.Terminate before returning.
	RunToBlocked(sim *Simulator) float64
	// IsConditionalBlocking reports whether the process's current phase
	// guard still holds (true = stay blocked, do not fire).
	IsConditionalBlocking(sim *Simulator) bool
	// PhaseName names the current phase, for trace lines.
	PhaseName() string
}

// ProcessNotice is the EventNotice wrapper around a PhasedProcess: on each
// firing it emits a trace line, runs the phase body, then either
// reschedules at a fixed future time, hands off to the conditional event
// list, or (if terminated) lets the kernel free the notice.
type ProcessNotice struct {
	BaseEvent
	impl       PhasedProcess
	terminated bool
}

// NewProcessNotice wraps impl in a ProcessNotice scheduled to first run at
// startTime. The caller is responsible for calling sim.ScheduleEvent (or
// sim.Activate) on the result.
func NewProcessNotice(name string, startTime float64, impl PhasedProcess) *ProcessNotice {
	pn := &ProcessNotice{BaseEvent: NewBaseEvent(name, startTime, 0), impl: impl}
	pn.SetOwnership(ClientOwned)
	return pn
}

// Terminate marks the process as finished; once the RunToBlocked call in
// progress (or, if called from outside one, the next) returns, Trigger
// releases it back to the kernel instead of rescheduling it.
func (p *ProcessNotice) Terminate() { p.terminated = true }

// Terminated reports whether Terminate has been called.
func (p *ProcessNotice) Terminated() bool { return p.terminated }

// CanTrigger overrides BaseEvent's unconditional default: a ProcessNotice on
// the conditional event list may only fire once its phase guard releases.
func (p *ProcessNotice) CanTrigger(sim *Simulator) bool {
	return !p.impl.IsConditionalBlocking(sim)
}

func (p *ProcessNotice) Trigger(sim *Simulator) {
	sim.Tracef("process %q advancing from phase %q", p.Name(), p.impl.PhaseName())
	sim.emit(context.Background(), EventTypeProcessAdvanced, map[string]any{"name": p.Name(), "phase": p.impl.PhaseName()}, nil)
	next := p.impl.RunToBlocked(sim)
	switch {
	case p.terminated:
		p.SetOwnership(KernelOwned)
		sim.emit(context.Background(), EventTypeProcessTerminated, map[string]any{"name": p.Name()}, nil)
	case next >= 0:
		p.SetTime(next)
		sim.ScheduleEvent(p)
	default:
		sim.ScheduleConditionalEvent(p)
	}
}
