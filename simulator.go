package simkernel

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/desim-project/simkernel/random"
)

// RunConfig configures a single Simulator.Run invocation: the seed, the
// run's duration, tie-break behavior, and debug/trace settings. Context
// cancellation lets the caller stop a run externally in addition to these.
type RunConfig struct {
	// Seed initializes the Simulator's random number generator stream.
	Seed uint64
	// Duration, when >= 0, schedules an automatic end-of-run event that
	// many simulated-time units after Run is called. A negative value
	// means "run until the event lists are exhausted".
	Duration float64
	// TieBreakByPriority sorts each future-event-list tie group by
	// descending priority before firing; otherwise ties fire in FIFO
	// (insertion) order. The conditional event list is always scanned in
	// insertion order.
	TieBreakByPriority bool
	// Debug enables per-event trace lines.
	Debug bool
	// TraceWriter receives the simulated-time-prefixed narrative of the
	// run. Defaults to io.Discard.
	TraceWriter io.Writer
}

// Simulator is the discrete-event kernel: a clock, a future event list, a
// conditional event list, and the three-phase scan loop that drives them.
// It is single-threaded and cooperative — nothing here needs a mutex, since
// only one goroutine ever touches the clock or either list at a time (the
// coroutine primitive in coroutine.go enforces this for CProcess bodies).
type Simulator struct {
	clock      float64
	fel        *EventList
	cel        *EventList
	rng        *random.Random
	logger     Logger
	emitter    EventEmitter
	trace      io.Writer
	debug      bool
	terminated bool
	runID      string
}

// NewSimulator constructs a Simulator with an optional Logger and
// EventEmitter. A nil logger defaults to NopLogger; a nil emitter defaults
// to NopEmitter.
func NewSimulator(logger Logger, emitter EventEmitter) *Simulator {
	if logger == nil {
		logger = NopLogger{}
	}
	if emitter == nil {
		emitter = NopEmitter
	}
	return &Simulator{
		fel:     NewEventList(),
		cel:     NewEventList(),
		rng:     random.New(1),
		logger:  logger,
		emitter: emitter,
		trace:   io.Discard,
		runID:   uuid.NewString(),
	}
}

// Clock returns the current simulated time.
func (s *Simulator) Clock() float64 { return s.clock }

// Rand returns the Simulator's default random variate generator, seeded
// from the most recent Run's RunConfig.Seed (or 1, before the first Run).
// Model authors sample from this instead of constructing their own
// random.Random, so a single seed determines an entire run's sample stream
// and two runs with the same seed and call order produce identical traces.
func (s *Simulator) Rand() *random.Random { return s.rng }

// Debug reports whether the per-event "firing" trace lines are enabled.
// Other trace lines (phased-process advances, Petri state dumps) are
// written regardless.
func (s *Simulator) Debug() bool { return s.debug }

// Tracef writes a simulated-time-prefixed line to the trace sink,
// regardless of the debug flag; callers decide when a line is worth
// writing. Debug-gated call sites check s.debug themselves first.
func (s *Simulator) Tracef(format string, args ...any) {
	fmt.Fprintf(s.trace, "[t=%.6f] "+format+"\n", append([]any{s.clock}, args...)...)
}

// ScheduleEvent places e on the future event list at e.Time(), which must
// be >= the current clock. Violating that invariant is a fatal scheduling
// error: it panics with a *KernelError, caught by Run and returned as an
// error.
func (s *Simulator) ScheduleEvent(e EventNotice) {
	if e.Time() < s.clock {
		failf(ErrorScheduling, ErrEventTimeInPast, "event %q scheduled at %.6f, clock is %.6f", e.Name(), e.Time(), s.clock)
	}
	s.fel.Insert(e)
}

// ScheduleConditionalEvent places e on the conditional event list. Its time
// field is ignored by the scan (CanTrigger governs conditional firing, not
// time) but is left whatever the caller set for trace/debug purposes.
func (s *Simulator) ScheduleConditionalEvent(e EventNotice) {
	s.cel.Insert(e)
}

// CancelEvent removes e from whichever list it is on. It reports whether e
// was found.
func (s *Simulator) CancelEvent(e EventNotice) bool {
	if s.fel.Remove(e) {
		return true
	}
	return s.cel.Remove(e)
}

// HasEvent reports whether e is currently scheduled on either list.
func (s *Simulator) HasEvent(e EventNotice) bool {
	return s.fel.Has(e) || s.cel.Has(e)
}

// Activate schedules e onto the future event list at the given absolute
// time. It is fatal (ErrorScheduling) to activate an already-scheduled
// notice.
func (s *Simulator) Activate(e EventNotice, at float64) {
	if s.HasEvent(e) {
		failf(ErrorScheduling, ErrProcessAlreadyActive, "%q", e.Name())
	}
	e.SetTime(at)
	s.ScheduleEvent(e)
}

// ActivateNow schedules e to fire at the current clock value.
func (s *Simulator) ActivateNow(e EventNotice) {
	s.Activate(e, s.clock)
}

// Suspend removes e from whichever list holds it. It is fatal to suspend a
// notice that is not currently scheduled.
func (s *Simulator) Suspend(e EventNotice) {
	if !s.CancelEvent(e) {
		failf(ErrorScheduling, ErrProcessNotActive, "%q", e.Name())
	}
}

// Resume reactivates a previously suspended notice at the given absolute
// time.
func (s *Simulator) Resume(e EventNotice, at float64) {
	s.Activate(e, at)
}

// Await places a ProcessNotice on the conditional event list so it is
// reconsidered every scan until its phase stops blocking.
func (s *Simulator) Await(p *ProcessNotice) {
	s.ScheduleConditionalEvent(p)
}

// Stop ends the run after the current event finishes processing.
func (s *Simulator) Stop() {
	s.terminated = true
}

func (s *Simulator) isEnd() bool {
	return s.terminated || (s.fel.IsEmpty() && s.cel.IsEmpty())
}

// triggerEvent advances the clock to e's time (future-list events only;
// conditional events fire at the current clock) and runs it, freeing it
// afterward unless it is ClientOwned.
func (s *Simulator) triggerEvent(e EventNotice, advanceClock bool) {
	if advanceClock && e.Time() > s.clock {
		s.clock = e.Time()
	}
	if s.debug {
		s.Tracef("firing %q (priority %d, %s)", e.Name(), e.Priority(), e.Ownership())
	}
	s.emit(context.Background(), EventTypeEventFired, map[string]any{"name": e.Name(), "time": e.Time()}, nil)
	e.Trigger(s)
}

// scanConditionalEvents repeatedly re-scans the conditional event list from
// the head, firing the first notice whose CanTrigger holds and restarting
// the scan after each firing, until no remaining notice can trigger.
func (s *Simulator) scanConditionalEvents() {
	for {
		fired := false
		snapshot := s.cel.Snapshot()
		for _, e := range snapshot {
			if !s.cel.Has(e) {
				continue // removed by a prior firing in this pass
			}
			if e.CanTrigger(s) {
				s.cel.Remove(e)
				s.triggerEvent(e, false)
				fired = true
				break
			}
		}
		if !fired {
			return
		}
	}
}

// scanFutureEvents pops the imminent notice (or, if tieBreakByPriority's
// group form is requested, every notice tied at the imminent time) from the
// future event list and fires it/them.
func (s *Simulator) scanFutureEvents(tieBreakGroup bool) {
	if s.fel.IsEmpty() {
		return
	}
	if !tieBreakGroup {
		e := s.fel.PopImminent()
		s.triggerEvent(e, true)
		return
	}
	group := s.fel.PopImminentGroup(true)
	for _, e := range group {
		s.triggerEvent(e, true)
	}
}

// Run drives the simulation: an initial conditional scan, an optional
// end-of-duration marker, then the future/conditional scan loop until the
// run terminates (event lists exhausted, Stop called, the end-of-duration
// marker fires, or ctx is cancelled). Scheduling and semantic errors raised
// anywhere during the run (by process bodies, resources, or Petri
// transitions) are recovered here and returned as an error instead of
// crashing the host program.
func (s *Simulator) Run(ctx context.Context, cfg RunConfig) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ke, ok := r.(*KernelError); ok {
				err = ke
				return
			}
			if re, ok := r.(error); ok {
				err = newKernelError(ErrorConfiguration, re)
				return
			}
			panic(r)
		}
	}()

	s.debug = cfg.Debug
	s.rng = random.New(cfg.Seed)
	if cfg.TraceWriter != nil {
		s.trace = cfg.TraceWriter
	}

	s.emit(ctx, EventTypeRunStarted, map[string]any{"seed": cfg.Seed, "duration": cfg.Duration}, nil)
	s.logger.Info("simulation run starting", "runID", s.runID, "seed", cfg.Seed, "duration", cfg.Duration)

	s.scanConditionalEvents()
	if cfg.Duration >= 0 {
		s.ScheduleEvent(newSimpleEvent("end-of-run", s.clock+cfg.Duration, func(sim *Simulator) {
			sim.Stop()
		}))
	}

	for !s.isEnd() {
		select {
		case <-ctx.Done():
			s.terminated = true
			s.emit(ctx, EventTypeRunStopped, map[string]any{"reason": "context cancelled", "clock": s.clock}, nil)
			return ctx.Err()
		default:
		}
		s.scanFutureEvents(cfg.TieBreakByPriority)
		s.scanConditionalEvents()
	}

	s.emit(ctx, EventTypeRunStopped, map[string]any{"reason": "terminated", "clock": s.clock}, nil)
	s.logger.Info("simulation run finished", "runID", s.runID, "clock", s.clock)
	return nil
}
