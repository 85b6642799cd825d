package simkernel

import "context"

// CProcess is the free-form process abstraction: a body function written
// as ordinary sequential code that blocks by calling Wait/Hold/Work/Delay
// or Request/Relinquish, instead of returning control to the kernel
// through an explicit phase switch the way ProcessNotice requires. This
// shape is achieved with the Coroutine primitive (coroutine.go), which
// rides on a goroutine's stack instead of a hand-managed fiber stack.
type CProcess struct {
	BaseEvent
	sim *Simulator
	co  *Coroutine
}

// CProcessBody is the model-author-implemented behavior of a free-form
// process. It receives the CProcess itself so it can call Wait, Request,
// etc. on it.
type CProcessBody func(p *CProcess)

// NewCProcess creates a free-form process that will begin running body the
// first time it is triggered (i.e. once scheduled and fired by the
// Simulator at startTime). The caller is responsible for scheduling it,
// typically via sim.ScheduleEvent or sim.Activate.
func NewCProcess(sim *Simulator, name string, startTime float64, body CProcessBody) *CProcess {
	p := &CProcess{BaseEvent: NewBaseEvent(name, startTime, 0), sim: sim}
	p.SetOwnership(ClientOwned)
	p.co = NewCoroutine(func(*Coroutine) {
		body(p)
	})
	return p
}

// Sim returns the Simulator driving this process.
func (p *CProcess) Sim() *Simulator { return p.sim }

// Finished reports whether the process body has returned.
func (p *CProcess) Finished() bool { return p.co.Finished() }

// Trigger resumes the process's coroutine from wherever it last yielded
// (via Wait/Request/SwitchToMain). If the body has now returned, ownership
// reverts to the kernel so the notice is freed instead of rescheduled.
func (p *CProcess) Trigger(sim *Simulator) {
	p.co.SwitchTo()
	if p.co.Finished() {
		p.SetOwnership(KernelOwned)
		sim.emit(context.Background(), EventTypeProcessTerminated, map[string]any{"name": p.Name()}, nil)
	}
}

// Wait suspends the process for dt simulated-time units, rescheduling it on
// the future event list and yielding back to the Simulator. Hold, Work, and
// Delay are aliases kept for the same reason the original library keeps
// them: model authors reach for whichever reads best in context (a
// machine "works", a clerk "delays", a generic actor "waits").
func (p *CProcess) Wait(dt float64) {
	p.SetTime(p.sim.Clock() + dt)
	p.sim.ScheduleEvent(p)
	p.co.SwitchToMain()
}

func (p *CProcess) Hold(dt float64)  { p.Wait(dt) }
func (p *CProcess) Work(dt float64)  { p.Wait(dt) }
func (p *CProcess) Delay(dt float64) { p.Wait(dt) }

// Request acquires units of r, blocking the process (yielding to the
// Simulator) until they become available.
func (p *CProcess) Request(r *Resource, units int) {
	if !r.tryAcquire(p, units) {
		p.co.SwitchToMain()
	}
}

// Relinquish releases units of r the process previously acquired via
// Request, waking queued requesters whose needs now fit.
func (p *CProcess) Relinquish(r *Resource, units int) {
	r.release(p, units)
}

// Activate schedules p to first run (or resume after a Suspend) at the
// given absolute simulated time.
func (p *CProcess) Activate(at float64) { p.sim.Activate(p, at) }

// ActivateNow schedules p to run at the current clock value.
func (p *CProcess) ActivateNow() { p.sim.ActivateNow(p) }

// Suspend removes p from the event lists before it has had a chance to
// run, cancelling a pending activation.
func (p *CProcess) Suspend() { p.sim.Suspend(p) }

// Resume reactivates a previously suspended process.
func (p *CProcess) Resume(at float64) { p.sim.Activate(p, at) }
