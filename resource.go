package simkernel

import (
	"context"

	"github.com/desim-project/simkernel/stats"
)

// waitRequest is one entry in a Resource's strict-FIFO waiting line.
type waitRequest struct {
	p     *CProcess
	units int
}

// Resource is a counted resource with a FIFO waiting line: capacity and
// available track how many units exist and are free; waiting and held
// track processes queued for units and processes currently holding them;
// QueueLength and Utilization are two stats.Accumulate collectors so model
// authors get time-weighted queue-length and utilization statistics for
// free.
type Resource struct {
	name      string
	sim       *Simulator
	capacity  int
	available int
	waiting   *queue[*waitRequest]
	held      map[*CProcess]int

	// QueueLength tracks the number of processes waiting for this
	// resource, time-weighted.
	QueueLength *stats.Accumulate
	// Utilization tracks the fraction of capacity in use, time-weighted.
	Utilization *stats.Accumulate
}

// NewResource creates a Resource with the given capacity, fully available.
func NewResource(sim *Simulator, name string, capacity int) *Resource {
	return &Resource{
		sim:         sim,
		name:        name,
		capacity:    capacity,
		available:   capacity,
		waiting:     newQueue[*waitRequest](),
		held:        make(map[*CProcess]int),
		QueueLength: stats.NewAccumulate(name + " queue length"),
		Utilization: stats.NewAccumulate(name + " utilization"),
	}
}

// Name returns the resource's label.
func (r *Resource) Name() string { return r.name }

// Capacity returns the resource's total unit count.
func (r *Resource) Capacity() int { return r.capacity }

// Available returns the number of units currently free.
func (r *Resource) Available() int { return r.available }

// WaitingCount returns how many requests are currently queued.
func (r *Resource) WaitingCount() int { return r.waiting.Len() }

// tryAcquire grants units to p immediately if available, otherwise enqueues
// the request and reports false so the caller (CProcess.Request) knows to
// block.
func (r *Resource) tryAcquire(p *CProcess, units int) bool {
	if r.available >= units {
		r.available -= units
		r.held[p] += units
		r.recordUtilization()
		r.sim.emit(context.Background(), EventTypeResourceGranted, map[string]any{"resource": r.name, "process": p.Name(), "units": units}, nil)
		return true
	}
	r.waiting.enqueue(&waitRequest{p: p, units: units})
	r.recordQueueLength()
	r.sim.emit(context.Background(), EventTypeResourceStarved, map[string]any{"resource": r.name, "process": p.Name(), "units": units, "waiting": r.waiting.Len()}, nil)
	return false
}

// release returns units held by p, then drains the waiting line in strict
// FIFO order: the head request is granted and its process reactivated only
// if it fully fits in what is now available; a request that does not fit
// blocks the whole line (no head-of-line jumping).
func (r *Resource) release(p *CProcess, units int) {
	held := r.held[p]
	if units > held {
		failf(ErrorSemantic, ErrResourceOverRelinquish, "%q holds %d of %q, tried to release %d", p.Name(), held, r.name, units)
	}
	if held == units {
		delete(r.held, p)
	} else {
		r.held[p] = held - units
	}
	r.available += units
	r.recordUtilization()

	for r.waiting.Len() > 0 {
		head := r.waiting.peek()
		if head.units > r.available {
			break
		}
		r.waiting.dequeue()
		r.available -= head.units
		r.held[head.p] += head.units
		r.recordUtilization()
		r.sim.emit(context.Background(), EventTypeResourceGranted, map[string]any{"resource": r.name, "process": head.p.Name(), "units": head.units}, nil)
		r.sim.ActivateNow(head.p)
	}
	r.recordQueueLength()
}

func (r *Resource) recordUtilization() {
	r.Utilization.Update(float64(r.capacity-r.available)/float64(r.capacity), r.sim.Clock())
}

func (r *Resource) recordQueueLength() {
	r.QueueLength.Update(float64(r.waiting.Len()), r.sim.Clock())
}
