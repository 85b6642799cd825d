package simkernel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProcess is a minimal PhasedProcess: it advances through a fixed
// number of timed phases, then terminates.
type countingProcess struct {
	phase     int
	maxPhases int
	advances  []int
}

func (c *countingProcess) RunToBlocked(sim *Simulator) float64 {
	c.phase++
	c.advances = append(c.advances, c.phase)
	if c.phase >= c.maxPhases {
		return -1
	}
	return sim.Clock() + 1
}

func (c *countingProcess) IsConditionalBlocking(*Simulator) bool { return false }
func (c *countingProcess) PhaseName() string                    { return "counting" }

func TestProcessNoticeAdvancesThroughPhasesThenTerminates(t *testing.T) {
	sim := NewSimulator(nil, nil)
	impl := &countingProcess{maxPhases: 3}
	// The final RunToBlocked call must mark the process terminated before
	// returning a negative value, per ProcessNotice's contract.
	terminatingImpl := &terminatingCountingProcess{countingProcess: impl}
	pn := NewProcessNotice("counter", 0, terminatingImpl)
	terminatingImpl.pn = pn
	sim.ScheduleEvent(pn)

	err := sim.Run(context.Background(), RunConfig{Seed: 1, Duration: -1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, impl.advances)
	assert.True(t, pn.Terminated())
	assert.False(t, sim.HasEvent(pn))
}

// terminatingCountingProcess wraps countingProcess to call Terminate on the
// owning ProcessNotice once the phase count is exhausted, since
// PhasedProcess implementations own that responsibility (§4.3).
type terminatingCountingProcess struct {
	*countingProcess
	pn *ProcessNotice
}

func (t *terminatingCountingProcess) RunToBlocked(sim *Simulator) float64 {
	next := t.countingProcess.RunToBlocked(sim)
	if next < 0 {
		t.pn.Terminate()
	}
	return next
}

// gatedProcess blocks conditionally until a flag is released by another
// event, then runs one more phase and terminates.
type gatedProcess struct {
	unlocked *bool
	pn       *ProcessNotice
	ran      bool
}

func (g *gatedProcess) RunToBlocked(sim *Simulator) float64 {
	if !*g.unlocked {
		return -1
	}
	g.ran = true
	g.pn.Terminate()
	return -1
}

func (g *gatedProcess) IsConditionalBlocking(*Simulator) bool { return !*g.unlocked }
func (g *gatedProcess) PhaseName() string                     { return "gated" }

func TestProcessNoticeConditionalBlockingWaitsForGuard(t *testing.T) {
	sim := NewSimulator(nil, nil)
	unlocked := false
	impl := &gatedProcess{unlocked: &unlocked}
	pn := NewProcessNotice("gated", -1, impl)
	impl.pn = pn
	sim.ScheduleConditionalEvent(pn)

	sim.ScheduleEvent(newSimpleEvent("unlock", 3, func(*Simulator) {
		unlocked = true
	}))

	err := sim.Run(context.Background(), RunConfig{Seed: 1, Duration: -1})
	require.NoError(t, err)
	assert.True(t, impl.ran)
	assert.Equal(t, 3.0, sim.Clock())
}
