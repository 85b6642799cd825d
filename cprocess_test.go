package simkernel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoroutineSwitchToRunsBodyUntilFirstYield(t *testing.T) {
	var trace []string
	co := NewCoroutine(func(c *Coroutine) {
		trace = append(trace, "start")
		c.SwitchToMain()
		trace = append(trace, "resumed")
	})

	assert.False(t, co.Started())
	co.SwitchTo()
	assert.Equal(t, []string{"start"}, trace)
	assert.False(t, co.Finished())

	co.SwitchTo()
	assert.Equal(t, []string{"start", "resumed"}, trace)
	assert.True(t, co.Finished())
}

func TestCoroutinePanicIsForwardedToCallerGoroutine(t *testing.T) {
	co := NewCoroutine(func(c *Coroutine) {
		panic("boom")
	})

	assert.PanicsWithValue(t, "boom", func() {
		co.SwitchTo()
	})
}

func TestCProcessWaitAdvancesClockAndResumesBody(t *testing.T) {
	sim := NewSimulator(nil, nil)
	var trace []float64
	p := NewCProcess(sim, "p", 0, func(p *CProcess) {
		trace = append(trace, p.Sim().Clock())
		p.Wait(5)
		trace = append(trace, p.Sim().Clock())
		p.Hold(2)
		trace = append(trace, p.Sim().Clock())
	})
	sim.ScheduleEvent(p)

	err := sim.Run(context.Background(), RunConfig{Seed: 1, Duration: -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 5, 7}, trace)
	assert.True(t, p.Finished())
	assert.False(t, sim.HasEvent(p))
}

func TestCProcessAliasesAllDelayEquivalently(t *testing.T) {
	sim := NewSimulator(nil, nil)
	var clocks []float64
	p := NewCProcess(sim, "p", 0, func(p *CProcess) {
		p.Work(1)
		clocks = append(clocks, p.Sim().Clock())
		p.Delay(1)
		clocks = append(clocks, p.Sim().Clock())
		p.Wait(1)
		clocks = append(clocks, p.Sim().Clock())
	})
	sim.ScheduleEvent(p)

	err := sim.Run(context.Background(), RunConfig{Seed: 1, Duration: -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, clocks)
}

func TestCProcessRequestBlocksUntilResourceAvailable(t *testing.T) {
	sim := NewSimulator(nil, nil)
	res := NewResource(sim, "r", 1)
	var acquiredAt float64 = -1

	holder := NewCProcess(sim, "holder", 0, func(p *CProcess) {
		p.Request(res, 1)
		p.Wait(4)
		p.Relinquish(res, 1)
	})
	waiter := NewCProcess(sim, "waiter", 0, func(p *CProcess) {
		p.Request(res, 1)
		acquiredAt = p.Sim().Clock()
	})
	sim.ScheduleEvent(holder)
	sim.ScheduleEvent(waiter)

	err := sim.Run(context.Background(), RunConfig{Seed: 1, Duration: -1})
	require.NoError(t, err)
	assert.Equal(t, 4.0, acquiredAt)
}

func TestCProcessSuspendAndResumeReschedules(t *testing.T) {
	sim := NewSimulator(nil, nil)
	ran := false
	p := NewCProcess(sim, "p", 5, func(p *CProcess) {
		ran = true
	})
	sim.ScheduleEvent(p)
	p.Suspend()
	assert.False(t, sim.HasEvent(p))

	p.Resume(1)
	assert.True(t, sim.HasEvent(p))

	err := sim.Run(context.Background(), RunConfig{Seed: 1, Duration: -1})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 1.0, sim.Clock())
}

func TestCProcessActivateNowRunsAtCurrentClock(t *testing.T) {
	sim := NewSimulator(nil, nil)
	var observed float64 = -1
	resumed := NewCProcess(sim, "resumed", 3, func(p *CProcess) {
		observed = p.Sim().Clock()
	})
	sim.ScheduleEvent(resumed)
	resumed.Suspend()

	trigger := NewCProcess(sim, "trigger", 3, func(p *CProcess) {
		resumed.ActivateNow()
	})
	sim.ScheduleEvent(trigger)

	err := sim.Run(context.Background(), RunConfig{Seed: 1, Duration: -1})
	require.NoError(t, err)
	assert.Equal(t, 3.0, observed)
}
