package stats

import (
	"fmt"
	"io"
	"math"
)

// Accumulate is a time-weighted statistics collector: each Update
// integrates the *previous* value over the elapsed simulated time since
// the previous update — a zero-order hold — before recording the new
// value. This is the right shape for queue lengths and utilization, which
// are piecewise constant between events, not linearly interpolated.
type Accumulate struct {
	base
	sum, sumSq  float64
	lastValue   float64
	lastTime    float64
	resetAt     float64
	initialized bool
	min, max    float64
}

// NewAccumulate returns an Accumulate labeled title, reset at time 0.
func NewAccumulate(title string) *Accumulate {
	a := &Accumulate{base: newBase(title)}
	a.Reset(0)
	return a
}

// Reset clears all accumulated observations, marking atTime as the start
// of the new collection window.
func (a *Accumulate) Reset(atTime float64) {
	a.obs = 0
	a.sum = 0
	a.sumSq = 0
	a.lastValue = 0
	a.lastTime = atTime
	a.resetAt = atTime
	a.initialized = false
	a.min = math.Inf(1)
	a.max = math.Inf(-1)
}

// Update records that the collector's value became v at simulated time t.
// t must be >= the time of the previous Update (or Reset).
func (a *Accumulate) Update(v, t float64) {
	if a.initialized {
		span := t - a.lastTime
		a.sum += a.lastValue * span
		a.sumSq += a.lastValue * a.lastValue * span
	}
	a.obs++
	if v < a.min {
		a.min = v
	}
	if v > a.max {
		a.max = v
	}
	a.lastValue = v
	a.lastTime = t
	a.initialized = true
}

func (a *Accumulate) elapsed() float64 {
	e := a.lastTime - a.resetAt
	if e <= 0 {
		return 0
	}
	return e
}

// Mean returns the time-weighted average value over the collection window.
func (a *Accumulate) Mean() float64 {
	e := a.elapsed()
	if e == 0 {
		return 0
	}
	return a.sum / e
}

// Variance returns the time-weighted variance over the collection window.
func (a *Accumulate) Variance() float64 {
	e := a.elapsed()
	if e == 0 {
		return 0
	}
	mean := a.Mean()
	v := a.sumSq/e - mean*mean
	if v < 0 {
		v = 0
	}
	return v
}

// StdDev returns the time-weighted standard deviation.
func (a *Accumulate) StdDev() float64 { return math.Sqrt(a.Variance()) }

// Min returns the smallest value the collector was ever set to.
func (a *Accumulate) Min() float64 {
	if !a.initialized {
		return 0
	}
	return a.min
}

// Max returns the largest value the collector was ever set to.
func (a *Accumulate) Max() float64 {
	if !a.initialized {
		return 0
	}
	return a.max
}

// Confidence returns the half-width of a two-sided confidence interval at
// the given level around the time-weighted mean.
func (a *Accumulate) Confidence(level float64) float64 { return Confidence(a, level) }

// Report writes a one-line tabular summary, bracketed by the shared
// heading/ending banners.
func (a *Accumulate) Report(w io.Writer) {
	PrintHeading(w)
	fmt.Fprintf(w, "%-24s %10d %10.4f %10.4f %10.4f %10.4f\n", a.Title(), a.Observations(), a.Mean(), a.StdDev(), a.Min(), a.Max())
	PrintEnding(w)
}
