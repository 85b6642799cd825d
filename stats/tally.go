package stats

import (
	"fmt"
	"io"
	"math"
)

// Tally is a time-independent statistics collector: it accumulates a
// running sum and sum of squares over whatever values are passed to
// Update, irrespective of when they arrived (contrast Accumulate, which
// weights by elapsed simulated time).
type Tally struct {
	base
	sum, sumSq float64
	min, max   float64
}

// NewTally returns an empty Tally labeled title.
func NewTally(title string) *Tally {
	t := &Tally{base: newBase(title)}
	t.Reset()
	return t
}

// Reset clears all accumulated observations.
func (t *Tally) Reset() {
	t.obs = 0
	t.sum = 0
	t.sumSq = 0
	t.min = math.Inf(1)
	t.max = math.Inf(-1)
}

// Update records a new observation.
func (t *Tally) Update(v float64) {
	t.obs++
	t.sum += v
	t.sumSq += v * v
	if v < t.min {
		t.min = v
	}
	if v > t.max {
		t.max = v
	}
}

// Mean returns the arithmetic mean of all recorded observations.
func (t *Tally) Mean() float64 {
	if t.obs == 0 {
		return 0
	}
	return t.sum / float64(t.obs)
}

// Variance returns the population variance of all recorded observations:
// |sum of squares - sum^2/obs| / obs.
func (t *Tally) Variance() float64 {
	if t.obs == 0 {
		return 0
	}
	n := float64(t.obs)
	return math.Abs(t.sumSq-t.sum*t.sum/n) / n
}

// StdDev returns the population standard deviation (the square root of
// Variance).
func (t *Tally) StdDev() float64 { return math.Sqrt(t.Variance()) }

// Min returns the smallest recorded observation, or 0 if none were
// recorded.
func (t *Tally) Min() float64 {
	if t.obs == 0 {
		return 0
	}
	return t.min
}

// Max returns the largest recorded observation, or 0 if none were
// recorded.
func (t *Tally) Max() float64 {
	if t.obs == 0 {
		return 0
	}
	return t.max
}

// Confidence returns the half-width of a two-sided confidence interval at
// the given level around the mean.
func (t *Tally) Confidence(level float64) float64 { return Confidence(t, level) }

// Report writes a one-line tabular summary, bracketed by the shared
// heading/ending banners.
func (t *Tally) Report(w io.Writer) {
	PrintHeading(w)
	fmt.Fprintf(w, "%-24s %10d %10.4f %10.4f %10.4f %10.4f\n", t.Title(), t.Observations(), t.Mean(), t.StdDev(), t.Min(), t.Max())
	PrintEnding(w)
}
