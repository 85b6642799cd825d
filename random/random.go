// Package random is the kernel's variate generator: a single seeded source
// of uniform reals feeds every derived distribution, so that two runs
// started with the same seed and calling samplers in the same order
// produce byte-identical sequences.
//
// It is built on math/rand/v2's PCG64, the standard library's seeded,
// explicitly-constructed generator, which gives deterministic, seeded,
// reproducible sequences across runs.
package random

import (
	"math"
	"math/rand/v2"
)

// Random is the variate generator a Simulator (or a model author directly)
// draws samples from. It is not safe for concurrent use: the kernel's
// single-threaded, cooperative execution model never calls it from more
// than one goroutine at a time.
type Random struct {
	src *rand.Rand
}

// New returns a Random seeded deterministically from seed. The same seed
// always produces the same sequence of samples.
func New(seed uint64) *Random {
	return &Random{src: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// NextDouble returns a uniform sample in [0,1).
func (r *Random) NextDouble() float64 { return r.src.Float64() }

// NextIntRange returns a uniform integer sample in [lower, upper).
func (r *Random) NextIntRange(lower, upper int) int {
	return int(r.NextDouble()*float64(upper-lower)) + lower
}

// NextDoubleRange returns a uniform real sample in [lower, upper).
func (r *Random) NextDoubleRange(lower, upper float64) float64 {
	if upper < lower {
		fail("NextDoubleRange", ErrNegativeParameter, "upper (%v) must be >= lower (%v)", upper, lower)
	}
	return r.NextDouble()*(upper-lower) + lower
}

// NextExponential returns a sample from Exponential(mean).
func (r *Random) NextExponential(mean float64) float64 {
	return -mean * math.Log(r.NextDouble())
}

// NextUnitNormalBM returns a standard-normal sample via Box-Muller.
func (r *Random) NextUnitNormalBM() float64 {
	u := r.NextDouble()
	v := r.NextDouble()
	return math.Sqrt(-2.0*math.Log(u)) * math.Cos(2*math.Pi*v)
}

// NextNormalBM returns a Normal(mean, stdDev) sample via Box-Muller.
func (r *Random) NextNormalBM(mean, stdDev float64) float64 {
	return mean + stdDev*r.NextUnitNormalBM()
}

// NextNormal returns a Normal(mean, stdDev) sample via the Polar
// (Marsaglia) rejection method: avoids the trig calls Box-Muller needs, at
// the cost of a rejection loop with ~21% rejection rate.
func (r *Random) NextNormal(mean, stdDev float64) float64 {
	if mean < 0 {
		fail("NextNormal", ErrNegativeParameter, "mean (%v) must be >= 0", mean)
	}
	if stdDev < 0 {
		fail("NextNormal", ErrNegativeParameter, "stdDev (%v) must be >= 0", stdDev)
	}
	var v1, v2, s float64
	for {
		v1 = 2.0*r.NextDouble() - 1.0
		v2 = 2.0*r.NextDouble() - 1.0
		s = v1*v1 + v2*v2
		if s < 1.0 && s != 0.0 {
			break
		}
	}
	x1 := v1 * math.Sqrt((-2.0*math.Log(s))/s)
	return mean + x1*stdDev
}

// NextTruncNormal returns a Normal(mean, stdDev) sample, rejecting and
// resampling negative draws, for models whose durations must be
// non-negative.
func (r *Random) NextTruncNormal(mean, stdDev float64) float64 {
	for {
		v := r.NextNormal(mean, stdDev)
		if v >= 0 {
			return v
		}
	}
}

// Probability runs a single Bernoulli(p) trial.
func (r *Random) Probability(p float64) bool {
	if p < 0.0 || p > 1.0 {
		fail("Probability", ErrProbabilityRange, "p=%v", p)
	}
	return p >= r.NextDouble()
}
