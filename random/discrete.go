package random

import "math"

// NextPoisson returns a Poisson(lambda) sample. For lambda<=30 it counts
// events directly (Knuth's method); for lambda>30 it uses Atkinson's
// acceptance-rejection method (Banks et al., "Discrete-Event System
// Simulation"), computing the log(n!) term directly via math.Lgamma(n+1)
// for numerical stability.
func (r *Random) NextPoisson(lambda float64) int {
	if lambda <= 0 {
		fail("NextPoisson", ErrNonPositiveParameter, "lambda=%v", lambda)
	}
	if lambda <= 30.0 {
		l := math.Exp(-lambda)
		p := 1.0
		n := -1
		for p > l {
			p *= r.NextDouble()
			n++
		}
		return n
	}

	beta := math.Pi / math.Sqrt(3.0*lambda)
	alpha := beta * lambda
	c := 0.767 - 3.36/lambda
	k := math.Log(c) - lambda - math.Log(beta)

	for {
		u := r.NextDouble()
		x := (alpha - math.Log((1.0-u)/u)) / beta
		if x <= -0.5 {
			continue
		}
		n := math.Floor(x + 0.5)
		v := r.NextDouble()
		y := alpha - beta*x
		ey := math.Exp(y)
		lhs := y + math.Log(v/((1.0+ey)*(1.0+ey)))
		logNFactorial, _ := math.Lgamma(n + 1)
		rhs := k + n*math.Log(lambda) - logNFactorial
		if lhs <= rhs {
			return int(n)
		}
	}
}

// NextGeometric returns the number of Bernoulli(p) failures before the
// first success.
func (r *Random) NextGeometric(p float64) int {
	if p <= 0.0 || p >= 1.0 {
		fail("NextGeometric", ErrProbabilityRange, "p=%v", p)
	}
	a := 1.0 / math.Log(1.0-p)
	return int(math.Floor(a * math.Log(r.NextDouble())))
}

// NextWeibull returns a Weibull(alpha, beta) sample via inverse CDF.
func (r *Random) NextWeibull(alpha, beta float64) float64 {
	if alpha <= 0 || beta <= 0 {
		fail("NextWeibull", ErrNonPositiveParameter, "alpha=%v beta=%v", alpha, beta)
	}
	return beta * math.Pow(-math.Log(r.NextDouble()), 1.0/alpha)
}

// NextBinomial returns a Binomial(n, p) sample by summing n Bernoulli
// trials.
func (r *Random) NextBinomial(p float64, n int) int {
	if p < 0.0 || p > 1.0 {
		fail("NextBinomial", ErrProbabilityRange, "p=%v", p)
	}
	x := 0
	for i := 0; i < n; i++ {
		if p > r.NextDouble() {
			x++
		}
	}
	return x
}

// NextNegBinomial returns a NegativeBinomial(n, p) sample: the sum of n
// independent Geometric(p) draws.
func (r *Random) NextNegBinomial(p float64, n int) int {
	if p <= 0.0 || p >= 1.0 {
		fail("NextNegBinomial", ErrProbabilityRange, "p=%v", p)
	}
	x := 0
	for i := 0; i < n; i++ {
		x += r.NextGeometric(p)
	}
	return x
}

// NextTriangular returns a Triangular(a, b, c) sample (a = min, b = mode,
// c = max) via inverse CDF.
func (r *Random) NextTriangular(a, b, c float64) float64 {
	if b < a || c < b || a == c {
		fail("NextTriangular", ErrTriangularMode, "a=%v b=%v c=%v", a, b, c)
	}
	u := r.NextDouble()
	beta := (b - a) / (c - a)
	var t float64
	if u < beta {
		t = math.Sqrt(beta * u)
	} else {
		t = 1.0 - math.Sqrt((1.0-beta)*(1.0-u))
	}
	return a + (c-a)*t
}
