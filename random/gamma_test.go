package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func meanOf(n int, sample func() float64) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += sample()
	}
	return sum / float64(n)
}

func TestNextGammaMeanConvergesForShapeAboveOne(t *testing.T) {
	r := New(11)
	mean := meanOf(50000, func() float64 { return r.NextGamma(4, 2) })
	assert.InDelta(t, 8.0, mean, 0.3)
}

func TestNextGammaMeanConvergesForShapeBelowOne(t *testing.T) {
	r := New(12)
	mean := meanOf(50000, func() float64 { return r.NextGamma(0.5, 3) })
	assert.InDelta(t, 1.5, mean, 0.15)
}

func TestNextGammaDegeneratesToExponentialAtShapeOne(t *testing.T) {
	r := New(13)
	mean := meanOf(50000, func() float64 { return r.NextGamma(1, 5) })
	assert.InDelta(t, 5.0, mean, 0.2)
}

func TestNextGammaRejectsNonPositiveParameters(t *testing.T) {
	r := New(1)
	assert.Panics(t, func() { r.NextGamma(0, 1) })
	assert.Panics(t, func() { r.NextGamma(1, 0) })
}

func TestNextErlangMatchesSmallAndLargeKRoutes(t *testing.T) {
	r := New(14)
	smallK := meanOf(50000, func() float64 { return r.NextErlang(3, 6) })
	largeK := meanOf(50000, func() float64 { return r.NextErlang(10, 6) })
	assert.InDelta(t, 6.0, smallK, 0.2)
	assert.InDelta(t, 6.0, largeK, 0.2)
}

func TestNextChiSquareMeanEqualsDegreesOfFreedom(t *testing.T) {
	r := New(15)
	mean := meanOf(50000, func() float64 { return r.NextChiSquare(5) })
	assert.InDelta(t, 5.0, mean, 0.3)
}

func TestNextStudentTIsSymmetricAroundZero(t *testing.T) {
	r := New(16)
	mean := meanOf(50000, func() float64 { return r.NextStudentT(10) })
	assert.InDelta(t, 0.0, mean, 0.1)
}

func TestNextLogNormalIsAlwaysPositive(t *testing.T) {
	r := New(17)
	for i := 0; i < 5000; i++ {
		assert.Greater(t, r.NextLogNormal(0, 1), 0.0)
	}
}

func TestNextBetaStaysWithinUnitInterval(t *testing.T) {
	r := New(18)
	for i := 0; i < 5000; i++ {
		v := r.NextBeta(2, 5)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestNextFIsAlwaysPositive(t *testing.T) {
	r := New(19)
	for i := 0; i < 5000; i++ {
		assert.Greater(t, r.NextF(5, 10), 0.0)
	}
}
