package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulateMeanOfConstantSignalEqualsConstant(t *testing.T) {
	a := NewAccumulate("level")
	a.Update(7, 0)
	a.Update(7, 100)
	assert.InDelta(t, 7.0, a.Mean(), 1e-9)
	assert.Equal(t, 7.0, a.Min())
	assert.Equal(t, 7.0, a.Max())
}

func TestAccumulateTimeWeightsPiecewiseConstantSignal(t *testing.T) {
	a := NewAccumulate("q")
	// value 0 from t=0..5, then 2 from t=5..10: mean should be (0*5+2*5)/10=1.
	a.Update(0, 0)
	a.Update(2, 5)
	a.Update(2, 10)
	assert.InDelta(t, 1.0, a.Mean(), 1e-9)
}

func TestAccumulateMinMaxTrackExtremesRegardlessOfDuration(t *testing.T) {
	a := NewAccumulate("spiky")
	a.Update(0, 0)
	a.Update(100, 0.001)
	a.Update(0, 1)
	assert.Equal(t, 0.0, a.Min())
	assert.Equal(t, 100.0, a.Max())
}

func TestAccumulateResetStartsNewWindow(t *testing.T) {
	a := NewAccumulate("r")
	a.Update(5, 0)
	a.Update(5, 10)
	a.Reset(10)
	a.Update(3, 10)
	a.Update(3, 20)
	assert.InDelta(t, 3.0, a.Mean(), 1e-9)
}

func TestAccumulateNoUpdatesReportsZero(t *testing.T) {
	a := NewAccumulate("empty")
	assert.Equal(t, 0.0, a.Mean())
	assert.Equal(t, 0.0, a.Min())
	assert.Equal(t, 0.0, a.Max())
}
