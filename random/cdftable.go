package random

import "math"

// tolerance for "cumulative probability reaches 1".
const cdfTolerance = 1e-6

// CDFTable is a piecewise-linear continuous CDF: parallel x/y arrays where
// y is cumulative probability (last entry == 1).
type CDFTable struct {
	xAxis []float64
	yAxis []float64
}

// NewCDFTable validates and builds a CDFTable from parallel breakpoint/
// cumulative-probability arrays. xAxis must be strictly increasing, yAxis
// non-decreasing and ending at 1 (within cdfTolerance); otherwise it
// returns an error describing which invariant failed.
func NewCDFTable(xAxis, yAxis []float64) (*CDFTable, error) {
	if len(xAxis) < 2 || len(xAxis) != len(yAxis) {
		return nil, ErrTableEmpty
	}
	for i := 1; i < len(xAxis); i++ {
		if yAxis[i] < yAxis[i-1] {
			return nil, ErrTableMonotone
		}
		if xAxis[i] <= xAxis[i-1] {
			return nil, ErrTableIncreasing
		}
	}
	if math.Abs(yAxis[len(yAxis)-1]-1.0) > cdfTolerance {
		return nil, ErrTableNotNormalized
	}
	x := append([]float64(nil), xAxis...)
	y := append([]float64(nil), yAxis...)
	return &CDFTable{xAxis: x, yAxis: y}, nil
}

// NextContinuous draws an empirical continuous sample from table. Each
// adjacent pair of breakpoints (xAxis[i], xAxis[i+1]) forms a segment whose
// cumulative probability runs from yAxis[i] to yAxis[i+1]; this locates the
// segment the draw falls into and linearly interpolates within it.
func (r *Random) NextContinuous(table *CDFTable) float64 {
	p := r.NextDouble()
	n := len(table.yAxis)
	i := n - 2
	for j := 0; j < n-1; j++ {
		if p <= table.yAxis[j+1] {
			i = j
			break
		}
	}
	x1, x2 := table.xAxis[i], table.xAxis[i+1]
	y1, y2 := table.yAxis[i], table.yAxis[i+1]
	return x1 + (p-y1)/(y2-y1)*(x2-x1)
}

// CDFDiscreteTable is a discrete empirical distribution: integer values
// each with a running cumulative probability.
type CDFDiscreteTable struct {
	values []int
	cumul  []float64
}

// NewCDFDiscreteTable validates and builds a CDFDiscreteTable from parallel
// value/probability arrays. The input probabilities are a per-value
// probability mass (not yet cumulative); this runs the cumulative sum
// internally and leaves the caller's slices untouched.
func NewCDFDiscreteTable(values []int, probs []float64) (*CDFDiscreteTable, error) {
	if len(values) == 0 || len(values) != len(probs) {
		return nil, ErrTableEmpty
	}
	cumul := make([]float64, len(probs))
	running := 0.0
	for i, p := range probs {
		running += p
		cumul[i] = running
	}
	if math.Abs(cumul[len(cumul)-1]-1.0) > cdfTolerance {
		return nil, ErrTableNotNormalized
	}
	return &CDFDiscreteTable{values: append([]int(nil), values...), cumul: cumul}, nil
}

// NextDiscrete draws an empirical discrete sample from table.
func (r *Random) NextDiscrete(table *CDFDiscreteTable) int {
	u := r.NextDouble()
	for i, c := range table.cumul {
		if u <= c {
			return table.values[i]
		}
	}
	return table.values[len(table.values)-1]
}
