package stats

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// ErrInvalidHistogram is raised (via panic, at construction only) when a
// Histogram's bounds or cell count cannot describe any bins.
var ErrInvalidHistogram = errors.New("invalid histogram configuration")

// Histogram is a binned statistics collector: it embeds a Tally (for
// mean/stddev/min/max/obs) and adds a fixed-width bin table between lower
// and upper, with an underflow bin at index 0 and an overflow bin at index
// nCells+1.
type Histogram struct {
	*Tally
	lower, upper float64
	width        float64
	nCells       int
	table        []int64
}

// NewHistogram returns a Histogram with nCells equal-width bins spanning
// [lower, upper). It panics with ErrInvalidHistogram if lower >= upper or
// nCells < 1 — a model-construction mistake, not a runtime condition, so it
// is raised immediately rather than deferred into the run.
func NewHistogram(title string, lower, upper float64, nCells int) *Histogram {
	if lower >= upper {
		panic(fmt.Errorf("%w: lower (%v) must be less than upper (%v)", ErrInvalidHistogram, lower, upper))
	}
	if nCells < 1 {
		panic(fmt.Errorf("%w: nCells (%d) must be at least 1", ErrInvalidHistogram, nCells))
	}
	return &Histogram{
		Tally:  NewTally(title),
		lower:  lower,
		upper:  upper,
		nCells: nCells,
		width:  (upper - lower) / float64(nCells),
		table:  make([]int64, nCells+2),
	}
}

// Update records v in both the underlying Tally and the appropriate bin.
func (h *Histogram) Update(v float64) {
	h.Tally.Update(v)
	var idx int
	if v < h.lower {
		idx = 0
	} else {
		idx = int(math.Round((v-h.lower)/h.width)) + 1
		if idx > h.nCells+1 {
			idx = h.nCells + 1
		}
	}
	h.table[idx]++
}

// Cell returns the observation count in bin i (0 = underflow, nCells+1 =
// overflow).
func (h *Histogram) Cell(i int) int64 { return h.table[i] }

// NCells returns the number of regular (non-overflow/underflow) bins.
func (h *Histogram) NCells() int { return h.nCells }

func (h *Histogram) cellLabel(i int) string {
	switch {
	case i == 0:
		return "underflow"
	case i == h.nCells+1:
		return "overflow"
	default:
		lo := h.lower + float64(i-1)*h.width
		return fmt.Sprintf("%.2f-%.2f", lo, lo+h.width)
	}
}

// Report writes the tabular summary line followed by a 40-star-scaled bar
// chart of the bin table.
func (h *Histogram) Report(w io.Writer) {
	h.Tally.Report(w)
	var maxCount int64
	for _, c := range h.table {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}
	for i, c := range h.table {
		stars := int(math.Round(float64(c) / float64(maxCount) * 40))
		fmt.Fprintf(w, "%14s |%-40s %d\n", h.cellLabel(i), strings.Repeat("*", stars), c)
	}
}
