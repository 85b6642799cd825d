package stats

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalQuantileMatchesKnownPoints(t *testing.T) {
	assert.InDelta(t, 0.0, normalQuantile(0.5), 1e-6)
	assert.InDelta(t, 1.959964, normalQuantile(0.975), 1e-4)
	assert.InDelta(t, -1.959964, normalQuantile(0.025), 1e-4)
	assert.True(t, math.IsInf(normalQuantile(0), -1))
	assert.True(t, math.IsInf(normalQuantile(1), 1))
}

func TestTValueApproachesNormalQuantileAtLargeDF(t *testing.T) {
	z := normalQuantile(0.975)
	assert.InDelta(t, z, tValue(0.95, 1000), 1e-9)
}

func TestTValueWidensAtSmallDF(t *testing.T) {
	z := normalQuantile(0.975)
	small := tValue(0.95, 2)
	assert.Greater(t, small, z)
}

func TestConfidenceZeroBelowTwoObservations(t *testing.T) {
	tl := NewTally("x")
	tl.Update(1)
	assert.Equal(t, 0.0, Confidence(tl, 0.95))
}

func TestPrintHeadingAndEndingBracketReport(t *testing.T) {
	var sb strings.Builder
	PrintHeading(&sb)
	PrintEnding(&sb)
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Equal(t, lines[1], lines[2])
}
