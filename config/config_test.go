package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlFixture = `
seed = 7
duration = 100.0
tie_break_by_priority = true
debug = false
trace_path = "run.trace"

[continuous_tables.service_time]
x_axis = [0, 5, 10]
y_axis = [0, 0.6, 1.0]

[discrete_tables.batch_size]
values = [1, 2, 3]
probabilities = [0.5, 0.3, 0.2]
`

const yamlFixture = `
seed: 7
duration: 100.0
tie_break_by_priority: true
debug: false
trace_path: run.trace
continuous_tables:
  service_time:
    x_axis: [0, 5, 10]
    y_axis: [0, 0.6, 1.0]
discrete_tables:
  batch_size:
    values: [1, 2, 3]
    probabilities: [0.5, 0.3, 0.2]
`

func TestLoadTOMLPopulatesRunSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlFixture), 0o644))

	spec, err := LoadTOML(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), spec.Seed)
	assert.Equal(t, 100.0, spec.Duration)
	assert.True(t, spec.TieBreakByPriority)
	assert.Equal(t, "run.trace", spec.TracePath)

	table, err := spec.ContinuousTable("service_time")
	require.NoError(t, err)
	require.NotNil(t, table)

	discrete, err := spec.DiscreteTable("batch_size")
	require.NoError(t, err)
	require.NotNil(t, discrete)
}

func TestLoadYAMLPopulatesRunSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlFixture), 0o644))

	spec, err := LoadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), spec.Seed)
	assert.Equal(t, 100.0, spec.Duration)

	table, err := spec.ContinuousTable("service_time")
	require.NoError(t, err)
	require.NotNil(t, table)
}

func TestContinuousTableReturnsErrorForUnknownName(t *testing.T) {
	spec := &RunSpec{}
	_, err := spec.ContinuousTable("missing")
	assert.Error(t, err)
}

func TestDiscreteTableReturnsErrorForUnknownName(t *testing.T) {
	spec := &RunSpec{}
	_, err := spec.DiscreteTable("missing")
	assert.Error(t, err)
}

func TestCDFFixtureBuildPropagatesValidationError(t *testing.T) {
	f := CDFFixture{XAxis: []float64{0, 1}, YAxis: []float64{0, 0.5}}
	_, err := f.Build()
	assert.Error(t, err)
}

func TestLoadTOMLReturnsErrorForMissingFile(t *testing.T) {
	_, err := LoadTOML(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
