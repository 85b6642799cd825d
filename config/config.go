// Package config loads run definitions — a simkernel.RunConfig plus any
// named empirical-distribution fixtures a model references — from TOML or
// YAML files, using BurntSushi/toml and gopkg.in/yaml.v3 directly.
//
// This is batch-experiment tooling, not a CLI: there is no flag parsing or
// environment variable support. A RunSpec is read once, before a Simulator
// is constructed.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/desim-project/simkernel/random"
)

// RunSpec mirrors simkernel.RunConfig's fields (seed, duration, tie-break,
// debug, trace path) plus named CDFFixture tables a model can look up by
// name once loaded, so an experiment's empirical distributions live beside
// its run parameters in one file instead of being wired up in Go source.
type RunSpec struct {
	Seed               uint64                 `toml:"seed" yaml:"seed"`
	Duration           float64                `toml:"duration" yaml:"duration"`
	TieBreakByPriority bool                   `toml:"tie_break_by_priority" yaml:"tie_break_by_priority"`
	Debug              bool                   `toml:"debug" yaml:"debug"`
	TracePath          string                 `toml:"trace_path" yaml:"trace_path"`
	ContinuousTables   map[string]CDFFixture  `toml:"continuous_tables" yaml:"continuous_tables"`
	DiscreteTables     map[string]DiscreteFixture `toml:"discrete_tables" yaml:"discrete_tables"`
}

// CDFFixture is the on-disk shape of a random.CDFTable: parallel breakpoint
// and cumulative-probability arrays.
type CDFFixture struct {
	XAxis []float64 `toml:"x_axis" yaml:"x_axis"`
	YAxis []float64 `toml:"y_axis" yaml:"y_axis"`
}

// DiscreteFixture is the on-disk shape of a random.CDFDiscreteTable: integer
// values with per-value probabilities (not yet cumulative).
type DiscreteFixture struct {
	Values        []int     `toml:"values" yaml:"values"`
	Probabilities []float64 `toml:"probabilities" yaml:"probabilities"`
}

// LoadTOML reads a RunSpec from a TOML file at path.
func LoadTOML(path string) (*RunSpec, error) {
	var spec RunSpec
	if _, err := toml.DecodeFile(path, &spec); err != nil {
		return nil, fmt.Errorf("config: decode toml %s: %w", path, err)
	}
	return &spec, nil
}

// LoadYAML reads a RunSpec from a YAML file at path.
func LoadYAML(path string) (*RunSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var spec RunSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("config: decode yaml %s: %w", path, err)
	}
	return &spec, nil
}

// Build validates f's axes and returns the random.CDFTable a
// random.Random.NextContinuous call expects.
func (f CDFFixture) Build() (*random.CDFTable, error) {
	return random.NewCDFTable(f.XAxis, f.YAxis)
}

// Build validates f's probabilities and returns the random.CDFDiscreteTable
// a random.Random.NextDiscrete call expects.
func (f DiscreteFixture) Build() (*random.CDFDiscreteTable, error) {
	return random.NewCDFDiscreteTable(f.Values, f.Probabilities)
}

// ContinuousTable looks up and builds a named continuous fixture from spec.
func (spec *RunSpec) ContinuousTable(name string) (*random.CDFTable, error) {
	f, ok := spec.ContinuousTables[name]
	if !ok {
		return nil, fmt.Errorf("config: no continuous table named %q", name)
	}
	return f.Build()
}

// DiscreteTable looks up and builds a named discrete fixture from spec.
func (spec *RunSpec) DiscreteTable(name string) (*random.CDFDiscreteTable, error) {
	f, ok := spec.DiscreteTables[name]
	if !ok {
		return nil, fmt.Errorf("config: no discrete table named %q", name)
	}
	return f.Build()
}
