package dex

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/typechart.yaml
var typeChartYAML []byte

// typeChartFile is the on-disk shape of data/typechart.yaml: an explicit
// type ordering plus the doubled-integer matrix indexed against it. The
// ordering is data, not hardcoded, so an override file (see override.go)
// could in principle reorder it; the embedded default lists the eighteen
// types in the same order as the Type constants in types.go.
type typeChartFile struct {
	Types  []Type  `yaml:"types"`
	Matrix [][]int `yaml:"matrix"`
}

// TypeChart is the 18x18 effectiveness table from §4.2: doubled integers (0,
// 1, 2, 4, 8) representing multipliers 0x, 0.5x, 1x, 2x, 4x.
type TypeChart struct {
	order   []Type
	index   map[Type]int
	doubled [][]int
}

// DoubledLookup returns the raw doubled-integer cell for an attacking type
// against a single defending type, per §4.2's "chart[attacker_type][defender_type]".
func (c *TypeChart) DoubledLookup(attacker, defender Type) int {
	ai, ok := c.index[attacker]
	if !ok {
		return 2 // neutral fallback for an unrecognized attacking type
	}
	di, ok := c.index[defender]
	if !ok {
		return 2
	}
	return c.doubled[ai][di]
}

// Multiplier halves a doubled-integer cell back into its float multiplier.
func (c *TypeChart) Multiplier(attacker, defender Type) float64 {
	return float64(c.DoubledLookup(attacker, defender)) / 2.0
}

// Effectiveness computes the combined multiplier of an attacking type
// against a (possibly dual-typed) defender: the product of the per-type
// lookups, per §4.2 "When a defender has two types, effectiveness is the
// product of both lookups."
func (c *TypeChart) Effectiveness(attacker Type, defenderTypes []Type) float64 {
	result := 1.0
	for _, dt := range defenderTypes {
		result *= c.Multiplier(attacker, dt)
	}
	return result
}

func loadTypeChart(raw []byte) (*TypeChart, error) {
	var file typeChartFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("dex: parse type chart: %w", err)
	}
	if len(file.Types) == 0 {
		return nil, fmt.Errorf("dex: type chart has no types")
	}
	if len(file.Matrix) != len(file.Types) {
		return nil, fmt.Errorf("dex: type chart matrix has %d rows, want %d", len(file.Matrix), len(file.Types))
	}
	index := make(map[Type]int, len(file.Types))
	for i, t := range file.Types {
		index[t] = i
	}
	for i, row := range file.Matrix {
		if len(row) != len(file.Types) {
			return nil, fmt.Errorf("dex: type chart row %d has %d columns, want %d", i, len(row), len(file.Types))
		}
	}
	return &TypeChart{order: file.Types, index: index, doubled: file.Matrix}, nil
}

// DefaultTypeChart is the embedded, always-available type chart loaded at
// package init. The core never requires a caller to supply one.
var DefaultTypeChart *TypeChart

func init() {
	chart, err := loadTypeChart(typeChartYAML)
	if err != nil {
		panic(fmt.Errorf("dex: failed to load embedded type chart: %w", err))
	}
	DefaultTypeChart = chart
}
