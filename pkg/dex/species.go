package dex

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/species.yaml
var speciesYAML []byte

// SpeciesDex is the read-only species catalogue, keyed by species
// identifier.
type SpeciesDex map[string]Species

// Get looks up a species by identifier.
func (d SpeciesDex) Get(id string) (Species, bool) {
	s, ok := d[id]
	return s, ok
}

func parseSpeciesDex(raw []byte) (SpeciesDex, error) {
	var entries []Species
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("dex: parse species: %w", err)
	}
	dex := make(SpeciesDex, len(entries))
	for _, s := range entries {
		if _, dup := dex[s.ID]; dup {
			return nil, fmt.Errorf("dex: duplicate species id %q", s.ID)
		}
		dex[s.ID] = s
	}
	return dex, nil
}

// DefaultSpeciesDex is the embedded species catalogue loaded at package
// init.
var DefaultSpeciesDex SpeciesDex

func init() {
	d, err := parseSpeciesDex(speciesYAML)
	if err != nil {
		panic(fmt.Errorf("dex: failed to load embedded species dex: %w", err))
	}
	DefaultSpeciesDex = d
}
