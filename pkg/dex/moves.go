package dex

import (
	_ "embed"
	"fmt"

	"pokebattle-core/pkg/rng"

	"gopkg.in/yaml.v3"
)

//go:embed data/moves.yaml
var movesYAML []byte

// multiHitYAML is the on-disk shape of a MultiHitProfile; Custom cannot be
// unmarshalled (YAML carries no Go closures) and is wired by
// wireMoveCallbacks after load.
type multiHitYAML struct {
	Kind MultiHitKind `yaml:"kind"`
	Min  int          `yaml:"min"`
	Max  int          `yaml:"max"`
}

// moveYAML mirrors Move but with plain-data substitutes for the three hook
// fields and the multi-hit profile, which YAML cannot represent directly.
type moveYAML struct {
	ID          string           `yaml:"id"`
	DisplayName string           `yaml:"display_name"`
	Type        Type             `yaml:"type"`
	Category    Category         `yaml:"category"`
	BasePower   int              `yaml:"base_power"`
	Accuracy    *uint32          `yaml:"accuracy,omitempty"`
	Priority    int              `yaml:"priority"`
	PP          int              `yaml:"pp"`
	Target      TargetShape      `yaml:"target"`
	Flags       []MoveFlag       `yaml:"flags,omitempty"`
	MultiHit    *multiHitYAML    `yaml:"multi_hit,omitempty"`
	Secondary   *SecondaryEffect `yaml:"secondary,omitempty"`
	CriticalHit bool             `yaml:"critical_hit,omitempty"`
}

// MoveDex is the read-only move catalogue, keyed by move identifier.
type MoveDex map[string]Move

// Get looks up a move by identifier. The bool result is false for an
// unknown id; callers at the engine boundary (§7 "unknown species/move at
// construction") should treat that as a fatal contract violation.
func (d MoveDex) Get(id string) (Move, bool) {
	m, ok := d[id]
	return m, ok
}

func parseMoveDex(raw []byte) (MoveDex, error) {
	var entries []moveYAML
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("dex: parse moves: %w", err)
	}
	dex := make(MoveDex, len(entries))
	for _, e := range entries {
		m := Move{
			ID:          e.ID,
			DisplayName: e.DisplayName,
			Type:        e.Type,
			Category:    e.Category,
			BasePower:   e.BasePower,
			Accuracy:    e.Accuracy,
			Priority:    e.Priority,
			PP:          e.PP,
			Target:      e.Target,
			Flags:       e.Flags,
			Secondary:   e.Secondary,
			CriticalHit: e.CriticalHit,
		}
		if e.MultiHit != nil {
			m.MultiHit = &MultiHitProfile{
				Kind: e.MultiHit.Kind,
				Min:  e.MultiHit.Min,
				Max:  e.MultiHit.Max,
			}
		}
		wireMoveCallbacks(&m)
		if _, dup := dex[m.ID]; dup {
			return nil, fmt.Errorf("dex: duplicate move id %q", m.ID)
		}
		dex[m.ID] = m
	}
	return dex, nil
}

// wireMoveCallbacks attaches the programmatic hooks §3's move descriptor
// reserves for moves whose behavior can't be expressed as YAML data: power
// and accuracy modifiers, usage-attempt guards, and a custom multi-hit
// hit-count mapping. In this fixture set Double Slap gets its custom hit-count
// mapping and Glare and Thunder Wave get usage-attempt guards; the registry
// is a switch keyed by move id, so adding the next such move is one more case.
func wireMoveCallbacks(m *Move) {
	switch m.ID {
	case "double-slap":
		if m.MultiHit != nil {
			m.MultiHit.Custom = doubleSlapHitCount
		}
	case "glare", "thunder-wave":
		m.OnUsageAttempt = failIfTargetAlreadyStatused
	}
}

// failIfTargetAlreadyStatused is the on_usage_attempt guard for pure
// status-infliction moves (Glare, Thunder Wave): §4.4 step 6 names this
// exact "fails if target already has status X" case for powder/ray moves.
func failIfTargetAlreadyStatused(ctx UsageAttemptContext) UsageOutcome {
	if ctx.TargetHasNonVolatileStatus {
		return OutcomeFail
	}
	return OutcomeContinue
}

// doubleSlapHitCount maps a rng.CustomMultiHit(1, 6) roll onto Double
// Slap's skewed hit distribution: 1-2 -> 2 hits, 3-4 -> 3 hits, 5 -> 4 hits,
// 6 -> 5 hits.
func doubleSlapHitCount(r rng.RNG) int {
	roll := r.CustomMultiHit(1, 6)
	switch {
	case roll <= 2:
		return 2
	case roll <= 4:
		return 3
	case roll == 5:
		return 4
	default:
		return 5
	}
}

// DefaultMoveDex is the embedded move catalogue loaded at package init.
var DefaultMoveDex MoveDex

func init() {
	d, err := parseMoveDex(movesYAML)
	if err != nil {
		panic(fmt.Errorf("dex: failed to load embedded move dex: %w", err))
	}
	DefaultMoveDex = d
}
