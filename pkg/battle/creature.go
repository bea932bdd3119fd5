package battle

import (
	"pokebattle-core/pkg/dex"
	"pokebattle-core/pkg/team"
)

// VolatileFlags is the per-creature volatile flag store (spec.md section 3
// "Volatile flag store"). Implemented as a fixed struct rather than a
// generic name-to-payload map since exactly three flag kinds exist; that is
// a closed set, the same reasoning section 9 gives for preferring a closed
// enumeration over open dynamic dispatch for effect hooks.
type VolatileFlags struct {
	// Confused is true while the Confusion flag is installed. It stays true
	// even once ConfusionRemaining reaches 0: the flag is only actually
	// removed by the *next* move attempt's expiry check (spec.md section 9
	// "confusion expiry-before-decrement" ordering subtlety), not the moment
	// the counter hits zero.
	Confused bool
	// ConfusionRemaining is the remaining move-attempt count, 1-4.
	ConfusionRemaining int
	// Flinch is present/absent, cleared at every turn end.
	Flinch bool
	// StatStages maps a Stat to its stage in [-6, 6]. Missing entries are 0.
	StatStages map[dex.Stat]int
}

func newVolatileFlags() VolatileFlags {
	return VolatileFlags{StatStages: make(map[dex.Stat]int)}
}

func (v VolatileFlags) stage(s dex.Stat) int {
	return v.StatStages[s]
}

func clampStage(v int) int {
	if v > 6 {
		return 6
	}
	if v < -6 {
		return -6
	}
	return v
}

// creature is the in-battle view of one combatant: the pure team.Creature
// plus everything the engine mutates during a turn (status, volatile
// flags, the installed effect registry).
type creature struct {
	Handle Handle
	Base   team.Creature

	CurrentHP int
	Status    dex.StatusCondition
	// StatusCounter carries Toxic's increment-each-turn counter and Sleep's
	// remaining-turn count. Unused by the other statuses.
	StatusCounter int

	Flags   VolatileFlags
	Effects []*EffectRecord
}

func newCreatureFromBuild(h Handle, built team.Creature) *creature {
	return &creature{
		Handle:    h,
		Base:      built,
		CurrentHP: built.CurrentHP,
		Flags:     newVolatileFlags(),
	}
}

func (c *creature) maxHP() int { return c.Base.Stats.HP }

func (c *creature) fainted() bool { return c.CurrentHP <= 0 }

func (c *creature) installEffect(e *EffectRecord) {
	c.Effects = append(c.Effects, e)
}

func (c *creature) removeEffect(source dex.StatusCondition) {
	kept := c.Effects[:0]
	for _, e := range c.Effects {
		if e.Source != source {
			kept = append(kept, e)
		}
	}
	c.Effects = kept
}
