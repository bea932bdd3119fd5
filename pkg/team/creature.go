package team

import (
	"pokebattle-core/pkg/dex"
	"pokebattle-core/pkg/rng"
)

// Creature is the pure, out-of-battle result of team construction (spec.md
// section 3 "Creature instance", minus the in-battle-only fields the engine
// owns: status condition, current HP tracking beyond the initial value, and
// the opaque battle handle, all of which pkg/battle adds when it registers
// this value).
type Creature struct {
	SpeciesID string
	Nature    Nature
	Level     int
	IVs       IVs
	EVs       EVs
	Moves     [4]string
	// CurrentPP mirrors Moves: PP per move slot, pulled from the move dex at
	// construction. An empty move slot has CurrentPP 0.
	CurrentPP [4]int
	Stats     dex.StatBlock
	CurrentHP int
	Gender    Gender
	Experience int64
}

// BuildCreature implements spec.md section 4.3 end to end: compute stats,
// pick moves, roll gender, and set current HP to max. It is a pure function
// of its inputs except for the gender roll, which draws from r.
func BuildCreature(species dex.Species, moveDex dex.MoveDex, level int, ivs IVs, evs EVs, nature Nature, r rng.RNG) Creature {
	stats := ComputeStats(species.BaseStats, ivs, evs, level, nature)
	moves := PickMoves(species.LearnTable, level)

	var pp [4]int
	for i, moveID := range moves {
		if moveID == "" {
			continue
		}
		if m, ok := moveDex.Get(moveID); ok {
			pp[i] = m.PP
		}
	}

	gender := PickGender(species.MaleRatioPercent, r)

	return Creature{
		SpeciesID: species.ID,
		Nature:    nature,
		Level:     level,
		IVs:       ivs,
		EVs:       evs,
		Moves:     moves,
		CurrentPP: pp,
		Stats:     stats,
		CurrentHP: stats.HP,
		Gender:    gender,
	}
}
