package team

import "pokebattle-core/pkg/dex"

// IVs and EVs are both six-integer arrays indexed the same way as
// dex.StatBlock's fields: [HP, Attack, Defense, SpAttack, SpDefense, Speed].
// The core does not enforce IV (0-31) or EV (sum <= 510, each <= 252)
// bounds; callers do (spec.md section 4.3's opening clause).
type IVs [6]int
type EVs [6]int

func (v IVs) at(i int) int { return v[i] }
func (v EVs) at(i int) int { return v[i] }

// ComputeStats implements spec.md section 4.3 steps 1-3: the HP formula,
// the five other-stat formula, and the nature adjustment, each floored at
// every intermediate division exactly as specified.
func ComputeStats(base dex.StatBlock, ivs IVs, evs EVs, level int, nature Nature) dex.StatBlock {
	hp := ((2*base.HP + ivs.at(0) + evs.at(0)/4) * level / 100) + level + 10

	attack := otherStat(base.Attack, ivs.at(1), evs.at(1), level)
	defense := otherStat(base.Defense, ivs.at(2), evs.at(2), level)
	spAttack := otherStat(base.SpAttack, ivs.at(3), evs.at(3), level)
	spDefense := otherStat(base.SpDefense, ivs.at(4), evs.at(4), level)
	speed := otherStat(base.Speed, ivs.at(5), evs.at(5), level)

	stats := dex.StatBlock{
		HP:        hp,
		Attack:    attack,
		Defense:   defense,
		SpAttack:  spAttack,
		SpDefense: spDefense,
		Speed:     speed,
	}

	return applyNature(stats, nature)
}

// otherStat implements spec.md section 4.3 step 2 for one non-HP stat:
// floor(((2*base + iv + floor(ev/4)) * level) / 100) + 5.
func otherStat(base, iv, ev, level int) int {
	return ((2*base + iv + ev/4) * level / 100) + 5
}

// applyNature implements spec.md section 4.3 step 3: multiply the
// increasing stat by 1.1 (floored) and the decreasing stat by 0.9
// (floored); a neutral nature (equal indices) leaves every stat untouched.
func applyNature(stats dex.StatBlock, nature Nature) dex.StatBlock {
	if nature.IsNeutral() {
		return stats
	}
	increasing, decreasing := nature.statPair()
	setStat(&stats, increasing, (stats.Get(increasing)*11)/10)
	setStat(&stats, decreasing, (stats.Get(decreasing)*9)/10)
	return stats
}

func setStat(b *dex.StatBlock, s dex.Stat, v int) {
	switch s {
	case dex.StatAttack:
		b.Attack = v
	case dex.StatDefense:
		b.Defense = v
	case dex.StatSpAttack:
		b.SpAttack = v
	case dex.StatSpDefense:
		b.SpDefense = v
	case dex.StatSpeed:
		b.Speed = v
	}
}
