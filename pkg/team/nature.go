// Package team implements the pure stat-computation and creature-construction
// functions of spec.md section 4.3: given species data, level, IVs, EVs, and
// nature, compute the six battle stats, pick up to four moves from the learn
// table, and roll gender. Nothing here touches the battle engine or mutates
// shared state; BuildCreature is a pure function of its inputs plus the RNG
// draw for gender.
package team

import "pokebattle-core/pkg/dex"

// Nature is one of the 25 natures, indexed 0-24 per spec.md section 4.3 step
// 3's "index 0-24" rule.
type Nature int

// The 25 natures in the canonical index order: index = increasing*5 +
// decreasing, where increasing/decreasing range over the five non-HP stats
// in natureStatOrder (Attack, Defense, Speed, SpAttack, SpDefense).
const (
	NatureHardy Nature = iota
	NatureLonely
	NatureBrave
	NatureAdamant
	NatureNaughty
	NatureBold
	NatureDocile
	NatureRelaxed
	NatureImpish
	NatureLax
	NatureTimid
	NatureHasty
	NatureSerious
	NatureJolly
	NatureNaive
	NatureModest
	NatureMild
	NatureQuiet
	NatureBashful
	NatureRash
	NatureCalm
	NatureGentle
	NatureSassy
	NatureCareful
	NatureQuirky
)

var natureNames = [...]string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

// String renders a Nature's display name.
func (n Nature) String() string {
	if n >= 0 && int(n) < len(natureNames) {
		return natureNames[n]
	}
	return "Unknown"
}

// natureStatOrder is the fixed five-stat order the nature grid's row
// (increasing, index/5) and column (decreasing, index%5) both index into.
// This is the order that makes index 3 (Adamant) resolve to +Attack
// -SpAttack, matching the well-known nature table.
var natureStatOrder = [5]dex.Stat{
	dex.StatAttack,
	dex.StatDefense,
	dex.StatSpeed,
	dex.StatSpAttack,
	dex.StatSpDefense,
}

// statPair returns the (increasing, decreasing) stats a nature affects: the
// index divided by 5 and the index modulo 5 each select an entry of
// natureStatOrder (HP is never selected). Equal stats (the diagonal, e.g.
// Hardy/Docile/Serious/Bashful/Quirky) mean a neutral nature with no
// adjustment.
func (n Nature) statPair() (increasing, decreasing dex.Stat) {
	i := int(n)
	increasing = natureStatOrder[i/5]
	decreasing = natureStatOrder[i%5]
	return increasing, decreasing
}

// IsNeutral reports whether this nature has no stat adjustment.
func (n Nature) IsNeutral() bool {
	inc, dec := n.statPair()
	return inc == dec
}
