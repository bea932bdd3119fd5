package rng

import (
	"math/rand"
	"time"
)

// RNG is the single stochastic-decision interface the battle engine is
// allowed to touch. Every random outcome in a battle — damage variance,
// whether a move misses, how many times a multi-hit move connects, whether a
// secondary effect triggers, confusion duration and self-hits, and the
// tie-break shuffle used when two actions share priority and speed — is
// obtained through one of these methods. Nothing in pkg/battle ever calls
// math/rand directly.
//
// Clone returns an independent generator derived from the receiver. The
// battle engine hands a clone to a move's custom multi-hit callback so that
// the callback's rolls do not advance the stream the rest of the turn
// continues to draw from (ProductionRNG's Clone itself takes one draw from
// the receiver to seed the clone).
type RNG interface {
	// DamageRoll returns the damage formula's random multiplier, uniform in
	// [0.85, 1.00].
	DamageRoll() float64

	// ShuffleActions returns a permutation of the integers [0, n) used to
	// break priority/speed ties when ordering a turn's actions.
	ShuffleActions(n int) []int

	// MissRoll picks r in [1, 100] and returns true (a miss) when
	// r > effectiveAccuracy.
	MissRoll(effectiveAccuracy uint32) bool

	// SecondaryTrigger picks r in [1, 100] and returns true when r <= chance.
	SecondaryTrigger(chance uint32) bool

	// UniformMultiHit returns an inclusive uniform integer in [lo, hi].
	UniformMultiHit(lo, hi int) int

	// CustomMultiHit returns an inclusive uniform integer in [lo, hi],
	// exposed to move-specific callbacks that remap the raw roll onto a
	// skewed hit-count distribution (e.g. Double Slap's 2-5 hit weighting).
	CustomMultiHit(lo, hi int) int

	// ConfusionSelfHit returns true roughly half the time.
	ConfusionSelfHit() bool

	// ConfusionDuration returns an inclusive uniform integer in [1, 4].
	ConfusionDuration() uint32

	// ParalysisSkip reports whether a paralyzed creature fails to move this
	// turn. pkg/battle's Paralysis status consults it before each move.
	ParalysisSkip() bool

	// FreezeThaw reports whether a frozen creature thaws out this turn.
	FreezeThaw() bool

	// Clone returns an independent generator derived from the receiver, for
	// use by multi-hit callbacks; draws from the clone never advance the
	// receiver.
	Clone() RNG
}

// ProductionRNG implements RNG with a uniform generator, for real battles.
type ProductionRNG struct {
	r *rand.Rand
}

// New creates a ProductionRNG seeded from the current time.
func New() *ProductionRNG {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed creates a ProductionRNG with a fixed seed, mainly useful for
// reproducing a specific production roll sequence outside of tests (tests
// should prefer TestRNG, which is deterministic by construction rather than
// by a lucky seed).
func NewWithSeed(seed int64) *ProductionRNG {
	return &ProductionRNG{r: rand.New(rand.NewSource(seed))}
}

// DamageRoll implements RNG.
func (p *ProductionRNG) DamageRoll() float64 {
	return 0.85 + p.r.Float64()*0.15
}

// ShuffleActions implements RNG.
func (p *ProductionRNG) ShuffleActions(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	p.r.Shuffle(n, func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

// MissRoll implements RNG.
func (p *ProductionRNG) MissRoll(effectiveAccuracy uint32) bool {
	roll := uint32(p.r.Intn(100)) + 1
	return roll > effectiveAccuracy
}

// SecondaryTrigger implements RNG.
func (p *ProductionRNG) SecondaryTrigger(chance uint32) bool {
	roll := uint32(p.r.Intn(100)) + 1
	return roll <= chance
}

// UniformMultiHit implements RNG.
func (p *ProductionRNG) UniformMultiHit(lo, hi int) int {
	return lo + p.r.Intn(hi-lo+1)
}

// CustomMultiHit implements RNG.
func (p *ProductionRNG) CustomMultiHit(lo, hi int) int {
	return lo + p.r.Intn(hi-lo+1)
}

// ConfusionSelfHit implements RNG.
func (p *ProductionRNG) ConfusionSelfHit() bool {
	return p.r.Intn(2) == 0
}

// ConfusionDuration implements RNG.
func (p *ProductionRNG) ConfusionDuration() uint32 {
	return uint32(1 + p.r.Intn(4))
}

// ParalysisSkip implements RNG.
func (p *ProductionRNG) ParalysisSkip() bool {
	return p.r.Intn(4) == 0
}

// FreezeThaw implements RNG.
func (p *ProductionRNG) FreezeThaw() bool {
	return p.r.Intn(5) == 0
}

// Clone implements RNG. The clone is seeded from a draw off the parent
// stream so it is independent but still deterministic given the parent's
// seed.
func (p *ProductionRNG) Clone() RNG {
	return NewWithSeed(p.r.Int63())
}
