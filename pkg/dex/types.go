// Package dex provides the read-only species and move catalogues the battle
// engine consults every turn: base stats, typing, learn tables, and move
// descriptors (power, accuracy, priority, multi-hit profile, secondary
// effect). Catalogues are loaded once from embedded YAML fixtures at package
// init.
package dex

import "pokebattle-core/pkg/rng"

// Type identifies one of the eighteen elemental types used by both species
// typing and move typing.
type Type string

// The eighteen types the type chart is defined over.
const (
	TypeNormal   Type = "normal"
	TypeFire     Type = "fire"
	TypeWater    Type = "water"
	TypeElectric Type = "electric"
	TypeGrass    Type = "grass"
	TypeIce      Type = "ice"
	TypeFighting Type = "fighting"
	TypePoison   Type = "poison"
	TypeGround   Type = "ground"
	TypeFlying   Type = "flying"
	TypePsychic  Type = "psychic"
	TypeBug      Type = "bug"
	TypeRock     Type = "rock"
	TypeGhost    Type = "ghost"
	TypeDragon   Type = "dragon"
	TypeDark     Type = "dark"
	TypeSteel    Type = "steel"
	TypeFairy    Type = "fairy"
)

// Category is a move's damage category.
type Category string

// The three move categories.
const (
	CategoryPhysical Category = "physical"
	CategorySpecial  Category = "special"
	CategoryStatus   Category = "status"
)

// Stat identifies one of the six computed battle stats, plus the two
// stage-only pseudo-stats (Accuracy, Evasion) used only by stat-stage
// bookkeeping and the accuracy formula.
type Stat int

// Stat indices. HP is first, so StatAttack through StatSpeed are exactly
// indices 1-5. Natures do not use these indices directly: pkg/team maps a
// nature through its own five-stat order table.
const (
	StatHP Stat = iota
	StatAttack
	StatDefense
	StatSpAttack
	StatSpDefense
	StatSpeed
	StatAccuracy
	StatEvasion
)

// String renders a Stat for logging and event payloads.
func (s Stat) String() string {
	switch s {
	case StatHP:
		return "hp"
	case StatAttack:
		return "attack"
	case StatDefense:
		return "defense"
	case StatSpAttack:
		return "special-attack"
	case StatSpDefense:
		return "special-defense"
	case StatSpeed:
		return "speed"
	case StatAccuracy:
		return "accuracy"
	case StatEvasion:
		return "evasion"
	default:
		return "unknown"
	}
}

// StatBlock holds the six base/computed battle stats. HP occupies index 0's
// role conceptually but is stored as a named field since it is computed by a
// different formula (§4.3 step 1 vs step 2) and is never subject to stat
// stages.
type StatBlock struct {
	HP         int `yaml:"hp"`
	Attack     int `yaml:"attack"`
	Defense    int `yaml:"defense"`
	SpAttack   int `yaml:"sp_attack"`
	SpDefense  int `yaml:"sp_defense"`
	Speed      int `yaml:"speed"`
}

// Get reads the block by Stat index. StatAccuracy/StatEvasion have no base
// value and return 0; callers consult stat stages instead for those two.
func (b StatBlock) Get(s Stat) int {
	switch s {
	case StatHP:
		return b.HP
	case StatAttack:
		return b.Attack
	case StatDefense:
		return b.Defense
	case StatSpAttack:
		return b.SpAttack
	case StatSpDefense:
		return b.SpDefense
	case StatSpeed:
		return b.Speed
	default:
		return 0
	}
}

// LearnEntry pairs a move with the minimum level at which a species learns
// it. The species learn table is sorted by Level ascending.
type LearnEntry struct {
	Level int    `yaml:"level"`
	Move  string `yaml:"move"`
}

// Species is the read-only catalogue entry for one species: base stats,
// typing, learn table, and the handful of metadata fields §4.2 asks for.
// Egg metadata is intentionally not represented; the core ignores it.
type Species struct {
	ID             string       `yaml:"id"`
	DisplayName    string       `yaml:"display_name"`
	NationalNumber int          `yaml:"national_number"`
	Types          []Type       `yaml:"types"`
	BaseStats      StatBlock    `yaml:"base_stats"`
	// MaleRatioPercent is the percent chance a rolled creature is male; nil
	// means genderless. Scaled so the §4.3 step 5 roll ("uniform 0..1000,
	// compare to 10*ratio") lands in range for a 0-100 percentage value.
	MaleRatioPercent *int         `yaml:"male_ratio_percent,omitempty"`
	GrowthRate       string       `yaml:"growth_rate"`
	BaseExperience   int          `yaml:"base_experience"`
	EVYield          StatBlock    `yaml:"ev_yield"`
	CaptureRate      int          `yaml:"capture_rate"`
	Abilities        []string     `yaml:"abilities"`
	LearnTable       []LearnEntry `yaml:"learn_table"`
}

// MultiHitKind distinguishes the two multi-hit shapes §3/§4.4 describes.
type MultiHitKind string

const (
	MultiHitUniform MultiHitKind = "uniform"
	MultiHitCustom  MultiHitKind = "custom"
)

// CustomMultiHitFunc maps a raw rng.RNG.CustomMultiHit roll onto a move's
// skewed hit-count distribution (e.g. Double Slap's 2-5 hit weighting). It
// receives a cloned RNG per §4.4/§5 so it can roll without perturbing the
// stream the rest of the turn draws from.
type CustomMultiHitFunc func(r rng.RNG) int

// MultiHitProfile describes a move that strikes more than once per use.
type MultiHitProfile struct {
	Kind MultiHitKind
	// Min/Max bound a MultiHitUniform roll (rng.UniformMultiHit(Min, Max)).
	Min, Max int
	// Custom is populated for MultiHitCustom profiles, wired programmatically
	// after the YAML-described move is loaded (see moves.go wireMoveCallbacks).
	Custom CustomMultiHitFunc
}

// SecondaryKind distinguishes the four secondary-effect shapes §3 lists.
type SecondaryKind string

const (
	SecondaryConfusion  SecondaryKind = "confusion"
	SecondaryFlinch     SecondaryKind = "flinch"
	SecondaryStatChange SecondaryKind = "stat_change"
	SecondaryStatus     SecondaryKind = "status"
)

// StatDelta is one (stat, delta) pair applied by a StatChange secondary
// effect.
type StatDelta struct {
	Stat  Stat `yaml:"stat"`
	Delta int  `yaml:"delta"`
}

// SecondaryEffect is the chance-gated extra effect a damaging move may carry
// (§3 "Secondary effect").
type SecondaryEffect struct {
	Chance uint32        `yaml:"chance"`
	Kind   SecondaryKind `yaml:"kind"`
	// AffectsUser is true when a StatChange targets the user instead of the
	// move's target (e.g. a recoil-flavored self-buff).
	AffectsUser bool        `yaml:"affects_user,omitempty"`
	StatDeltas  []StatDelta `yaml:"stat_deltas,omitempty"`
	// Status names the non-volatile condition inflicted for Kind ==
	// SecondaryStatus.
	Status StatusCondition `yaml:"status,omitempty"`
}

// TargetShape is presentational in this core (§4.4 "the source treats
// targets as mechanically singular"); it is never used for damage
// resolution. The engine consults it only to let a TargetSelf move proceed
// when the opponent has no active creature.
type TargetShape string

const (
	TargetSelf           TargetShape = "self"
	TargetSingleAdjacent TargetShape = "single_adjacent_foe"
	TargetAllAdjacent    TargetShape = "all_adjacent_foes"
)

// MoveFlag is a bit in a move's flag set. Only OneHitKO is used by §4.4.
type MoveFlag string

const (
	FlagOneHitKO MoveFlag = "one_hit_ko"
)

// ModifiedAccuracyKind tags the variant an AccuracyModifierFunc returns.
type ModifiedAccuracyKind int

const (
	AccuracyOriginalValue ModifiedAccuracyKind = iota
	AccuracyMiss
	AccuracyHit
	AccuracyNewValue
)

// ModifiedAccuracy is the result of a move's accuracy_modifier hook (§4.4
// "Accuracy check").
type ModifiedAccuracy struct {
	Kind  ModifiedAccuracyKind
	Value uint32 // only meaningful when Kind == AccuracyNewValue
}

// UsageOutcome is the Continue | Fail result every hook in §3/§4.4 returns.
type UsageOutcome int

const (
	OutcomeContinue UsageOutcome = iota
	OutcomeFail
)

// PowerModifierFunc recomputes a move's effective base power given the
// engine's view of user/target, wired programmatically (see moves.go).
type PowerModifierFunc func(ctx PowerModifierContext) int

// PowerModifierContext is the read-only view a power modifier callback gets.
// It is defined here rather than in pkg/battle to avoid an import cycle
// (dex cannot import battle, since battle imports dex); pkg/battle
// populates it from engine state.
type PowerModifierContext struct {
	UserCurrentHP, UserMaxHP int
	TargetCurrentHP          int
}

// AccuracyModifierFunc recomputes a move's accuracy outcome.
type AccuracyModifierFunc func(ctx AccuracyModifierContext) ModifiedAccuracy

// AccuracyModifierContext is the read-only view an accuracy modifier
// callback gets.
type AccuracyModifierContext struct {
	BaseAccuracy *uint32
}

// UsageAttemptFunc is a move's own on_usage_attempt guard (§3 "Move
// descriptor").
type UsageAttemptFunc func(ctx UsageAttemptContext) UsageOutcome

// UsageAttemptContext is the read-only view a usage-attempt callback gets.
type UsageAttemptContext struct {
	TargetHasNonVolatileStatus bool
	TargetHasFlag              func(name string) bool
}

// StatusCondition is a non-volatile status condition (§3 "Creature
// instance"). Toxic and Sleep carry extra per-instance state tracked
// alongside this tag by pkg/battle; the tag itself identifies the kind.
type StatusCondition string

const (
	StatusNone       StatusCondition = ""
	StatusBurn       StatusCondition = "burn"
	StatusFreeze     StatusCondition = "freeze"
	StatusParalysis  StatusCondition = "paralysis"
	StatusPoison     StatusCondition = "poison"
	StatusToxic      StatusCondition = "toxic"
	StatusSleep      StatusCondition = "sleep"
)

// Move is the read-only catalogue entry for one move (§3 "Move
// descriptor").
type Move struct {
	ID          string      `yaml:"id"`
	DisplayName string      `yaml:"display_name"`
	Type        Type        `yaml:"type"`
	Category    Category    `yaml:"category"`
	// BasePower is 0 for moves whose power is entirely determined by
	// PowerModifier (the "special" sentinel in §3).
	BasePower int     `yaml:"base_power"`
	Accuracy  *uint32 `yaml:"accuracy,omitempty"`
	Priority  int     `yaml:"priority"`
	PP        int     `yaml:"pp"`
	Target    TargetShape  `yaml:"target"`
	Flags     []MoveFlag   `yaml:"flags,omitempty"`
	MultiHit  *MultiHitProfile `yaml:"-"`
	Secondary *SecondaryEffect `yaml:"secondary,omitempty"`
	// CriticalHit is the move's static crit flag (§3/§4.4): true means it
	// always crits at 1.25x, false means it never does. Not random.
	CriticalHit bool `yaml:"critical_hit,omitempty"`

	// The following are wired programmatically post-load by
	// wireMoveCallbacks, never unmarshalled: YAML cannot carry Go closures.
	PowerModifier    PowerModifierFunc    `yaml:"-"`
	AccuracyModifier AccuracyModifierFunc `yaml:"-"`
	OnUsageAttempt   UsageAttemptFunc     `yaml:"-"`
}

// HasFlag reports whether the move carries the given flag.
func (m Move) HasFlag(f MoveFlag) bool {
	for _, existing := range m.Flags {
		if existing == f {
			return true
		}
	}
	return false
}
