package battle

import "pokebattle-core/pkg/dex"

// EffectRecord is one installed entry in a creature's effect registry
// (spec.md section 3 "Effect registry"). Source identifies which
// non-volatile status installed it. installEffect does not check for
// duplicates; at most one record per source holds because
// inflictNonVolatileStatus refuses a creature that already has a status.
type EffectRecord struct {
	Source dex.StatusCondition
	Hooks  EffectHooks
}

// EffectHooks is the six-hook capability interface spec.md section 3
// describes and section 9 asks to keep narrow: every field is optional
// (nil means "no opinion"), and no hook outside this set exists anywhere in
// pkg/battle.
type EffectHooks struct {
	OnBeforeUseMove  func(s *State, owner *creature, move dex.Move) dex.UsageOutcome
	OnTryUseMove     func(s *State, owner *creature, move dex.Move) dex.UsageOutcome
	OnTryDealDamage  func(s *State, owner *creature, move dex.Move, damage int) int
	OnStatCalculation func(s *State, owner *creature, stat dex.Stat, value int) int
	OnTurnEnd        func(s *State, owner *creature)
	CanAffect        func(s *State, target *creature) bool
}

// newStatusEffectHooks builds the EffectHooks for one of the six
// non-volatile statuses. Grounded in original_source/pokemon_rust's status
// table for exact semantics (chip fractions, immunity rules, thaw/skip
// odds), reimplemented against this engine's own hook shapes rather than
// translated.
func newStatusEffectHooks(status dex.StatusCondition) EffectHooks {
	switch status {
	case dex.StatusBurn:
		return EffectHooks{
			CanAffect: func(s *State, target *creature) bool {
				return !hasType(s, target, dex.TypeFire)
			},
			OnTryDealDamage: func(s *State, owner *creature, move dex.Move, damage int) int {
				if move.Category != dex.CategoryPhysical {
					return damage
				}
				return damage / 2
			},
			OnTurnEnd: func(s *State, owner *creature) {
				s.applyChipDamage(owner, chipEighth(owner.maxHP()), CauseBurn)
			},
		}
	case dex.StatusPoison:
		return EffectHooks{
			CanAffect: func(s *State, target *creature) bool {
				return !hasType(s, target, dex.TypePoison) && !hasType(s, target, dex.TypeSteel)
			},
			OnTurnEnd: func(s *State, owner *creature) {
				s.applyChipDamage(owner, chipEighth(owner.maxHP()), CausePoison)
			},
		}
	case dex.StatusToxic:
		return EffectHooks{
			CanAffect: func(s *State, target *creature) bool {
				return !hasType(s, target, dex.TypePoison) && !hasType(s, target, dex.TypeSteel)
			},
			OnTurnEnd: func(s *State, owner *creature) {
				owner.StatusCounter++
				amount := owner.maxHP() * owner.StatusCounter / 16
				if amount < 1 {
					amount = 1
				}
				s.applyChipDamage(owner, amount, CauseToxic)
			},
		}
	case dex.StatusParalysis:
		return EffectHooks{
			CanAffect: func(s *State, target *creature) bool {
				return !hasType(s, target, dex.TypeElectric)
			},
			OnBeforeUseMove: func(s *State, owner *creature, move dex.Move) dex.UsageOutcome {
				if s.rng.ParalysisSkip() {
					return dex.OutcomeFail
				}
				return dex.OutcomeContinue
			},
		}
	case dex.StatusFreeze:
		return EffectHooks{
			CanAffect: func(s *State, target *creature) bool {
				return !hasType(s, target, dex.TypeIce)
			},
			OnBeforeUseMove: func(s *State, owner *creature, move dex.Move) dex.UsageOutcome {
				if s.rng.FreezeThaw() {
					s.cureStatus(owner)
					return dex.OutcomeContinue
				}
				return dex.OutcomeFail
			},
		}
	case dex.StatusSleep:
		return EffectHooks{
			OnBeforeUseMove: func(s *State, owner *creature, move dex.Move) dex.UsageOutcome {
				if owner.StatusCounter <= 0 {
					s.cureStatus(owner)
					return dex.OutcomeContinue
				}
				owner.StatusCounter--
				return dex.OutcomeFail
			},
		}
	default:
		return EffectHooks{}
	}
}

func chipEighth(maxHP int) int {
	amount := maxHP / 8
	if amount < 1 {
		amount = 1
	}
	return amount
}

func hasType(s *State, c *creature, t dex.Type) bool {
	sp, ok := s.speciesDex.Get(c.Base.SpeciesID)
	if !ok {
		return false
	}
	for _, existing := range sp.Types {
		if existing == t {
			return true
		}
	}
	return false
}
