package battle

import (
	"math"

	"pokebattle-core/pkg/dex"
)

// checkAccuracy implements spec.md section 4.4 "Accuracy check". It returns
// false (and has already emitted Miss) when the move fails to connect.
func (s *State) checkAccuracy(user, targetH Handle, move dex.Move) bool {
	target := s.creatures[targetH]

	var baseAccuracy *uint32
	if move.AccuracyModifier != nil {
		result := move.AccuracyModifier(dex.AccuracyModifierContext{BaseAccuracy: move.Accuracy})
		switch result.Kind {
		case dex.AccuracyMiss:
			s.emit(EventMiss{Target: targetH, User: user, CausedByConfusion: false})
			return false
		case dex.AccuracyHit:
			return true
		case dex.AccuracyNewValue:
			v := result.Value
			baseAccuracy = &v
		case dex.AccuracyOriginalValue:
			baseAccuracy = move.Accuracy
		}
	} else {
		baseAccuracy = move.Accuracy
	}

	if baseAccuracy == nil {
		return true
	}

	userC := s.creatures[user]
	accStage := clampStage(userC.Flags.stage(dex.StatAccuracy))
	evaStage := clampStage(target.Flags.stage(dex.StatEvasion))
	netStage := clampStage(accStage - evaStage)

	var multiplier float64
	if netStage >= 0 {
		multiplier = float64(3+netStage) / 3.0
	} else {
		multiplier = 3.0 / float64(3-netStage)
	}

	effective := uint32(math.Floor(float64(*baseAccuracy) * multiplier))
	if s.rng.MissRoll(effective) {
		s.emit(EventMiss{Target: targetH, User: user, CausedByConfusion: false})
		return false
	}
	return true
}

// applyDamagingEffect resolves the Physical/Special effect step of the
// per-move sequence: one-hit-KO, multi-hit, or a single damage instance.
func (s *State) applyDamagingEffect(user *creature, targetH Handle, move dex.Move) {
	target := s.creatures[targetH]
	if target == nil || target.fainted() {
		return
	}

	if move.HasFlag(dex.FlagOneHitKO) {
		amount := target.CurrentHP
		s.dealDamage(user, target, move, amount, 1, true, true)
		return
	}

	if move.MultiHit == nil {
		s.hitOnce(user, target, move, 1, 1)
		return
	}

	var hits int
	switch move.MultiHit.Kind {
	case dex.MultiHitUniform:
		hits = s.rng.UniformMultiHit(move.MultiHit.Min, move.MultiHit.Max)
	case dex.MultiHitCustom:
		if move.MultiHit.Custom != nil {
			hits = move.MultiHit.Custom(s.rng.Clone())
		} else {
			hits = 1
		}
	}
	if hits < 1 {
		hits = 1
	}

	for i := 1; i <= hits; i++ {
		if target.fainted() {
			break
		}
		s.hitOnce(user, target, move, i, hits)
	}
}

// hitOnce computes and applies one instance of damage for a non-OHKO move.
func (s *State) hitOnce(user, target *creature, move dex.Move, hitIndex, totalHits int) {
	userSpecies, _ := s.speciesDex.Get(user.Base.SpeciesID)
	targetSpecies, _ := s.speciesDex.Get(target.Base.SpeciesID)

	effectivenessMultiplier := s.typeChart.Effectiveness(move.Type, targetSpecies.Types)

	// Effectiveness 0 means immune: emit a zero-amount Damage event rather
	// than running it through the formula's max(1, floor(...)) floor
	// (spec.md section 4.4 "Damage inflict").
	var amount int
	if effectivenessMultiplier != 0 {
		amount = s.computeDamage(user, target, userSpecies, move, effectivenessMultiplier)
	}
	// A hit that takes the target to 0 HP ends the sequence, so it is the last.
	isLast := hitIndex == totalHits || amount >= target.CurrentHP
	s.dealDamage(user, target, move, amount, hitIndex, isLast, false)
}

// computeDamage implements spec.md section 4.4 "Damage inflict"'s formula.
func (s *State) computeDamage(user, target *creature, userSpecies dex.Species, move dex.Move, effectiveness float64) int {
	attackStat, defenseStat := dex.StatAttack, dex.StatDefense
	if move.Category == dex.CategorySpecial {
		attackStat, defenseStat = dex.StatSpAttack, dex.StatSpDefense
	}

	attack := s.effectiveOffensiveStat(user, attackStat, move.CriticalHit)
	defense := s.effectiveDefensiveStat(target, defenseStat, move.CriticalHit)
	if defense == 0 {
		defense = 1
	}

	power := move.BasePower
	if move.PowerModifier != nil {
		power = move.PowerModifier(dex.PowerModifierContext{
			UserCurrentHP:   user.CurrentHP,
			UserMaxHP:       user.maxHP(),
			TargetCurrentHP: target.CurrentHP,
		})
	}

	levelMod := float64(2*user.Base.Level)/5.0 + 2.0
	powerStat := math.Floor(float64(power) * (float64(attack) / float64(defense)))
	core := math.Floor(levelMod * powerStat / 50.0)

	critical := 1.0
	if move.CriticalHit {
		critical = 1.25
	}
	random := s.rng.DamageRoll()
	stab := 1.0
	for _, t := range userSpecies.Types {
		if t == move.Type {
			stab = 1.5
			break
		}
	}

	modifier := 1.0 * 1.0 * critical * random * stab * effectiveness * 1.0
	raw := (core + 2) * modifier
	damage := int(math.Floor(raw))

	for _, e := range user.Effects {
		if e.Hooks.OnTryDealDamage != nil {
			damage = e.Hooks.OnTryDealDamage(s, user, move, damage)
		}
	}

	if damage < 1 {
		damage = 1
	}
	return damage
}

// effectiveOffensiveStat reads the attacker's offensive stat, ignoring
// negative stages on a critical hit per spec.md section 4.4.
func (s *State) effectiveOffensiveStat(c *creature, stat dex.Stat, critical bool) int {
	stage := c.Flags.stage(stat)
	if critical && stage < 0 {
		stage = 0
	}
	return applyStatStageMultiplier(c.Base.Stats.Get(stat), stage)
}

// effectiveDefensiveStat reads the defender's defensive stat, ignoring
// positive stages on a critical hit per spec.md section 4.4.
func (s *State) effectiveDefensiveStat(c *creature, stat dex.Stat, critical bool) int {
	stage := c.Flags.stage(stat)
	if critical && stage > 0 {
		stage = 0
	}
	return applyStatStageMultiplier(c.Base.Stats.Get(stat), stage)
}

// applyStatStageMultiplier applies the standard stat-stage multiplier
// ((2+stage)/2 for stage>=0, 2/(2-stage) for stage<0) to a raw stat. This
// is the conventional Pokemon stage formula, distinct from the 3-based
// accuracy/evasion formula spec.md section 4.4 spells out explicitly; it is
// not itself given a formula in spec.md, so this is this implementation's
// resolution of how offensive/defensive stat stages (as opposed to
// accuracy/evasion stages) take effect.
func applyStatStageMultiplier(raw, stage int) int {
	stage = clampStage(stage)
	if stage >= 0 {
		return int(math.Floor(float64(raw) * float64(2+stage) / 2.0))
	}
	return int(math.Floor(float64(raw) * 2.0 / float64(2-stage)))
}

// dealDamage applies computed damage to the target's HP and emits Damage
// (and Faint, if it drops to 0).
func (s *State) dealDamage(user, target *creature, move dex.Move, amount, hitIndex int, isLast, isOHKO bool) {
	targetSpecies, _ := s.speciesDex.Get(target.Base.SpeciesID)
	effectiveness := s.typeChart.Effectiveness(move.Type, targetSpecies.Types)
	bucket := bucketFromMultiplier(effectiveness)

	target.CurrentHP -= amount
	if target.CurrentHP < 0 {
		target.CurrentHP = 0
	}

	s.metrics.RecordDamage(bucket.String(), amount)
	if move.CriticalHit && amount > 0 {
		s.metrics.RecordCriticalHit()
	}

	s.emit(EventDamage{
		Target:               target.Handle,
		Amount:               amount,
		Effectiveness:        bucket,
		IsCriticalHit:        move.CriticalHit,
		MultiHitIndex:        hitIndex,
		IsLastMultiHitDamage: isLast,
		IsOHKO:               isOHKO,
		Cause:                CauseMove,
	})

	if target.fainted() {
		s.faint(target)
	}
}
