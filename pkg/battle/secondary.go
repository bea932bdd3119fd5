package battle

import "pokebattle-core/pkg/dex"

// applySecondaryEffect implements spec.md section 4.4 "Secondary effects"
// for the four SecondaryKind shapes.
func (s *State) applySecondaryEffect(user *creature, targetH Handle, effect dex.SecondaryEffect) {
	owner := s.creatures[targetH]
	if effect.AffectsUser {
		owner = user
	}
	if owner == nil || owner.fainted() {
		return
	}

	switch effect.Kind {
	case dex.SecondaryConfusion:
		s.inflictConfusion(owner)
	case dex.SecondaryFlinch:
		s.inflictFlinch(owner)
	case dex.SecondaryStatChange:
		for _, delta := range effect.StatDeltas {
			s.applyStatChange(owner, delta.Stat, delta.Delta)
		}
	case dex.SecondaryStatus:
		s.inflictNonVolatileStatus(owner, effect.Status)
	}
}

func (s *State) inflictConfusion(owner *creature) {
	owner.Flags.Confused = true
	owner.Flags.ConfusionRemaining = int(s.rng.ConfusionDuration())
	s.emit(EventVolatileStatusCondition{Target: owner.Handle, AddedFlag: "confusion"})
}

func (s *State) inflictFlinch(owner *creature) {
	owner.Flags.Flinch = true
	s.emit(EventVolatileStatusCondition{Target: owner.Handle, AddedFlag: "flinch"})
}

// applyStatChange implements the boundary/graded StatChange event kind
// rules from spec.md section 4.4.
func (s *State) applyStatChange(owner *creature, stat dex.Stat, delta int) {
	old := owner.Flags.stage(stat)

	if delta < 0 && old <= -6 {
		s.emit(EventStatChange{Target: owner.Handle, Kind: StatChangeWontGoAnyLower, Stat: stat})
		return
	}
	if delta > 0 && old >= 6 {
		s.emit(EventStatChange{Target: owner.Handle, Kind: StatChangeWontGoAnyHigher, Stat: stat})
		return
	}

	owner.Flags.StatStages[stat] = clampStage(old + delta)

	magnitude := delta
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if magnitude > 3 {
		magnitude = 3
	}

	var kind StatChangeKind
	if delta > 0 {
		kind = [...]StatChangeKind{StatChangeRose, StatChangeSharplyRose, StatChangeDrasticallyRose}[magnitude-1]
	} else {
		kind = [...]StatChangeKind{StatChangeFell, StatChangeHarshlyFell, StatChangeSeverelyFell}[magnitude-1]
	}
	s.emit(EventStatChange{Target: owner.Handle, Kind: kind, Stat: stat})
}

// inflictNonVolatileStatus implements the StatusCondition secondary effect:
// consult the guard, refuse if already statused, else install.
func (s *State) inflictNonVolatileStatus(owner *creature, status dex.StatusCondition) {
	if owner.Status != dex.StatusNone {
		return
	}

	hooks := newStatusEffectHooks(status)
	if hooks.CanAffect != nil && !hooks.CanAffect(s, owner) {
		return
	}

	owner.Status = status
	if status == dex.StatusSleep {
		owner.StatusCounter = s.rng.UniformMultiHit(1, 3)
	}
	owner.installEffect(&EffectRecord{Source: status, Hooks: hooks})
	s.emit(EventNonVolatileStatusCondition{Target: owner.Handle, Condition: status})
}
