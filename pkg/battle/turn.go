package battle

import (
	"fmt"
	"sort"

	"pokebattle-core/pkg/dex"
	"pokebattle-core/pkg/validation"
)

// Tick advances the battle by one turn (spec.md section 4.4 "Turn state
// machine"). The very first call performs only the initial switch-in
// (FirstTick); every call after that requires exactly one pending action
// per team and processes a full turn. The returned slice is the drained
// event queue; a second Tick without pushing new actions is invalid after
// the first real turn (push a fresh pair of actions first).
func (s *State) Tick() ([]Event, error) {
	if !s.started {
		return s.firstTick(), nil
	}

	actionP1, ok1 := s.pending[TeamP1]
	actionP2, ok2 := s.pending[TeamP2]
	pendingCount := len(s.pending)
	if err := contractValidator.Validate("tick", validation.TickParams{
		Started:      s.started,
		PendingCount: pendingCount,
	}); err != nil {
		return nil, fmt.Errorf("battle: %w", err)
	}
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("battle: tick requires exactly one pending action per team")
	}
	delete(s.pending, TeamP1)
	delete(s.pending, TeamP2)

	s.processTurn(actionP1, actionP2)

	s.turn++
	s.emit(EventChangeTurn{NewTurn: s.turn})
	s.metrics.RecordTurnProcessed()

	return s.drain(), nil
}

func (s *State) drain() []Event {
	out := s.events
	s.events = nil
	return out
}

// firstTick pops the front reserve creature of each team into the active
// slot, in opponent-then-player order, and emits the turn's single
// ChangeTurn event.
func (s *State) firstTick() []Event {
	s.switchInFirst(TeamP2)
	s.switchInFirst(TeamP1)

	s.started = true
	s.turn = 1
	s.emit(EventChangeTurn{NewTurn: s.turn})

	return s.drain()
}

func (s *State) switchInFirst(t Team) {
	slot := s.slots[t]
	if len(slot.Reserve) == 0 {
		return
	}
	h := slot.Reserve[0]
	slot.Reserve = slot.Reserve[1:]
	slot.Active = &h

	s.emit(EventInitialSwitchIn{
		Team:           t,
		Creature:       h,
		AlreadySentOut: slot.Trainer == nil,
	})
}

// usedMoveRecord is one team's resolved action for this turn, paired with
// the acting/target handles and move descriptor.
type usedMoveRecord struct {
	team        Team
	user        Handle
	target      Handle
	targetValid bool
	move        dex.Move
	order       int // shuffle-assigned tie-break key
}

func (s *State) processTurn(a1, a2 Action) {
	records := make([]usedMoveRecord, 0, 2)
	for _, pair := range []struct {
		t Team
		a Action
	}{{TeamP1, a1}, {TeamP2, a2}} {
		userH, ok := s.GetActive(pair.t)
		if !ok {
			continue
		}
		user := s.creatures[userH]
		moveID := user.Base.Moves[pair.a.MoveSlot]
		move, ok := s.moveDex.Get(moveID)
		if !ok {
			continue
		}
		targetH, targetOk := s.GetActive(pair.t.Opponent())
		records = append(records, usedMoveRecord{team: pair.t, user: userH, target: targetH, targetValid: targetOk, move: move})
	}

	order := s.rng.ShuffleActions(len(records))
	for i, idx := range order {
		records[idx].order = i
	}

	sort.SliceStable(records, func(i, j int) bool {
		ri, rj := records[i], records[j]
		if ri.move.Priority != rj.move.Priority {
			return ri.move.Priority > rj.move.Priority
		}
		si, _ := s.GetStat(ri.user, dex.StatSpeed)
		sj, _ := s.GetStat(rj.user, dex.StatSpeed)
		if si != sj {
			return si > sj
		}
		return ri.order < rj.order
	})

	for _, rec := range records {
		user := s.creatures[rec.user]
		if user.fainted() {
			continue
		}
		s.executeMove(rec)
	}

	s.endOfTurn()
}

// executeMove runs the per-move sequence in spec.md section 4.4.
func (s *State) executeMove(rec usedMoveRecord) {
	user := s.creatures[rec.user]
	move := rec.move

	// 1. Flinch gate.
	if user.Flags.Flinch {
		return
	}

	// 2. Confusion bookkeeping: check expiry *before* decrementing (spec.md
	// section 9's preserved ordering subtlety).
	if user.Flags.Confused {
		if user.Flags.ConfusionRemaining <= 0 {
			user.Flags.Confused = false
			s.emit(EventExpiredVolatileStatusCondition{Target: user.Handle, Flag: "confusion"})
		} else {
			user.Flags.ConfusionRemaining--
		}
	}

	// 3. On-before-use-move hooks.
	for _, e := range user.Effects {
		if e.Hooks.OnBeforeUseMove == nil {
			continue
		}
		if e.Hooks.OnBeforeUseMove(s, user, move) == dex.OutcomeFail {
			s.emit(EventFailedMove{User: user.Handle})
			return
		}
	}

	// 4. Announce.
	s.emit(EventUseMove{User: user.Handle, MoveDisplayName: move.DisplayName})
	s.metrics.RecordMoveUsed(move.ID)

	// 5. On-try-use-move hooks.
	for _, e := range user.Effects {
		if e.Hooks.OnTryUseMove == nil {
			continue
		}
		if e.Hooks.OnTryUseMove(s, user, move) == dex.OutcomeFail {
			s.emit(EventFailedMove{User: user.Handle})
			return
		}
	}

	// 6. Move's own guard.
	if move.OnUsageAttempt != nil {
		target := s.creatures[rec.target]
		ctx := dex.UsageAttemptContext{
			TargetHasNonVolatileStatus: target != nil && target.Status != dex.StatusNone,
			TargetHasFlag:              func(name string) bool { return target != nil && s.HasFlag(target.Handle, name) },
		}
		if move.OnUsageAttempt(ctx) == dex.OutcomeFail {
			s.emit(EventFailedMove{User: user.Handle})
			return
		}
	}

	// An opponent with no active creature when this turn's action records
	// were built leaves nothing to aim at for a non-self move; abort
	// silently, the same treatment §4.4 gives a user that has already fainted.
	if !rec.targetValid && move.Target != dex.TargetSelf {
		return
	}

	// 7. Confusion self-hit.
	if user.Flags.Confused && s.rng.ConfusionSelfHit() {
		s.emit(EventMiss{Target: rec.target, User: user.Handle, CausedByConfusion: true})
		return
	}

	// 8. Accuracy check. Applies to every move, status included (e.g.
	// Thunder Wave's 90% accuracy).
	if !s.checkAccuracy(user, rec.target, move) {
		return
	}

	// 9. Effect application.
	if move.Category != dex.CategoryStatus {
		s.applyDamagingEffect(user, rec.target, move)
	}

	// 10. Secondary effect.
	if move.Secondary != nil && s.rng.SecondaryTrigger(move.Secondary.Chance) {
		s.applySecondaryEffect(user, rec.target, *move.Secondary)
	}
}

// endOfTurn clears Flinch and runs on_turn_end for every still-active
// creature, then leaves the turn counter increment to the caller (Tick).
func (s *State) endOfTurn() {
	for _, t := range []Team{TeamP1, TeamP2} {
		h, ok := s.GetActive(t)
		if !ok {
			continue
		}
		c := s.creatures[h]
		c.Flags.Flinch = false
		for _, e := range c.Effects {
			if e.Hooks.OnTurnEnd == nil {
				continue
			}
			e.Hooks.OnTurnEnd(s, c)
		}
	}
}
