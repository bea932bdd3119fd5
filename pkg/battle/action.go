package battle

import "pokebattle-core/pkg/team"

// ActionKind distinguishes the kinds of action a team can push in a turn.
// Only UseMove is implemented; Switch and UseItem are reserved per spec.md
// section 1's Non-goals (no switching, no item use).
type ActionKind int

const (
	ActionUseMove ActionKind = iota
)

// Action is one team's queued instruction for the upcoming Tick.
type Action struct {
	Kind     ActionKind
	MoveSlot int
}

// TeamDescriptor is the caller-supplied roster for one side of a battle
// (spec.md section 6 "a pair of team descriptors").
type TeamDescriptor struct {
	Creatures []CreatureSpec
	// Trainer is absent for wild encounters; presence only affects the
	// InitialSwitchIn event's AlreadySentOut flag.
	Trainer *string
}

// CreatureSpec is the construction input for one creature: everything
// pkg/team.BuildCreature needs.
type CreatureSpec struct {
	SpeciesID string
	Level     int
	IVs       team.IVs
	EVs       team.EVs
	Nature    team.Nature
}
