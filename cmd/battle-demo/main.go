package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"pokebattle-core/pkg/battle"
	"pokebattle-core/pkg/config"
	"pokebattle-core/pkg/dex"
	"pokebattle-core/pkg/team"
)

func main() {
	fmt.Println("=== Battle Engine Demo ===")
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	team1 := battle.TeamDescriptor{
		Creatures: []battle.CreatureSpec{
			{
				SpeciesID: "rattata",
				Level:     50,
				IVs:       team.IVs{31, 31, 31, 31, 31, 31},
				Nature:    team.NatureAdamant,
			},
		},
	}
	team2 := battle.TeamDescriptor{
		Creatures: []battle.CreatureSpec{
			{
				SpeciesID: "pidgey",
				Level:     50,
				IVs:       team.IVs{31, 31, 31, 31, 31, 31},
				Nature:    team.NatureAdamant,
			},
		},
	}

	state, err := battle.Create(team1, team2, cfg.NewRNG(), battle.WithLogger(logger), battle.WithConfig(cfg))
	if err != nil {
		logger.WithError(err).Fatal("failed to construct battle")
	}
	fmt.Printf("✓ Battle constructed: %s\n\n", state.ID)

	events, err := state.Tick()
	if err != nil {
		logger.WithError(err).Fatal("first tick failed")
	}
	fmt.Println("=== Turn 1: Switch-in ===")
	printEvents(state, events)

	rattata, _ := state.GetActive(battle.TeamP1)
	pidgey, _ := state.GetActive(battle.TeamP2)

	fmt.Println("\n=== Turn 2: Both send Tackle ===")
	mustPush(state, battle.TeamP1, 2) // at level 50 PickMoves puts tackle in rattata's third move slot (index 2)
	mustPush(state, battle.TeamP2, 2)
	events, err = state.Tick()
	if err != nil {
		logger.WithError(err).Fatal("tick failed")
	}
	printEvents(state, events)

	fmt.Printf("\nRattata HP: %d\n", state.CurrentHP(rattata))
	fmt.Printf("Pidgey HP:  %d\n", state.CurrentHP(pidgey))

	fmt.Println("\n=== Demo Complete ===")
}

func mustPush(s *battle.State, t battle.Team, slot int) {
	if err := s.PushAction(t, battle.Action{Kind: battle.ActionUseMove, MoveSlot: slot}); err != nil {
		logrus.WithError(err).Fatal("push action failed")
	}
}

func printEvents(s *battle.State, events []battle.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case battle.EventInitialSwitchIn:
			fmt.Printf("  %s sends out creature %d\n", ev.Team, ev.Creature)
		case battle.EventUseMove:
			fmt.Printf("  creature %d used %s\n", ev.User, ev.MoveDisplayName)
		case battle.EventDamage:
			fmt.Printf("  creature %d takes %d damage (%s)\n", ev.Target, ev.Amount, ev.Effectiveness)
		case battle.EventMiss:
			fmt.Printf("  creature %d's move missed creature %d\n", ev.User, ev.Target)
		case battle.EventFailedMove:
			fmt.Printf("  creature %d's move failed\n", ev.User)
		case battle.EventFaint:
			fmt.Printf("  creature %d fainted\n", ev.Target)
		case battle.EventNonVolatileStatusCondition:
			fmt.Printf("  creature %d was afflicted with %s\n", ev.Target, statusName(ev.Condition))
		case battle.EventChangeTurn:
			fmt.Printf("  -- turn %d begins --\n", ev.NewTurn)
		}
	}
}

func statusName(c dex.StatusCondition) string {
	if c == dex.StatusNone {
		return "nothing"
	}
	return string(c)
}
