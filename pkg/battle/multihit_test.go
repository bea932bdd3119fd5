package battle

import (
	"testing"

	"pokebattle-core/pkg/rng/mockrng"
	"pokebattle-core/pkg/team"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestDoubleSlapClonesRNGBeforeCustomHitCountCallback is the interaction test
// SPEC_FULL.md's pkg/rng section promises: it asserts, through a real Tick,
// that a CustomMultiHitFunc (doubleSlapHitCount, pkg/dex/moves.go) only ever
// sees the RNG returned by Clone(), never the battle's main stream. gomock's
// call recorder makes the ordering assertion explicit (gomock.InOrder) instead
// of inferring it from a damage-count side effect.
func TestDoubleSlapClonesRNGBeforeCustomHitCountCallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	main := mockrng.NewMockRNG(ctrl)
	clone := mockrng.NewMockRNG(ctrl)

	gomock.InOrder(
		main.EXPECT().Clone().Return(clone),
		clone.EXPECT().CustomMultiHit(1, 6).Return(6),
	)

	// Every other roll this battle draws is irrelevant to the assertion;
	// stub them loosely so a full two-tick battle can run to completion.
	main.EXPECT().ShuffleActions(gomock.Any()).Return([]int{0, 1}).AnyTimes()
	main.EXPECT().UniformMultiHit(gomock.Any(), gomock.Any()).Return(0).AnyTimes()
	main.EXPECT().MissRoll(gomock.Any()).Return(false).AnyTimes()
	main.EXPECT().DamageRoll().Return(1.0).AnyTimes()
	main.EXPECT().SecondaryTrigger(gomock.Any()).Return(false).AnyTimes()
	main.EXPECT().ConfusionSelfHit().Return(false).AnyTimes()
	main.EXPECT().ParalysisSkip().Return(false).AnyTimes()
	main.EXPECT().FreezeThaw().Return(false).AnyTimes()
	main.EXPECT().ConfusionDuration().Return(uint32(2)).AnyTimes()

	s, err := Create(
		soloTeam("clefairy", 10, team.NatureSerious),
		soloTeam("metapod", 10, team.NatureSerious),
		main,
	)
	require.NoError(t, err)

	_, err = s.Tick() // first tick: switch-in only, no rolls this assertion cares about
	require.NoError(t, err)

	require.NoError(t, s.PushAction(TeamP1, Action{Kind: ActionUseMove, MoveSlot: 1})) // double-slap
	require.NoError(t, s.PushAction(TeamP2, Action{Kind: ActionUseMove, MoveSlot: 1})) // tackle

	_, err = s.Tick()
	require.NoError(t, err)
}
