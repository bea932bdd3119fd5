package dex

import (
	"testing"

	"pokebattle-core/pkg/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSpeciesDexLoadsWorkedScenarioSpecies(t *testing.T) {
	for _, id := range []string{"rattata", "pidgey", "hitmonchan", "charmander", "clefairy", "ekans", "metapod"} {
		t.Run(id, func(t *testing.T) {
			s, ok := DefaultSpeciesDex.Get(id)
			require.True(t, ok, "species %q must be present", id)
			assert.NotEmpty(t, s.DisplayName)
			assert.NotEmpty(t, s.Types)
			assert.Greater(t, s.BaseStats.HP, 0)
			assert.NotEmpty(t, s.LearnTable)
		})
	}
}

func TestDefaultMoveDexLoadsWorkedScenarioMoves(t *testing.T) {
	for _, id := range []string{"tackle", "gust", "slash", "double-slap", "glare"} {
		t.Run(id, func(t *testing.T) {
			m, ok := DefaultMoveDex.Get(id)
			require.True(t, ok, "move %q must be present", id)
			assert.NotEmpty(t, m.DisplayName)
		})
	}
}

func TestSlashHasStaticCriticalHitFlag(t *testing.T) {
	m, ok := DefaultMoveDex.Get("slash")
	require.True(t, ok)
	assert.True(t, m.CriticalHit)

	tackle, ok := DefaultMoveDex.Get("tackle")
	require.True(t, ok)
	assert.False(t, tackle.CriticalHit)
}

func TestDoubleSlapCustomMultiHitWiredToSkewedHitCount(t *testing.T) {
	m, ok := DefaultMoveDex.Get("double-slap")
	require.True(t, ok)
	require.NotNil(t, m.MultiHit)
	assert.Equal(t, MultiHitCustom, m.MultiHit.Kind)
	require.NotNil(t, m.MultiHit.Custom)

	cases := []struct {
		forced int
		hits   int
	}{
		{1, 2},
		{2, 2},
		{3, 3},
		{4, 3},
		{5, 4},
		{6, 5},
	}
	for _, c := range cases {
		testRNG := rng.NewTestRNG()
		testRNG.ForceCustomMultiHitValue(c.forced)
		assert.Equal(t, c.hits, m.MultiHit.Custom(testRNG))
	}
}

func TestFissureIsFlaggedOneHitKO(t *testing.T) {
	m, ok := DefaultMoveDex.Get("fissure")
	require.True(t, ok)
	assert.True(t, m.HasFlag(FlagOneHitKO))
}

func TestTypeChartEffectivenessAgainstDualType(t *testing.T) {
	// Flying is neutral against both Normal and Flying, so Gust (Flying)
	// against a Normal/Flying defender nets out to 1x (product of two 1x
	// lookups), per spec.md section 4.2's "product of both lookups" rule.
	eff := DefaultTypeChart.Effectiveness(TypeFlying, []Type{TypeNormal, TypeFlying})
	assert.InDelta(t, 1.0, eff, 1e-9)

	eff = DefaultTypeChart.Effectiveness(TypeFlying, []Type{TypeFighting})
	assert.InDelta(t, 2.0, eff, 1e-9)

	eff = DefaultTypeChart.Effectiveness(TypeNormal, []Type{TypeGhost})
	assert.InDelta(t, 0.0, eff, 1e-9)

	eff = DefaultTypeChart.Effectiveness(TypeGround, []Type{TypeFlying})
	assert.InDelta(t, 0.0, eff, 1e-9)
}

func TestTypeChartDoubledLookupMatchesSpecEncoding(t *testing.T) {
	// 2 -> 1x neutral
	assert.Equal(t, 2, DefaultTypeChart.DoubledLookup(TypeNormal, TypeNormal))
	// 1 -> 0.5x
	assert.Equal(t, 1, DefaultTypeChart.DoubledLookup(TypeNormal, TypeRock))
	// 4 -> 2x
	assert.Equal(t, 4, DefaultTypeChart.DoubledLookup(TypeWater, TypeFire))
	// 0 -> immune
	assert.Equal(t, 0, DefaultTypeChart.DoubledLookup(TypeNormal, TypeGhost))
}

func TestLoadTypeChartRejectsMismatchedMatrixShape(t *testing.T) {
	_, err := loadTypeChart([]byte("types: [normal, fire]\nmatrix:\n  - [2, 2]\n"))
	assert.Error(t, err)
}
