package mockrng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pokebattle-core/pkg/rng"
	"pokebattle-core/pkg/rng/mockrng"
)

func TestMockRNG_SatisfiesInterface(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockrng.NewMockRNG(ctrl)

	var _ rng.RNG = m

	m.EXPECT().DamageRoll().Return(1.0)
	m.EXPECT().Clone().Return(m)

	assert.Equal(t, 1.0, m.DamageRoll())
	assert.Equal(t, rng.RNG(m), m.Clone())
}

func TestMockRNG_CustomMultiHitRecordsArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockrng.NewMockRNG(ctrl)

	m.EXPECT().CustomMultiHit(2, 5).Return(3)

	assert.Equal(t, 3, m.CustomMultiHit(2, 5))
}
