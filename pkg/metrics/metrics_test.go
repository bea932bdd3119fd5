package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBattleMetricsRegistersCollectors(t *testing.T) {
	m := NewBattleMetrics()
	families, err := m.Registry().Gather()
	assert.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestBattleMetricsRecordersDoNotPanicOnNilReceiver(t *testing.T) {
	var m *BattleMetrics
	assert.NotPanics(t, func() {
		m.RecordMoveUsed("tackle")
		m.RecordDamage("normal", 10)
		m.RecordCriticalHit()
		m.RecordFaint()
		m.RecordTurnProcessed()
		_ = m.Registry()
	})
}

func TestBattleMetricsRecordersUpdateCounters(t *testing.T) {
	m := NewBattleMetrics()
	m.RecordMoveUsed("tackle")
	m.RecordDamage("normal", 39)
	m.RecordCriticalHit()
	m.RecordFaint()
	m.RecordTurnProcessed()

	families, err := m.Registry().Gather()
	assert.NoError(t, err)
	assert.NotEmpty(t, families)
}
