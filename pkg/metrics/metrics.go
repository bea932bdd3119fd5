// Package metrics exposes Prometheus instrumentation for the battle engine,
// grounded on pkg/server/metrics.go's NewMetrics(registry) shape. It is
// optional: pkg/battle takes a *BattleMetrics and no-ops every call when the
// pointer is nil, the same optionality the teacher's server gives its own
// metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// BattleMetrics holds the Prometheus collectors the battle engine updates
// as it processes turns.
type BattleMetrics struct {
	movesUsed     *prometheus.CounterVec
	damageDealt   *prometheus.HistogramVec
	criticalHits  prometheus.Counter
	faints        prometheus.Counter
	turnsProcessed prometheus.Counter

	registry *prometheus.Registry
}

// NewBattleMetrics creates and registers every battle-core collector against
// a fresh registry.
func NewBattleMetrics() *BattleMetrics {
	registry := prometheus.NewRegistry()

	m := &BattleMetrics{
		movesUsed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pokebattle_moves_used_total",
				Help: "Total number of moves used, by move id.",
			},
			[]string{"move_id"},
		),
		damageDealt: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pokebattle_damage_dealt",
				Help:    "Damage dealt per hit, bucketed by effectiveness.",
				Buckets: prometheus.LinearBuckets(0, 20, 10),
			},
			[]string{"effectiveness"},
		),
		criticalHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "pokebattle_critical_hits_total",
				Help: "Total number of critical hits landed.",
			},
		),
		faints: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "pokebattle_faints_total",
				Help: "Total number of creature faints.",
			},
		),
		turnsProcessed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "pokebattle_turns_processed_total",
				Help: "Total number of turns processed across all battles.",
			},
		),
		registry: registry,
	}

	registry.MustRegister(m.movesUsed, m.damageDealt, m.criticalHits, m.faints, m.turnsProcessed)
	return m
}

// Registry returns the Prometheus registry backing this instance, for a
// caller that wants to mount /metrics itself.
func (m *BattleMetrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordMoveUsed increments the per-move-id usage counter. Safe to call on a
// nil *BattleMetrics.
func (m *BattleMetrics) RecordMoveUsed(moveID string) {
	if m == nil {
		return
	}
	m.movesUsed.WithLabelValues(moveID).Inc()
}

// RecordDamage observes a damage amount under its effectiveness bucket
// label. Safe to call on a nil *BattleMetrics.
func (m *BattleMetrics) RecordDamage(effectivenessBucket string, amount int) {
	if m == nil {
		return
	}
	m.damageDealt.WithLabelValues(effectivenessBucket).Observe(float64(amount))
}

// RecordCriticalHit increments the critical-hit counter. Safe to call on a
// nil *BattleMetrics.
func (m *BattleMetrics) RecordCriticalHit() {
	if m == nil {
		return
	}
	m.criticalHits.Inc()
}

// RecordFaint increments the faint counter. Safe to call on a nil
// *BattleMetrics.
func (m *BattleMetrics) RecordFaint() {
	if m == nil {
		return
	}
	m.faints.Inc()
}

// RecordTurnProcessed increments the turns-processed counter. Safe to call
// on a nil *BattleMetrics.
func (m *BattleMetrics) RecordTurnProcessed() {
	if m == nil {
		return
	}
	m.turnsProcessed.Inc()
}
