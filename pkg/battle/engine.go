package battle

import (
	"fmt"

	"pokebattle-core/pkg/config"
	"pokebattle-core/pkg/dex"
	"pokebattle-core/pkg/integration"
	"pokebattle-core/pkg/metrics"
	"pokebattle-core/pkg/resilience"
	"pokebattle-core/pkg/rng"
	"pokebattle-core/pkg/team"
	"pokebattle-core/pkg/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// contractValidator enforces spec.md section 7's caller-contract
// preconditions ahead of the engine's own bookkeeping. A single validator
// is shared across every State: it is stateless beyond its method
// registry, so there is nothing battle-specific to carry per instance.
var contractValidator = validation.NewContractValidator()

// teamSlot is one side's active/reserve bookkeeping (spec.md section 3
// "Team slot"). The core only ever implements a single active slot (no
// mid-battle switching per section 1's Non-goals), so Active is nil only
// before the first tick and permanently nil again once its holder faints.
type teamSlot struct {
	Active  *Handle
	Reserve []Handle
	Trainer *string
}

// Option configures a State at construction, mirroring the teacher's
// functional-options constructors (e.g. pcg.NewPCGManager(world, logger,
// opts...)). Options return an error so a config-driven option (WithConfig)
// can fail construction when an on-disk override fails to load, rather than
// logging and silently continuing with the embedded defaults.
type Option func(*State) error

// WithLogger overrides the structured logger every state transition is
// logged through.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *State) error {
		s.log = l
		return nil
	}
}

// WithMetrics attaches a *metrics.BattleMetrics. Nil (the default) leaves
// metrics recording a no-op, same optionality the teacher gives its own
// metrics.
func WithMetrics(m *metrics.BattleMetrics) Option {
	return func(s *State) error {
		s.metrics = m
		return nil
	}
}

// WithSpeciesDex overrides the species catalogue (defaults to
// dex.DefaultSpeciesDex).
func WithSpeciesDex(d dex.SpeciesDex) Option {
	return func(s *State) error {
		s.speciesDex = d
		return nil
	}
}

// WithMoveDex overrides the move catalogue (defaults to dex.DefaultMoveDex).
func WithMoveDex(d dex.MoveDex) Option {
	return func(s *State) error {
		s.moveDex = d
		return nil
	}
}

// WithTypeChart overrides the type chart (defaults to dex.DefaultTypeChart).
func WithTypeChart(c *dex.TypeChart) Option {
	return func(s *State) error {
		s.typeChart = c
		return nil
	}
}

// WithConfig applies a *config.Config to the state under construction: it
// sets the logger's level, and, when the config names an override path,
// loads and merges the on-disk species/move overrides over the dex already
// selected (DefaultSpeciesDex/DefaultMoveDex unless an earlier WithSpeciesDex
// /WithMoveDex option ran first). The override load goes through a
// integration.ResilientExecutor built from the config's own retry knobs
// (spec.md's "override load" path), so a flaky filesystem gets the same
// backoff-and-retry treatment the teacher gives its own config/file reads.
func WithConfig(cfg *config.Config) Option {
	return func(s *State) error {
		if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			if l, ok := s.log.(*logrus.Logger); ok {
				l.SetLevel(lvl)
			} else {
				fresh := logrus.New()
				fresh.SetLevel(lvl)
				s.log = fresh
			}
		}

		executor := integration.NewResilientExecutor(resilience.FileSystemConfig, cfg.GetRetryConfig())

		if cfg.HasSpeciesOverride() {
			override, err := dex.LoadSpeciesOverride(cfg.SpeciesOverridePath, executor)
			if err != nil {
				return fmt.Errorf("battle: load species override: %w", err)
			}
			s.speciesDex = dex.MergeSpecies(s.speciesDex, override)
		}
		if cfg.HasMoveOverride() {
			override, err := dex.LoadMoveOverride(cfg.MoveOverridePath, executor)
			if err != nil {
				return fmt.Errorf("battle: load move override: %w", err)
			}
			s.moveDex = dex.MergeMoves(s.moveDex, override)
		}
		return nil
	}
}

// State is the battle engine (spec.md section 4.4 "Battle engine"). It owns
// every creature constructed into the battle; callers outside this package
// only ever hold Handles and copies of drained events.
type State struct {
	ID  string
	log logrus.FieldLogger

	metrics    *metrics.BattleMetrics
	rng        rng.RNG
	speciesDex dex.SpeciesDex
	moveDex    dex.MoveDex
	typeChart  *dex.TypeChart

	creatures  map[Handle]*creature
	nextHandle Handle
	slots      map[Team]*teamSlot

	turn    int
	started bool
	pending map[Team]Action

	events []Event
}

// Create registers both teams' creatures, assigns handles, and returns an
// engine with turn counter 0 and no events yet (spec.md section 6
// "Construct"). Creatures are built via pkg/team.BuildCreature using the
// supplied RNG for the gender roll; the same RNG instance then drives every
// stochastic decision for the battle's lifetime.
func Create(team1, team2 TeamDescriptor, r rng.RNG, opts ...Option) (*State, error) {
	s := &State{
		ID:         uuid.New().String(),
		log:        logrus.StandardLogger(),
		rng:        r,
		speciesDex: dex.DefaultSpeciesDex,
		moveDex:    dex.DefaultMoveDex,
		typeChart:  dex.DefaultTypeChart,
		creatures:  make(map[Handle]*creature),
		slots:      make(map[Team]*teamSlot),
		pending:    make(map[Team]Action),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("battle: apply option: %w", err)
		}
	}

	p1Slot, err := s.buildTeam("P1", team1)
	if err != nil {
		return nil, fmt.Errorf("battle: construct team1: %w", err)
	}
	p2Slot, err := s.buildTeam("P2", team2)
	if err != nil {
		return nil, fmt.Errorf("battle: construct team2: %w", err)
	}
	s.slots[TeamP1] = p1Slot
	s.slots[TeamP2] = p2Slot

	s.log.WithFields(logrus.Fields{
		"function":  "Create",
		"package":   "battle",
		"battle_id": s.ID,
	}).Info("battle constructed")

	return s, nil
}

func (s *State) buildTeam(label string, desc TeamDescriptor) (*teamSlot, error) {
	if err := contractValidator.Validate("construct", validation.ConstructParams{
		TeamLabel:     label,
		CreatureCount: len(desc.Creatures),
	}); err != nil {
		return nil, fmt.Errorf("battle: %w", err)
	}
	slot := &teamSlot{Trainer: desc.Trainer}
	for _, spec := range desc.Creatures {
		species, ok := s.speciesDex.Get(spec.SpeciesID)
		if err := contractValidator.Validate("construct", validation.ConstructParams{
			TeamLabel:      label,
			CreatureCount:  len(desc.Creatures),
			UnknownSpecies: unknownSpeciesLabel(ok, spec.SpeciesID),
		}); err != nil {
			return nil, fmt.Errorf("battle: %w", err)
		}
		built := team.BuildCreature(species, s.moveDex, spec.Level, spec.IVs, spec.EVs, spec.Nature, s.rng)
		h := s.nextHandle
		s.nextHandle++
		s.creatures[h] = newCreatureFromBuild(h, built)
		slot.Reserve = append(slot.Reserve, h)
	}
	return slot, nil
}

// PushAction queues one team's action for the upcoming Tick (spec.md
// section 6 "Push action"). It is a contract violation, fatal per section
// 7, to push before the first Tick, to reference an empty move slot, or to
// push twice for the same team before Tick drains the queue.
func (s *State) PushAction(t Team, a Action) error {
	if !s.started {
		return fmt.Errorf("battle: cannot push action before the first tick")
	}
	if _, dup := s.pending[t]; dup {
		return fmt.Errorf("battle: team %s already has a pending action", t)
	}
	slot := s.slots[t]
	if slot.Active == nil {
		return fmt.Errorf("battle: team %s has no active creature", t)
	}
	active := s.creatures[*slot.Active]

	moveID := ""
	if a.MoveSlot >= 0 && a.MoveSlot <= 3 {
		moveID = active.Base.Moves[a.MoveSlot]
	}
	if err := contractValidator.Validate("pushAction", validation.PushActionParams{
		TeamLabel: t.String(),
		MoveSlot:  a.MoveSlot,
		MoveID:    moveID,
	}); err != nil {
		return fmt.Errorf("battle: %w", err)
	}

	s.pending[t] = a
	return nil
}

// GetActive returns the active creature's handle for a team, if any.
func (s *State) GetActive(t Team) (Handle, bool) {
	slot := s.slots[t]
	if slot == nil || slot.Active == nil {
		return 0, false
	}
	return *slot.Active, true
}

// GetStat returns a creature's raw computed stat (no stage multiplier
// applied; stat stages are not exposed by this accessor).
func (s *State) GetStat(h Handle, stat dex.Stat) (int, bool) {
	c, ok := s.creatures[h]
	if !ok {
		return 0, false
	}
	return c.Base.Stats.Get(stat), true
}

// HasFlag reports whether a creature carries the named volatile flag:
// "confused" or "flinch".
func (s *State) HasFlag(h Handle, name string) bool {
	c, ok := s.creatures[h]
	if !ok {
		return false
	}
	switch name {
	case "confused":
		return c.Flags.Confused
	case "flinch":
		return c.Flags.Flinch
	default:
		return false
	}
}

// Status returns a creature's current non-volatile status condition.
func (s *State) Status(h Handle) dex.StatusCondition {
	c, ok := s.creatures[h]
	if !ok {
		return dex.StatusNone
	}
	return c.Status
}

// CurrentHP returns a creature's current HP.
func (s *State) CurrentHP(h Handle) int {
	c, ok := s.creatures[h]
	if !ok {
		return 0
	}
	return c.CurrentHP
}

// unknownSpeciesLabel returns speciesID when the dex lookup failed, or ""
// when it resolved, matching validation.ConstructParams.UnknownSpecies'
// "empty means every species resolved" convention.
func unknownSpeciesLabel(resolved bool, speciesID string) string {
	if resolved {
		return ""
	}
	return speciesID
}

func (s *State) emit(e Event) {
	s.events = append(s.events, e)
}

// cureStatus clears a creature's non-volatile status, removes its effect
// record, and emits ExpiredNonVolatileStatusCondition.
func (s *State) cureStatus(c *creature) {
	if c.Status == dex.StatusNone {
		return
	}
	prior := c.Status
	c.removeEffect(prior)
	c.Status = dex.StatusNone
	c.StatusCounter = 0
	s.emit(EventExpiredNonVolatileStatusCondition{Target: c.Handle, Condition: prior})
}

// applyChipDamage applies end-of-turn status damage (Burn/Poison/Toxic) and
// emits the resulting Damage/Faint events.
func (s *State) applyChipDamage(c *creature, amount int, cause DamageCause) {
	if c.fainted() {
		return
	}
	c.CurrentHP -= amount
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
	s.metrics.RecordDamage(bucketFromMultiplier(1.0).String(), amount)
	s.emit(EventDamage{
		Target:        c.Handle,
		Amount:        amount,
		Effectiveness: EffectivenessNormal,
		Cause:         cause,
	})
	if c.fainted() {
		s.faint(c)
	}
}

// faint moves a creature from its active slot to the front of its team's
// reserve list (spec.md section 4.4 "single-active-slot model": there is no
// mid-battle switching, so the slot simply goes empty) and emits Faint.
func (s *State) faint(c *creature) {
	s.metrics.RecordFaint()
	for _, slot := range s.slots {
		if slot.Active != nil && *slot.Active == c.Handle {
			slot.Active = nil
			slot.Reserve = append([]Handle{c.Handle}, slot.Reserve...)
		}
	}
	s.emit(EventFaint{Target: c.Handle})
}
