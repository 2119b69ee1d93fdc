package engine

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/sushi-belt/components"
	"github.com/lixenwraith/sushi-belt/config"
	"github.com/lixenwraith/sushi-belt/pacing"
	"github.com/lixenwraith/sushi-belt/status"
	"github.com/lixenwraith/sushi-belt/systems"
)

// Callbacks notify the collaborator of run changes during a tick
// Score, level, lives and combo fire at most once per tick, compared against the pre-tick value
// Nil callbacks are skipped
type Callbacks struct {
	OnScoreUpdate func(score int)
	OnLevelUpdate func(level int)
	OnLivesUpdate func(lives int)
	OnSushiCaught func()
	OnHazardHit   func()
	OnComboUpdate func(multiplier float64)
}

// ControlSource yields the held controls at a wall-clock instant
type ControlSource interface {
	Snapshot(now time.Time) systems.Controls
}

// SessionDeps carries what a session borrows from its owner
type SessionDeps struct {
	Controls  ControlSource
	Clock     Clock
	Rng       *rand.Rand
	Status    *status.Registry
	Callbacks Callbacks
}

// Session is the mutable state of one play: items, player, combo and run stats
// Only the driver goroutine mutates it; renderers read it between ticks
type Session struct {
	cfg *config.Config

	motion systems.Motion
	belt   *systems.BeltMotion // nil when orbiting

	spawner    *systems.Spawner
	controller *systems.PlayerController
	collision  *systems.CollisionSystem
	scoring    *systems.ScoringEngine

	items  []components.Item
	player components.PlayerState
	combo  components.ComboState
	run    components.RunState

	deps SessionDeps

	tick       time.Duration
	simTime    time.Duration
	spawnCarry time.Duration
	over       bool

	// Cached metric pointers
	statItems   *atomic.Int64
	statCatches *atomic.Int64
	statHazards *atomic.Int64
	statCombo   *status.AtomicFloat
}

// NewSession builds a fresh board or orbit for cfg and seeds it with run
// run carries stats that persist across pause; level and lives are taken as given
func NewSession(cfg *config.Config, run components.RunState, deps SessionDeps) (*Session, error) {
	if deps.Rng == nil {
		deps.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Clock == nil {
		deps.Clock = NewTimeProvider()
	}
	if deps.Status == nil {
		deps.Status = status.NewRegistry()
	}

	spawner, err := systems.NewSpawner(cfg, deps.Rng)
	if err != nil {
		return nil, err
	}

	run.Level = max(1, run.Level)
	s := &Session{
		cfg:         cfg,
		motion:      systems.NewMotion(cfg),
		spawner:     spawner,
		controller:  systems.NewPlayerController(cfg),
		collision:   systems.NewCollisionSystem(cfg),
		scoring:     systems.NewScoringEngine(cfg, deps.Rng),
		combo:       components.NewComboState(),
		run:         run,
		deps:        deps,
		tick:        cfg.FixedTick(),
		statItems:   deps.Status.Ints.Get("session.items"),
		statCatches: deps.Status.Ints.Get("session.catches"),
		statHazards: deps.Status.Ints.Get("session.hazards"),
		statCombo:   deps.Status.Floats.Get("session.best_combo"),
	}
	if b, ok := s.motion.(*systems.BeltMotion); ok {
		s.belt = b
	}
	deps.Status.Strings.Get("session.motion").Store(s.motion.Name())

	s.motion.SetLevel(cfg.Difficulty, s.run.Level)
	s.items = s.spawnSet(s.run.Level)
	s.over = s.run.Lives <= 0
	s.statItems.Store(int64(len(s.items)))
	return s, nil
}

// targetSize is the population a level starts with and timed spawns refill toward
func (s *Session) targetSize(level int) int {
	if s.belt != nil {
		return s.cfg.Belt.ItemCount
	}
	return s.spawner.SetSize(level)
}

func (s *Session) spawnSet(level int) []components.Item {
	n := s.targetSize(level)
	items := make([]components.Item, n)
	for i := range items {
		items[i] = s.spawner.CreateItem(s.spawner.NextID(), level)
	}
	if s.belt != nil {
		s.belt.Layout(items)
	}
	return items
}

func (s *Session) addItem() {
	it := s.spawner.CreateItem(s.spawner.NextID(), s.run.Level)
	s.motion.Place(&it, s.items)
	s.items = append(s.items, it)
}

// Step advances the session by one fixed tick
func (s *Session) Step() {
	s.simTime += s.tick
	prev := s.run
	prevMult := s.combo.Multiplier

	s.scoring.Combo().Lapse(&s.combo, s.simTime)

	var ctl systems.Controls
	if s.deps.Controls != nil {
		ctl = s.deps.Controls.Snapshot(s.deps.Clock.Now())
	}
	s.controller.Update(&s.player, ctl)
	s.motion.Advance(s.items)

	var out systems.ScoreOutcome
	if !s.over {
		out = s.resolveCatches()
		s.spawnTimed()
		s.replenish()
		s.run.Elapsed += s.tick
	}

	s.notify(prev, prevMult, out)

	if s.run.Lives <= 0 {
		s.over = true
	}
	s.statItems.Store(int64(len(s.items)))
}

// resolveCatches scans for catches and applies scoring and level-up
func (s *Session) resolveCatches() systems.ScoreOutcome {
	kept, caught := s.collision.Scan(s.motion, &s.player, s.items)
	s.items = kept
	if len(caught) == 0 {
		return systems.ScoreOutcome{PrevLevel: s.run.Level}
	}

	out := s.scoring.Apply(&s.run, &s.combo, caught, s.simTime)
	s.statCatches.Add(int64(out.Sushi))
	s.statHazards.Add(int64(out.Hazards))
	s.statCombo.StoreMax(out.BestCombo)

	if out.LevelUp {
		s.motion.SetLevel(s.cfg.Difficulty, s.run.Level)
		if s.cfg.Scoring.RegenerateOnLevelUp {
			s.items = s.spawnSet(s.run.Level)
		}
		s.spawnCarry = 0
	}
	return out
}

// spawnTimed adds one item per spawn delay while below the level's population
func (s *Session) spawnTimed() {
	if !s.cfg.Spawn.Timed {
		return
	}
	s.spawnCarry += s.tick
	delay := pacing.SpawnDelay(s.cfg.Difficulty, s.run.Level)
	if s.spawnCarry < delay {
		return
	}
	s.spawnCarry -= delay
	if len(s.items) < s.targetSize(s.run.Level) {
		s.addItem()
	}
}

// replenish tops the active set up to the floor immediately
func (s *Session) replenish() {
	for len(s.items) < s.spawner.Floor() {
		s.addItem()
	}
}

func (s *Session) notify(prev components.RunState, prevMult float64, out systems.ScoreOutcome) {
	cb := &s.deps.Callbacks
	if cb.OnSushiCaught != nil {
		for i := 0; i < out.Sushi; i++ {
			cb.OnSushiCaught()
		}
	}
	if cb.OnHazardHit != nil {
		for i := 0; i < out.Hazards; i++ {
			cb.OnHazardHit()
		}
	}
	if s.run.Score != prev.Score && cb.OnScoreUpdate != nil {
		cb.OnScoreUpdate(s.run.Score)
	}
	if s.run.Level != prev.Level && cb.OnLevelUpdate != nil {
		cb.OnLevelUpdate(s.run.Level)
	}
	if s.run.Lives != prev.Lives && cb.OnLivesUpdate != nil {
		cb.OnLivesUpdate(s.run.Lives)
	}
	if s.combo.Multiplier != prevMult && cb.OnComboUpdate != nil {
		cb.OnComboUpdate(s.combo.Multiplier)
	}
}

// Motion returns the active motion model
func (s *Session) Motion() systems.Motion { return s.motion }

// Items returns the active items; callers must not retain or modify the slice
func (s *Session) Items() []components.Item { return s.items }

// Kinds returns the effective kind table
func (s *Session) Kinds() []components.KindInfo { return s.spawner.Kinds() }

func (s *Session) Player() components.PlayerState { return s.player }

func (s *Session) Combo() components.ComboState { return s.combo }

func (s *Session) Run() components.RunState { return s.run }

// Over reports that lives ran out; the session keeps animating but catches nothing
func (s *Session) Over() bool { return s.over }

// SimTime returns simulated time since the session started
func (s *Session) SimTime() time.Duration { return s.simTime }

// Difficulty returns the difficulty the session was built with
func (s *Session) Difficulty() int { return s.cfg.Difficulty }
