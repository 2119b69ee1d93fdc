package systems

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/sushi-belt/components"
	"github.com/lixenwraith/sushi-belt/config"
	"github.com/lixenwraith/sushi-belt/constants"
	"github.com/lixenwraith/sushi-belt/pacing"
	"github.com/lixenwraith/sushi-belt/vmath"
)

// ReachEndpoint returns origin + length·(cos, sin)(facing)
func ReachEndpoint(origin vmath.Vec2, p *components.PlayerState) vmath.Vec2 {
	return vmath.Polar(origin, p.FacingAngle, p.ReachLength)
}

// IsCaught reports distance < size + tolerance; the boundary itself is a miss
func IsCaught(tip, pos vmath.Vec2, size, tolerance float64) bool {
	return vmath.Dist(tip, pos) < size+tolerance
}

// CollisionSystem finds every item touched by the reach tip in a tick
type CollisionSystem struct {
	tolerance float64
}

// NewCollisionSystem reads the reach tolerance from config
func NewCollisionSystem(cfg *config.Config) *CollisionSystem {
	return &CollisionSystem{tolerance: cfg.Reach.Tolerance}
}

// Scan removes caught items from items and returns them, preserving order of the rest
// A retracted reach or empty item set catches nothing
func (cs *CollisionSystem) Scan(motion Motion, p *components.PlayerState, items []components.Item) (kept, caught []components.Item) {
	if !p.ReachExtended || len(items) == 0 {
		return items, nil
	}
	tip := ReachEndpoint(motion.Origin(), p)

	kept = items[:0]
	for i := range items {
		if IsCaught(tip, motion.Position(&items[i]), items[i].Size, cs.tolerance) {
			caught = append(caught, items[i])
			continue
		}
		kept = append(kept, items[i])
	}
	return kept, caught
}

// ScoreOutcome summarizes what a tick's catches did to the run
type ScoreOutcome struct {
	Points     int // net score change, penalties included
	Sushi      int // non-hazard items caught
	Hazards    int // hazard items caught
	BestCombo  float64
	LevelUp    bool
	PrevLevel  int
	ComboReset bool
}

// ScoringEngine applies caught items to run and combo state
type ScoringEngine struct {
	combo         ComboRules
	scorePerLevel int
	hazardPenalty int
	rng           *rand.Rand
}

// NewScoringEngine reads scoring rules from config; rng drives the accuracy roll
func NewScoringEngine(cfg *config.Config, rng *rand.Rand) *ScoringEngine {
	return &ScoringEngine{
		combo:         NewComboRules(cfg),
		scorePerLevel: cfg.Scoring.ScorePerLevel,
		hazardPenalty: cfg.Scoring.HazardPenalty,
		rng:           rng,
	}
}

// Combo returns the combo rules in use
func (se *ScoringEngine) Combo() ComboRules { return se.combo }

// Apply scores caught items in order at simulation time now
// Several catches in one tick chain the combo, since each sees zero time since the previous
func (se *ScoringEngine) Apply(run *components.RunState, combo *components.ComboState, caught []components.Item, now time.Duration) ScoreOutcome {
	out := ScoreOutcome{PrevLevel: run.Level, BestCombo: combo.Multiplier}
	startScore := run.Score

	for i := range caught {
		it := &caught[i]
		if it.Hazard {
			run.Lives = max(0, run.Lives-1)
			run.Score = max(0, run.Score+se.hazardPenalty)
			se.combo.Hazard(combo)
			out.Hazards++
			out.ComboReset = true
			continue
		}

		mult := se.combo.Hit(combo, now)
		run.Score += PointsFor(it.Value, mult)
		run.SushiCaught++
		run.Accuracy = pacing.RollAccuracy(se.rng, constants.AccuracyBase, constants.AccuracyJitter)
		out.Sushi++
		out.BestCombo = max(out.BestCombo, combo.Multiplier)
	}
	out.Points = run.Score - startScore

	if lvl := pacing.LevelForScore(run.Score, se.scorePerLevel); lvl > run.Level {
		run.Level = lvl
		out.LevelUp = true
	}
	return out
}

// PointsFor returns value × multiplier, the award for a single catch
func PointsFor(value int, multiplier float64) int {
	return int(float64(value) * multiplier)
}
