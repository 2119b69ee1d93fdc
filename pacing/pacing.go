// Package pacing converts difficulty, level and score into game cadence
// and progress figures. All functions are pure.
package pacing

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/sushi-belt/constants"
	"github.com/lixenwraith/sushi-belt/vmath"
)

// DifficultyFactor returns the cadence multiplier for a difficulty ordinal
// Unknown ordinals fall back to normal pacing
func DifficultyFactor(difficulty int) float64 {
	if f, ok := constants.DifficultyMultiplier[difficulty]; ok {
		return f
	}
	return 1
}

// TickInterval returns the gameplay cadence; each level is 5% faster, floored at MinTickMs
func TickInterval(difficulty, level int) time.Duration {
	curve := math.Pow(constants.LevelSpeedCurve, float64(max(0, level-1)))
	ms := float64(constants.BaseTickMs) * DifficultyFactor(difficulty) * curve
	return time.Duration(max(constants.MinTickMs, int(math.Round(ms)))) * time.Millisecond
}

// SpawnDelay returns the timed spawn cadence, a little ahead of TickInterval
func SpawnDelay(difficulty, level int) time.Duration {
	tick := float64(TickInterval(difficulty, level) / time.Millisecond)
	ms := int(math.Round(tick * constants.SpawnDelayFactor))
	return time.Duration(max(constants.MinSpawnDelayMs, ms)) * time.Millisecond
}

// SpeedFactor scales per-tick motion relative to normal difficulty at level 1
// The fixed simulation tick never changes; only the distance covered per tick does
func SpeedFactor(difficulty, level int) float64 {
	return float64(constants.BaseTickMs) / float64(TickInterval(difficulty, level)/time.Millisecond)
}

// LevelThreshold returns the score at which level+1 begins
func LevelThreshold(level, scorePerLevel int) int {
	return level * scorePerLevel
}

// LevelForScore returns floor(score/scorePerLevel)+1
func LevelForScore(score, scorePerLevel int) int {
	if score < 0 || scorePerLevel <= 0 {
		return 1
	}
	return score/scorePerLevel + 1
}

// LevelProgressPct returns how far score is through the current level, in [0, 100]
func LevelProgressPct(score, level, scorePerLevel int) float64 {
	ceiling := LevelThreshold(level, scorePerLevel)
	floor := LevelThreshold(level-1, scorePerLevel)
	if score <= floor {
		return 0
	}
	span := max(1, ceiling-floor)
	return vmath.Clamp(float64(score-floor)/float64(span)*100, 0, 100)
}

// RollAccuracy returns base ± jitter, rounded and clamped to [AccuracyMin, AccuracyMax]
func RollAccuracy(rng *rand.Rand, base, jitter float64) float64 {
	n := base + (rng.Float64()*(jitter*2) - jitter)
	return math.Round(vmath.Clamp(n, constants.AccuracyMin, constants.AccuracyMax))
}

// FormatElapsed renders whole seconds as mm:ss
func FormatElapsed(d time.Duration) string {
	s := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
