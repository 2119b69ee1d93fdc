package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FixedTick is the simulation step; belt and orbit motion only advance on these
	FixedTick = 30 * time.Millisecond

	// MaxTicksPerFrame caps catch-up after a stalled frame (e.g. terminal suspended)
	MaxTicksPerFrame = 50

	// GraceDelay is how long play keeps running after the last life is lost
	GraceDelay = 1000 * time.Millisecond

	// EventChannelSize is the buffer between the terminal poller and the main loop
	EventChannelSize = 256
)

// Pacing curve
const (
	// BaseTickMs is the gameplay cadence at normal difficulty, level 1
	BaseTickMs = 1600

	// MinTickMs keeps the cadence readable at high levels
	MinTickMs = 550

	// BaseSpawnDelayMs is the timed spawn cadence at normal difficulty, level 1
	BaseSpawnDelayMs = 1500

	// MinSpawnDelayMs floors the spawn cadence
	MinSpawnDelayMs = 500

	// SpawnDelayFactor keeps spawns slightly ahead of the cadence
	SpawnDelayFactor = 0.95

	// LevelSpeedCurve is the per-level cadence factor (5% faster per level)
	LevelSpeedCurve = 0.95

	// RotationScale damps the player's rotation rate
	RotationScale = 0.5
)

// Difficulty ordinals
const (
	DifficultyEasy   = 1
	DifficultyNormal = 2
	DifficultyHard   = 3
)

// DifficultyMultiplier maps difficulty to cadence factor (lower = faster)
var DifficultyMultiplier = map[int]float64{
	DifficultyEasy:   1.15,
	DifficultyNormal: 1.0,
	DifficultyHard:   0.85,
}
