package constants

import (
	"math"
	"time"
)

// Run defaults
const (
	// StartLives is the number of hazard hits a run survives
	StartLives = 3

	// StartLevel is the level a fresh run begins on
	StartLevel = 1

	// ScorePerLevel is the score span of one level
	ScorePerLevel = 500
)

// Combo
const (
	// ComboWindow is the span after a catch in which the next catch extends the streak
	ComboWindow = 1000 * time.Millisecond

	// ComboMultiplierStep is added to the multiplier per streak step
	ComboMultiplierStep = 0.5

	// ComboMultiplierCap bounds the multiplier
	ComboMultiplierCap = 4.0

	// HazardPenalty is added to the score on a hazard catch (zero or negative)
	HazardPenalty = 0
)

// Accuracy roll (cosmetic, rerolled on every catch)
const (
	AccuracyBase   = 95.0
	AccuracyJitter = 5.0
	AccuracyMin    = 70.0
	AccuracyMax    = 100.0
)

// Reach
const (
	// ReachTolerance widens every item's catch radius
	ReachTolerance = 5.0

	// ReachMax is the longest the reach can extend, in world units
	ReachMax = 480.0

	// ReachGrowthPerSecond is the reach extension rate
	ReachGrowthPerSecond = 1400.0

	// RotationPerSecond is the unscaled turn rate in radians
	RotationPerSecond = 2 * math.Pi
)

// World geometry (world units; the terminal view scales this down)
const (
	BoardTileSize = 100.0
	BoardCols     = 10
	BoardRows     = 10

	// PathStep is the distance between consecutive loop path points
	PathStep = 5.0

	// BeltItemCount is the number of items laid on a fresh belt
	BeltItemCount = 15

	// BeltSpeed is the base number of path points advanced per tick
	BeltSpeed = 2.0

	// BeltTileInset moves items from the tile corner to the tile center
	BeltTileInset = BoardTileSize / 2
)

// Orbit motion
const (
	OrbitRadiusMin = 180.0
	OrbitRadiusMax = 420.0

	// OrbitBaseSpeed is radians per tick at level 0
	OrbitBaseSpeed = 0.012

	// OrbitSpeedPerLevel is added per level
	OrbitSpeedPerLevel = 0.002
)

// Items
const (
	ItemSizeMin = 18.0
	ItemSizeMax = 30.0

	// SpawnBase, SpawnPerLevel and SpawnCap size a level's item set
	SpawnBase     = 6
	SpawnPerLevel = 2
	SpawnCap      = 24

	// SpawnFloor triggers immediate replenishment
	SpawnFloor = 5

	// WeightTolerance is the allowed deviation of a weight table sum from 1
	WeightTolerance = 1e-9
)
