// Package config holds the tunable game parameters. Defaults come from the
// constants package; a TOML file and command-line flags may override them.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sushi-belt/constants"
)

// Motion model names
const (
	MotionBelt  = "belt"
	MotionOrbit = "orbit"
)

// Config is the complete set of game tunables
type Config struct {
	Difficulty int    `toml:"difficulty"`
	Motion     string `toml:"motion"`
	Seed       int64  `toml:"seed"` // 0 = seed from clock
	Debug      bool   `toml:"debug"`

	Loop    LoopConfig            `toml:"loop"`
	Scoring ScoringConfig         `toml:"scoring"`
	Reach   ReachConfig           `toml:"reach"`
	Spawn   SpawnConfig           `toml:"spawn"`
	Belt    BeltConfig            `toml:"belt"`
	Input   InputConfig           `toml:"input"`
	Audio   AudioConfig           `toml:"audio"`
	Asset   AssetConfig           `toml:"asset"`
	Kinds   map[string]KindConfig `toml:"kinds"`
	Keys    map[string]string     `toml:"keys"` // key name -> action name
}

// LoopConfig controls the frame and tick driver
type LoopConfig struct {
	FixedTickMs      int `toml:"fixed_tick_ms"`
	FrameMs          int `toml:"frame_ms"`
	MaxTicksPerFrame int `toml:"max_ticks_per_frame"`
	GraceDelayMs     int `toml:"grace_delay_ms"`
}

// ScoringConfig controls points, lives, combo and levels
type ScoringConfig struct {
	ScorePerLevel       int     `toml:"score_per_level"`
	StartLives          int     `toml:"start_lives"`
	ComboWindowMs       int     `toml:"combo_window_ms"`
	MultiplierStep      float64 `toml:"multiplier_step"`
	MultiplierCap       float64 `toml:"multiplier_cap"`
	HazardPenalty       int     `toml:"hazard_penalty"`
	RegenerateOnLevelUp bool    `toml:"regenerate_on_level_up"`
}

// ReachConfig controls the player's rotation and reach
type ReachConfig struct {
	Tolerance         float64 `toml:"tolerance"`
	Max               float64 `toml:"max"`
	GrowthPerSecond   float64 `toml:"growth_per_second"`
	RotationPerSecond float64 `toml:"rotation_per_second"`
	RotationScale     float64 `toml:"rotation_scale"`
}

// SpawnConfig controls item creation
type SpawnConfig struct {
	Base          int     `toml:"base"`
	PerLevel      int     `toml:"per_level"`
	Cap           int     `toml:"cap"`
	Floor         int     `toml:"floor"`
	SizeMin       float64 `toml:"size_min"`
	SizeMax       float64 `toml:"size_max"`
	RadiusMin     float64 `toml:"radius_min"`
	RadiusMax     float64 `toml:"radius_max"`
	SpeedBase     float64 `toml:"speed_base"`
	SpeedPerLevel float64 `toml:"speed_per_level"`
	Timed         bool    `toml:"timed"`
}

// BeltConfig controls the conveyor loop
type BeltConfig struct {
	TileSize  float64 `toml:"tile_size"`
	Cols      int     `toml:"cols"`
	Rows      int     `toml:"rows"`
	ItemCount int     `toml:"item_count"`
	Speed     float64 `toml:"speed"`
}

// InputConfig controls how long a key counts as held after its last press or repeat
type InputConfig struct {
	RotateHoldMs int `toml:"rotate_hold_ms"`
	ReachHoldMs  int `toml:"reach_hold_ms"`
}

// AudioConfig controls sound output
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// AssetConfig locates external assets; empty sprite path uses the embedded icon
type AssetConfig struct {
	HazardSprite string `toml:"hazard_sprite"`
}

// KindConfig overrides an item kind's spawn weight and point value
type KindConfig struct {
	Weight *float64 `toml:"weight"`
	Value  *int     `toml:"value"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Difficulty: constants.DifficultyNormal,
		Motion:     MotionBelt,
		Loop: LoopConfig{
			FixedTickMs:      int(constants.FixedTick / time.Millisecond),
			FrameMs:          int(constants.FrameUpdateInterval / time.Millisecond),
			MaxTicksPerFrame: constants.MaxTicksPerFrame,
			GraceDelayMs:     int(constants.GraceDelay / time.Millisecond),
		},
		Scoring: ScoringConfig{
			ScorePerLevel:       constants.ScorePerLevel,
			StartLives:          constants.StartLives,
			ComboWindowMs:       int(constants.ComboWindow / time.Millisecond),
			MultiplierStep:      constants.ComboMultiplierStep,
			MultiplierCap:       constants.ComboMultiplierCap,
			HazardPenalty:       constants.HazardPenalty,
			RegenerateOnLevelUp: true,
		},
		Reach: ReachConfig{
			Tolerance:         constants.ReachTolerance,
			Max:               constants.ReachMax,
			GrowthPerSecond:   constants.ReachGrowthPerSecond,
			RotationPerSecond: constants.RotationPerSecond,
			RotationScale:     constants.RotationScale,
		},
		Spawn: SpawnConfig{
			Base:          constants.SpawnBase,
			PerLevel:      constants.SpawnPerLevel,
			Cap:           constants.SpawnCap,
			Floor:         constants.SpawnFloor,
			SizeMin:       constants.ItemSizeMin,
			SizeMax:       constants.ItemSizeMax,
			RadiusMin:     constants.OrbitRadiusMin,
			RadiusMax:     constants.OrbitRadiusMax,
			SpeedBase:     constants.OrbitBaseSpeed,
			SpeedPerLevel: constants.OrbitSpeedPerLevel,
			Timed:         true,
		},
		Belt: BeltConfig{
			TileSize:  constants.BoardTileSize,
			Cols:      constants.BoardCols,
			Rows:      constants.BoardRows,
			ItemCount: constants.BeltItemCount,
			Speed:     constants.BeltSpeed,
		},
		Input: InputConfig{
			RotateHoldMs: 160,
			ReachHoldMs:  450,
		},
		Audio: AudioConfig{Enabled: true},
	}
}

// Load reads a TOML file over the defaults and validates the result
// Keys absent from the file keep their default values
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	if _, ok := constants.DifficultyMultiplier[c.Difficulty]; !ok {
		return errors.Errorf("difficulty %d out of range 1-3", c.Difficulty)
	}
	if c.Motion != MotionBelt && c.Motion != MotionOrbit {
		return errors.Errorf("motion %q must be %q or %q", c.Motion, MotionBelt, MotionOrbit)
	}
	if c.Loop.FixedTickMs <= 0 || c.Loop.FrameMs <= 0 {
		return errors.New("loop intervals must be positive")
	}
	if c.Loop.MaxTicksPerFrame < 1 {
		return errors.New("loop.max_ticks_per_frame must be at least 1")
	}
	if c.Loop.GraceDelayMs < 0 {
		return errors.New("loop.grace_delay_ms must not be negative")
	}
	if c.Scoring.ScorePerLevel <= 0 {
		return errors.New("scoring.score_per_level must be positive")
	}
	if c.Scoring.StartLives < 1 {
		return errors.New("scoring.start_lives must be at least 1")
	}
	if c.Scoring.MultiplierCap < 1 || c.Scoring.MultiplierStep < 0 {
		return errors.New("scoring multiplier cap must be >= 1 and step >= 0")
	}
	if c.Scoring.HazardPenalty > 0 {
		return errors.New("scoring.hazard_penalty must be zero or negative")
	}
	if c.Reach.Max <= 0 || c.Reach.GrowthPerSecond <= 0 || c.Reach.Tolerance < 0 {
		return errors.New("reach max and growth must be positive, tolerance non-negative")
	}
	if c.Spawn.Base < 1 || c.Spawn.Cap < c.Spawn.Base || c.Spawn.Floor < 0 || c.Spawn.PerLevel < 0 {
		return errors.New("spawn counts must satisfy 1 <= base <= cap, floor >= 0, per_level >= 0")
	}
	if c.Spawn.SizeMin <= 0 || c.Spawn.SizeMax < c.Spawn.SizeMin {
		return errors.New("spawn size band must be positive and ordered")
	}
	if c.Spawn.RadiusMin <= 0 || c.Spawn.RadiusMax < c.Spawn.RadiusMin {
		return errors.New("spawn radius band must be positive and ordered")
	}
	if c.Spawn.SpeedBase <= 0 || c.Spawn.SpeedPerLevel < 0 {
		return errors.New("spawn speed base must be positive")
	}
	if c.Belt.TileSize <= 0 || c.Belt.Cols < 3 || c.Belt.Rows < 3 || c.Belt.ItemCount < 1 || c.Belt.Speed <= 0 {
		return errors.New("belt needs tile_size > 0, at least 3x3 tiles, items >= 1, speed > 0")
	}
	if c.Input.RotateHoldMs <= 0 || c.Input.ReachHoldMs <= 0 {
		return errors.New("input hold windows must be positive")
	}
	for name, k := range c.Kinds {
		if k.Weight != nil && *k.Weight < 0 {
			return errors.Errorf("kinds.%s.weight must not be negative", name)
		}
		if k.Value != nil && *k.Value < 0 {
			return errors.Errorf("kinds.%s.value must not be negative", name)
		}
	}
	return nil
}

// FixedTick returns the simulation step
func (c *Config) FixedTick() time.Duration {
	return time.Duration(c.Loop.FixedTickMs) * time.Millisecond
}

// FrameInterval returns the render frame interval
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Loop.FrameMs) * time.Millisecond
}

// GraceDelay returns the delay between the last life lost and stopping play
func (c *Config) GraceDelay() time.Duration {
	return time.Duration(c.Loop.GraceDelayMs) * time.Millisecond
}

// ComboWindow returns the combo window
func (c *Config) ComboWindow() time.Duration {
	return time.Duration(c.Scoring.ComboWindowMs) * time.Millisecond
}

// RotateHold returns how long a rotation key stays held without a repeat
func (c *Config) RotateHold() time.Duration {
	return time.Duration(c.Input.RotateHoldMs) * time.Millisecond
}

// ReachHold returns how long the reach key stays held without a repeat
func (c *Config) ReachHold() time.Duration {
	return time.Duration(c.Input.ReachHoldMs) * time.Millisecond
}

// Clone returns a deep copy so a session can own its configuration
func (c *Config) Clone() *Config {
	cp := *c
	if c.Kinds != nil {
		cp.Kinds = make(map[string]KindConfig, len(c.Kinds))
		for k, v := range c.Kinds {
			cp.Kinds[k] = v
		}
	}
	if c.Keys != nil {
		cp.Keys = make(map[string]string, len(c.Keys))
		for k, v := range c.Keys {
			cp.Keys[k] = v
		}
	}
	return &cp
}
