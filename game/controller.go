// Package game is the collaborator around the tick driver: it holds the
// play/pause flag, the chosen difficulty and the run statistics that
// outlive a single session, and reacts to the session's callbacks.
package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/sushi-belt/components"
	"github.com/lixenwraith/sushi-belt/config"
	"github.com/lixenwraith/sushi-belt/constants"
	"github.com/lixenwraith/sushi-belt/engine"
	"github.com/lixenwraith/sushi-belt/status"
)

// SoundPlayer receives gameplay cues; implementations must not block
type SoundPlayer interface {
	PlayCatch(multiplier float64)
	PlayHazard()
	PlayLevelUp()
	PlayGameOver()
}

// KeyReleaser drops held controls when play stops
type KeyReleaser interface {
	Clear()
}

// Deps are the collaborators the controller wires into each session
type Deps struct {
	Scheduler engine.Scheduler
	Renderer  engine.Renderer
	Controls  engine.ControlSource
	Keys      KeyReleaser
	Clock     engine.Clock
	Sounds    SoundPlayer
	Status    *status.Registry
}

// Controller owns the play state and the driver
type Controller struct {
	cfg  *config.Config
	deps Deps
	rng  *rand.Rand

	driver *engine.Driver

	stats      components.RunState
	difficulty int
	started    bool
	gameOver   bool
}

// NewController creates a controller with fresh stats; play does not start until Toggle
func NewController(cfg *config.Config, deps Deps) *Controller {
	if deps.Status == nil {
		deps.Status = status.NewRegistry()
	}
	if deps.Clock == nil {
		deps.Clock = engine.NewTimeProvider()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Controller{
		cfg:        cfg,
		deps:       deps,
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: cfg.Difficulty,
	}
	c.stats = c.freshStats()
	c.driver = engine.NewDriver(cfg, deps.Scheduler, deps.Renderer, c.newSession, deps.Status)
	c.driver.OnStop = c.onStop
	return c
}

func (c *Controller) freshStats() components.RunState {
	return components.RunState{
		Level:    constants.StartLevel,
		Lives:    c.cfg.Scoring.StartLives,
		Accuracy: constants.AccuracyBase,
	}
}

func (c *Controller) newSession() (*engine.Session, error) {
	cfg := c.cfg.Clone()
	cfg.Difficulty = c.difficulty
	return engine.NewSession(cfg, c.stats, engine.SessionDeps{
		Controls:  c.deps.Controls,
		Clock:     c.deps.Clock,
		Rng:       c.rng,
		Status:    c.deps.Status,
		Callbacks: c.callbacks(),
	})
}

func (c *Controller) callbacks() engine.Callbacks {
	return engine.Callbacks{
		OnScoreUpdate: func(score int) { c.stats.Score = score },
		OnLevelUpdate: func(level int) {
			c.stats.Level = level
			log.Printf("[Game] level up: %d", level)
			if c.deps.Sounds != nil {
				c.deps.Sounds.PlayLevelUp()
			}
		},
		OnLivesUpdate: func(lives int) { c.stats.Lives = lives },
		OnSushiCaught: func() {
			c.stats.SushiCaught++
			if c.deps.Sounds != nil {
				mult := 1.0
				if s := c.driver.Session(); s != nil {
					mult = s.Combo().Multiplier
				}
				c.deps.Sounds.PlayCatch(mult)
			}
		},
		OnHazardHit: func() {
			if c.deps.Sounds != nil {
				c.deps.Sounds.PlayHazard()
			}
		},
	}
}

// onStop keeps the final session's stats so a resumed play continues from them
func (c *Controller) onStop(reason engine.StopReason) {
	if s := c.driver.Session(); s != nil {
		c.stats = s.Run()
	}
	if c.deps.Keys != nil {
		c.deps.Keys.Clear()
	}
	if reason == engine.StopGameOver {
		c.gameOver = true
		log.Printf("[Game] game over: score=%d level=%d caught=%d", c.stats.Score, c.stats.Level, c.stats.SushiCaught)
		if c.deps.Sounds != nil {
			c.deps.Sounds.PlayGameOver()
		}
	}
}

// Driver returns the tick driver
func (c *Controller) Driver() *engine.Driver { return c.driver }

// Playing reports whether a session is running
func (c *Controller) Playing() bool { return c.driver.State() == engine.DriverRunning }

// Toggle pauses a running game or starts one; a finished game restarts
func (c *Controller) Toggle() error {
	if c.Playing() {
		c.driver.Stop()
		return nil
	}
	if c.gameOver {
		return c.Restart()
	}
	c.started = true
	return c.driver.Start()
}

// Restart discards the current run and starts a new one
func (c *Controller) Restart() error {
	c.driver.Stop()
	c.stats = c.freshStats()
	c.gameOver = false
	c.started = true
	return c.driver.Start()
}

// SetDifficulty changes difficulty between plays; returns false while playing or when out of range
func (c *Controller) SetDifficulty(d int) bool {
	if c.Playing() {
		return false
	}
	if _, ok := constants.DifficultyMultiplier[d]; !ok {
		return false
	}
	c.difficulty = d
	return true
}

// Difficulty returns the difficulty the next session uses
func (c *Controller) Difficulty() int { return c.difficulty }

// GameOver reports that the last run ended by losing all lives
func (c *Controller) GameOver() bool { return c.gameOver }

// Stats returns the live run stats, from the session while one is running
func (c *Controller) Stats() components.RunState {
	if s := c.driver.Session(); s != nil {
		return s.Run()
	}
	return c.stats
}

// Started reports whether any play has begun since launch
func (c *Controller) Started() bool { return c.started }
