package systems

import (
	"time"

	"github.com/lixenwraith/sushi-belt/components"
	"github.com/lixenwraith/sushi-belt/config"
	"github.com/lixenwraith/sushi-belt/vmath"
)

// ComboRules implements streak and multiplier bookkeeping; times are simulation time
type ComboRules struct {
	Window time.Duration
	Step   float64
	Cap    float64
}

// NewComboRules reads the combo window, step and cap from config
func NewComboRules(cfg *config.Config) ComboRules {
	return ComboRules{
		Window: cfg.ComboWindow(),
		Step:   cfg.Scoring.MultiplierStep,
		Cap:    cfg.Scoring.MultiplierCap,
	}
}

// Lapse resets the combo when the window since the last catch has run out
// Returns true if the combo was reset
func (r ComboRules) Lapse(c *components.ComboState, now time.Duration) bool {
	if !c.HasHit || c.Streak == 0 || now-c.LastHit < r.Window {
		return false
	}
	c.Reset()
	return true
}

// Hit records a non-hazard catch and returns the multiplier the catch is scored with
// The multiplier in force at the moment of the catch scores it; the update applies to the next catch
func (r ComboRules) Hit(c *components.ComboState, now time.Duration) float64 {
	used := vmath.Clamp(c.Multiplier, 1, r.Cap)

	if c.HasHit && now-c.LastHit < r.Window {
		c.Streak++
		c.Multiplier = vmath.Clamp(1+float64(c.Streak)*r.Step, 1, r.Cap)
	} else {
		c.Streak = 1
		c.Multiplier = 1
	}
	c.LastHit = now
	c.HasHit = true
	return used
}

// Hazard breaks the combo; the next catch starts a new streak
func (r ComboRules) Hazard(c *components.ComboState) {
	c.Reset()
	c.HasHit = false
}
