package components

import "time"

// ComboState tracks consecutive catches; LastHit is simulation time
type ComboState struct {
	Multiplier float64
	Streak     int
	LastHit    time.Duration
	HasHit     bool // false until the first non-hazard catch of the session
}

// NewComboState returns a combo at rest
func NewComboState() ComboState {
	return ComboState{Multiplier: 1}
}

// Reset drops the streak and multiplier back to rest
func (c *ComboState) Reset() {
	c.Multiplier = 1
	c.Streak = 0
}
