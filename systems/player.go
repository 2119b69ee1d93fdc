package systems

import (
	"github.com/lixenwraith/sushi-belt/components"
	"github.com/lixenwraith/sushi-belt/config"
	"github.com/lixenwraith/sushi-belt/vmath"
)

// Controls is the held-key snapshot read once per tick
type Controls struct {
	Left   bool
	Right  bool
	Extend bool
}

// PlayerController turns held controls into rotation and reach
// Steps are per-second rates multiplied by the fixed tick, so turn and reach speed do not depend on frame rate
type PlayerController struct {
	rotationStep float64
	growthStep   float64
	reachMax     float64
}

// NewPlayerController derives per-tick steps from config
func NewPlayerController(cfg *config.Config) *PlayerController {
	tick := cfg.FixedTick().Seconds()
	return &PlayerController{
		rotationStep: cfg.Reach.RotationPerSecond * cfg.Reach.RotationScale * tick,
		growthStep:   cfg.Reach.GrowthPerSecond * tick,
		reachMax:     cfg.Reach.Max,
	}
}

// RotationStep returns radians turned per tick
func (pc *PlayerController) RotationStep() float64 { return pc.rotationStep }

// GrowthStep returns reach growth per tick
func (pc *PlayerController) GrowthStep() float64 { return pc.growthStep }

// Update applies one tick of input
// Releasing extend retracts the reach to zero at once
func (pc *PlayerController) Update(p *components.PlayerState, in Controls) {
	if in.Left {
		p.FacingAngle -= pc.rotationStep
	}
	if in.Right {
		p.FacingAngle += pc.rotationStep
	}
	p.FacingAngle = vmath.WrapAngle(p.FacingAngle)

	if !in.Extend {
		p.ReachExtended = false
		p.ReachLength = 0
		return
	}
	p.ReachExtended = true
	p.ReachLength = min(pc.reachMax, p.ReachLength+pc.growthStep)
}
