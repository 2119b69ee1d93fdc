package systems

import (
	"math"
	"testing"

	"github.com/lixenwraith/sushi-belt/components"
	"github.com/lixenwraith/sushi-belt/config"
	"github.com/lixenwraith/sushi-belt/vmath"
)

func TestPlayerRotation(t *testing.T) {
	pc := NewPlayerController(config.Default())
	step := pc.RotationStep()

	tests := []struct {
		name string
		in   Controls
		want float64
	}{
		{"right", Controls{Right: true}, 1 + step},
		{"left", Controls{Left: true}, 1 - step},
		{"both cancel", Controls{Left: true, Right: true}, 1},
		{"none", Controls{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := components.PlayerState{FacingAngle: 1}
			pc.Update(&p, tt.in)
			if math.Abs(p.FacingAngle-tt.want) > 1e-12 {
				t.Errorf("FacingAngle = %v, want %v", p.FacingAngle, tt.want)
			}
		})
	}
}

func TestPlayerRotationWraps(t *testing.T) {
	pc := NewPlayerController(config.Default())
	p := components.PlayerState{}
	pc.Update(&p, Controls{Left: true})
	if p.FacingAngle < 0 || p.FacingAngle >= vmath.TwoPi {
		t.Fatalf("FacingAngle %v outside [0, 2π)", p.FacingAngle)
	}
	if math.Abs(p.FacingAngle-(vmath.TwoPi-pc.RotationStep())) > 1e-12 {
		t.Errorf("Expected wrap to 2π - step, got %v", p.FacingAngle)
	}
}

func TestReachGrowsToMaxAndRetracts(t *testing.T) {
	cfg := config.Default()
	pc := NewPlayerController(cfg)
	p := components.PlayerState{}

	pc.Update(&p, Controls{Extend: true})
	if !p.ReachExtended || p.ReachLength != pc.GrowthStep() {
		t.Fatalf("After one tick: extended=%v length=%v, want true %v", p.ReachExtended, p.ReachLength, pc.GrowthStep())
	}

	for i := 0; i < 100; i++ {
		pc.Update(&p, Controls{Extend: true})
	}
	if p.ReachLength != cfg.Reach.Max {
		t.Errorf("Expected reach capped at %v, got %v", cfg.Reach.Max, p.ReachLength)
	}

	pc.Update(&p, Controls{})
	if p.ReachExtended || p.ReachLength != 0 {
		t.Errorf("Expected full retract on release, got extended=%v length=%v", p.ReachExtended, p.ReachLength)
	}
}

func TestPlayerStepsScaleWithTick(t *testing.T) {
	a := config.Default()
	b := config.Default()
	b.Loop.FixedTickMs = a.Loop.FixedTickMs * 2

	pa, pb := NewPlayerController(a), NewPlayerController(b)
	if math.Abs(pb.RotationStep()-2*pa.RotationStep()) > 1e-12 {
		t.Errorf("Rotation step should double with tick: %v vs %v", pa.RotationStep(), pb.RotationStep())
	}
	if math.Abs(pb.GrowthStep()-2*pa.GrowthStep()) > 1e-9 {
		t.Errorf("Growth step should double with tick: %v vs %v", pa.GrowthStep(), pb.GrowthStep())
	}
}
