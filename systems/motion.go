package systems

import (
	"github.com/lixenwraith/sushi-belt/components"
	"github.com/lixenwraith/sushi-belt/config"
	"github.com/lixenwraith/sushi-belt/constants"
	"github.com/lixenwraith/sushi-belt/pacing"
	"github.com/lixenwraith/sushi-belt/vmath"
)

// Motion advances items one fixed tick and maps them to world positions
// A session runs exactly one motion model
type Motion interface {
	Name() string
	// Origin is where the player stands
	Origin() vmath.Vec2
	// Bounds is the world size the view must fit
	Bounds() vmath.Vec2
	Advance(items []components.Item)
	Position(it *components.Item) vmath.Vec2
	// Place positions a new item relative to the items already active
	Place(it *components.Item, active []components.Item)
	// SetLevel re-derives level-dependent speed
	SetLevel(difficulty, level int)
}

// BeltMotion moves every item the same distance along a closed loop
type BeltMotion struct {
	Board     *components.BoardState
	baseSpeed float64
}

// NewBeltMotion builds the conveyor board from config
func NewBeltMotion(cfg *config.Config) *BeltMotion {
	b := cfg.Belt
	return &BeltMotion{
		Board:     components.NewBoard(b.TileSize, constants.PathStep, b.Cols, b.Rows, b.Speed),
		baseSpeed: b.Speed,
	}
}

func (m *BeltMotion) Name() string { return config.MotionBelt }

func (m *BeltMotion) Origin() vmath.Vec2 { return m.Board.Center() }

func (m *BeltMotion) Bounds() vmath.Vec2 {
	return vmath.Vec2{X: m.Board.Width(), Y: m.Board.Height()}
}

// Advance applies offset = (offset + beltSpeed) mod pathLength
func (m *BeltMotion) Advance(items []components.Item) {
	period := m.Board.Period()
	if period == 0 {
		return
	}
	for i := range items {
		items[i].PathOffset = vmath.Wrap(items[i].PathOffset+m.Board.SpeedPx, period)
	}
}

func (m *BeltMotion) Position(it *components.Item) vmath.Vec2 {
	return m.Board.PointAt(it.PathOffset)
}

// Place drops the item into the middle of the widest gap on the belt
func (m *BeltMotion) Place(it *components.Item, active []components.Item) {
	offsets := make([]float64, len(active))
	for i := range active {
		offsets[i] = active[i].PathOffset
	}
	it.PathOffset = LargestGapMidpoint(offsets, m.Board.Period())
}

// Layout spreads a whole item set evenly around the loop
func (m *BeltMotion) Layout(items []components.Item) {
	offsets := m.Board.EvenOffsets(len(items))
	for i := range items {
		items[i].PathOffset = offsets[i]
	}
}

// SetLevel scales the belt speed by the pacing curve
func (m *BeltMotion) SetLevel(difficulty, level int) {
	m.Board.SpeedPx = m.baseSpeed * pacing.SpeedFactor(difficulty, level)
}

// OrbitMotion spins each item around the center at its own angular speed
type OrbitMotion struct {
	center vmath.Vec2
	bounds vmath.Vec2
}

// NewOrbitMotion centers the orbit in a square large enough for the widest radius
func NewOrbitMotion(cfg *config.Config) *OrbitMotion {
	side := 2 * (cfg.Spawn.RadiusMax + cfg.Spawn.SizeMax)
	return &OrbitMotion{
		center: vmath.Vec2{X: side / 2, Y: side / 2},
		bounds: vmath.Vec2{X: side, Y: side},
	}
}

func (m *OrbitMotion) Name() string { return config.MotionOrbit }

func (m *OrbitMotion) Origin() vmath.Vec2 { return m.center }

func (m *OrbitMotion) Bounds() vmath.Vec2 { return m.bounds }

// Advance applies angle = (angle + speed) mod 2π per item
func (m *OrbitMotion) Advance(items []components.Item) {
	for i := range items {
		items[i].Angle = vmath.WrapAngle(items[i].Angle + items[i].Speed)
	}
}

func (m *OrbitMotion) Position(it *components.Item) vmath.Vec2 {
	return vmath.Polar(m.center, it.Angle, it.Radius)
}

// Place keeps the spawner's random angle and radius
func (m *OrbitMotion) Place(*components.Item, []components.Item) {}

// SetLevel is a no-op; orbit speed is fixed per item at creation
func (m *OrbitMotion) SetLevel(int, int) {}

// NewMotion returns the model named in config
func NewMotion(cfg *config.Config) Motion {
	if cfg.Motion == config.MotionOrbit {
		return NewOrbitMotion(cfg)
	}
	return NewBeltMotion(cfg)
}
