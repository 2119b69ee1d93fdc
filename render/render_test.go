package render

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sushi-belt/asset"
	"github.com/lixenwraith/sushi-belt/components"
	"github.com/lixenwraith/sushi-belt/config"
	"github.com/lixenwraith/sushi-belt/constants"
	"github.com/lixenwraith/sushi-belt/engine"
	"github.com/lixenwraith/sushi-belt/status"
	"github.com/lixenwraith/sushi-belt/systems"
	"github.com/lixenwraith/sushi-belt/vmath"
)

// gridCanvas records the last rune written to each cell
type gridCanvas struct {
	w, h  int
	cells map[[2]int]rune
	shows int
}

func newGrid(w, h int) *gridCanvas {
	return &gridCanvas{w: w, h: h, cells: make(map[[2]int]rune)}
}

func (g *gridCanvas) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[[2]int{x, y}] = r
}

func (g *gridCanvas) Size() (int, int) { return g.w, g.h }
func (g *gridCanvas) Clear()           { g.cells = make(map[[2]int]rune) }
func (g *gridCanvas) Show()            { g.shows++ }

func (g *gridCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < g.w; x++ {
		r, ok := g.cells[[2]int{x, y}]
		if !ok || r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (g *gridCanvas) count(r rune) int {
	n := 0
	for _, c := range g.cells {
		if c == r {
			n++
		}
	}
	return n
}

func newSession(t *testing.T, cfg *config.Config, run components.RunState) *engine.Session {
	t.Helper()
	s, err := engine.NewSession(cfg, run, engine.SessionDeps{
		Clock: engine.NewMockTimeProvider(time.Unix(0, 0)),
		Rng:   rand.New(rand.NewSource(3)),
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestFitPreservesAspect(t *testing.T) {
	vp := Fit(vmath.Vec2{X: 100, Y: 100}, 80, 20, 2)
	// Rows limit: 20 rows · 2 = 40 columns worth of height
	if vp.W != 40 || vp.H != 20 {
		t.Fatalf("Viewport %dx%d, want 40x20", vp.W, vp.H)
	}
	if vp.X != 20 || vp.Y != 2 {
		t.Errorf("Origin (%d,%d), want (20,2)", vp.X, vp.Y)
	}
	x, y := vp.Cell(vmath.Vec2{X: 50, Y: 50})
	if x != 40 || y != 12 {
		t.Errorf("Center maps to (%d,%d), want (40,12)", x, y)
	}
	cols, rows := vp.Span(10)
	if cols != 4 || rows != 2 {
		t.Errorf("Span = %dx%d, want 4x2", cols, rows)
	}
}

func TestFitDegenerate(t *testing.T) {
	vp := Fit(vmath.Vec2{}, 80, 20, 2)
	if vp.Scale != 0 || vp.Y != 2 {
		t.Errorf("Expected empty viewport, got %+v", vp)
	}
	if c, r := vp.Span(10); c != 1 || r != 1 {
		t.Errorf("Span must be at least one cell, got %dx%d", c, r)
	}
}

func TestReady(t *testing.T) {
	if NewRenderer(nil, nil, config.Default()).Ready() {
		t.Error("Nil canvas must not be ready")
	}
	if NewRenderer(newGrid(80, constants.HUDHeight), nil, config.Default()).Ready() {
		t.Error("A canvas with only HUD rows must not be ready")
	}
	if !NewRenderer(newGrid(80, 24), nil, config.Default()).Ready() {
		t.Error("Expected ready")
	}
}

func TestRenderBelt(t *testing.T) {
	cfg := config.Default()
	g := newGrid(120, 40)
	r := NewRenderer(g, nil, cfg)
	s := newSession(t, cfg, components.RunState{Score: 120, Level: 1, Lives: 2})

	r.Render(s)
	if g.shows != 1 {
		t.Fatalf("Expected one Show, got %d", g.shows)
	}
	if g.count(constants.GlyphPlayer) != 1 {
		t.Error("Expected the player glyph once")
	}
	if g.count(constants.GlyphBelt) == 0 {
		t.Error("Expected the belt path")
	}
	hud := g.row(0)
	if !strings.Contains(hud, "score 120") || !strings.Contains(hud, "lvl 1") {
		t.Errorf("HUD = %q", hud)
	}
	if strings.Count(hud, string(constants.GlyphLife)) != 2 || strings.Count(hud, string(constants.GlyphLifeLost)) != 1 {
		t.Errorf("Expected 2 of 3 lives, HUD = %q", hud)
	}
	if !strings.Contains(g.row(1), "24%") {
		t.Errorf("Progress row = %q", g.row(1))
	}
}

func TestBeltCorners(t *testing.T) {
	cfg := config.Default()
	g := newGrid(120, 40)
	r := NewRenderer(g, nil, cfg)
	board := components.NewBoard(cfg.Belt.TileSize, constants.PathStep, cfg.Belt.Cols, cfg.Belt.Rows, 1)
	vp := r.playfield(vmath.Vec2{X: board.Width(), Y: board.Height()})

	r.drawBelt(vp, board)
	if got := g.count(constants.GlyphBeltCorner); got != 4 {
		t.Errorf("Expected 4 belt corners, got %d", got)
	}
}

func TestRenderOrbitWithReach(t *testing.T) {
	cfg := config.Default()
	cfg.Motion = config.MotionOrbit
	g := newGrid(100, 40)
	r := NewRenderer(g, nil, cfg)

	ctl := holdExtend{}
	s, err := engine.NewSession(cfg, components.RunState{Level: 1, Lives: 3}, engine.SessionDeps{
		Controls: ctl,
		Clock:    engine.NewMockTimeProvider(time.Unix(0, 0)),
		Rng:      rand.New(rand.NewSource(3)),
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		s.Step()
	}
	r.Render(s)
	if g.count(constants.GlyphReachTip) != 1 {
		t.Errorf("Expected a reach tip once the reach grows, got %d", g.count(constants.GlyphReachTip))
	}
	if g.count(constants.GlyphOrbit)+g.count(constants.GlyphReach) == 0 {
		t.Error("Expected the orbit guide")
	}
}

type holdExtend struct{}

func (holdExtend) Snapshot(time.Time) systems.Controls { return systems.Controls{Extend: true} }

func TestRenderGameOverBanner(t *testing.T) {
	cfg := config.Default()
	g := newGrid(100, 30)
	r := NewRenderer(g, nil, cfg)
	s := newSession(t, cfg, components.RunState{Level: 1, Lives: 0})

	r.Render(s)
	found := false
	for y := 0; y < g.h; y++ {
		if strings.Contains(g.row(y), constants.TextGameOver) {
			found = true
		}
	}
	if !found {
		t.Error("Expected the game over text")
	}
}

func TestRenderIdleStates(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name string
		o    Overlay
		want string
	}{
		{"title", Overlay{Difficulty: 2}, constants.TextStart},
		{"paused", Overlay{Started: true, Difficulty: 2}, constants.TextPaused},
		{"over", Overlay{Started: true, GameOver: true, Difficulty: 2}, constants.TextGameOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGrid(100, 24)
			r := NewRenderer(g, nil, cfg)
			r.RenderIdle(tt.o)
			found := false
			for y := 0; y < g.h; y++ {
				if strings.Contains(g.row(y), tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected %q on the idle screen", tt.want)
			}
			if !strings.Contains(g.row(0), "normal") {
				t.Errorf("HUD missing difficulty: %q", g.row(0))
			}
		})
	}
}

type stubSprites struct{ calls int }

func (s *stubSprites) Sprite(cols, rows int) *asset.Sprite {
	s.calls++
	cells := make([]asset.Cell, cols*rows)
	for i := range cells {
		cells[i] = asset.Cell{Rune: '▚'}
	}
	return &asset.Sprite{Cells: cells, Width: cols, Height: rows}
}

func TestHazardUsesSprite(t *testing.T) {
	cfg := config.Default()
	cfg.Motion = config.MotionOrbit
	g := newGrid(160, 60)
	sprites := &stubSprites{}
	r := NewRenderer(g, sprites, cfg)
	s := newSession(t, cfg, components.RunState{Level: 1, Lives: 3})

	hazards := 0
	for _, it := range s.Items() {
		if it.Hazard {
			hazards++
		}
	}
	r.Render(s)
	if hazards > 0 && g.count('▚') == 0 {
		t.Error("Expected sprite cells for hazards")
	}
	if g.count(constants.GlyphHazard) != 0 && sprites.calls == 0 {
		t.Error("Hazard glyph drawn without trying the sprite")
	}
}

func TestDebugRow(t *testing.T) {
	cfg := config.Default()
	g := newGrid(100, 24)
	r := NewRenderer(g, nil, cfg)
	reg := status.NewRegistry()
	reg.Ints.Get("engine.ticks").Store(42)
	r.SetDebug(reg)

	r.RenderIdle(Overlay{Difficulty: 1})
	if !strings.Contains(g.row(23), "engine.ticks=42") {
		t.Errorf("Debug row = %q", g.row(23))
	}
}

func TestSimulationScreenCanvas(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	r := NewRenderer(screen, nil, config.Default())
	if !r.Ready() {
		t.Fatal("Simulation screen should be ready")
	}
	r.RenderIdle(Overlay{Difficulty: 3})
	mainc, _, _, _ := screen.GetContent(1, 0)
	if mainc != 's' {
		t.Errorf("Expected HUD text at (1,0), got %q", mainc)
	}
}

func TestPalette(t *testing.T) {
	if ComboColor(1, 4) == ComboColor(4, 4) {
		t.Error("Combo color should change with the multiplier")
	}
	if ComboColor(1, 1) != ComboColor(3, 1) {
		t.Error("A cap of 1 has a single color")
	}
	base := tcell.NewRGBColor(200, 0, 0)
	if HazardPulse(base, 0) == HazardPulse(base, 125*time.Millisecond) {
		t.Error("Hazard pulse should vary over time")
	}
	c := FromTcell(tcell.NewRGBColor(255, 0, 0))
	if c.R != 1 || c.G != 0 {
		t.Errorf("FromTcell = %+v", c)
	}
	if DifficultyName(2) != "normal" || DifficultyName(9) != "d9" {
		t.Error("Unexpected difficulty names")
	}
}
