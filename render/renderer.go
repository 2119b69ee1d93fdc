package render

import (
	"math"

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

// SpriteSource supplies the hazard sprite at a cell size, nil until loaded
type SpriteSource interface {
	Sprite(cols, rows int) *asset.Sprite
}

// Overlay is the idle screen content, supplied by the owner while no session runs
type Overlay struct {
	Run        components.RunState
	Difficulty int
	Started    bool
	GameOver   bool
}

// Renderer draws sessions and the idle overlay onto a canvas
// It only reads the session; all calls come from the frame goroutine
type Renderer struct {
	canvas  Canvas
	sprites SpriteSource
	cfg     *config.Config
	debug   *status.Registry
	muted   bool
}

// NewRenderer binds a canvas; sprites may be nil to always draw glyphs
func NewRenderer(canvas Canvas, sprites SpriteSource, cfg *config.Config) *Renderer {
	return &Renderer{canvas: canvas, sprites: sprites, cfg: cfg}
}

// SetMuted changes the mute marker shown in the status line
func (r *Renderer) SetMuted(m bool) { r.muted = m }

// Ready reports whether the canvas has room for the HUD and a playfield
func (r *Renderer) Ready() bool {
	if r.canvas == nil {
		return false
	}
	w, h := r.canvas.Size()
	return w > 0 && h > constants.HUDHeight
}

// playfield returns the viewport for a world of the given bounds below the HUD
func (r *Renderer) playfield(bounds vmath.Vec2) Viewport {
	w, h := r.canvas.Size()
	rows := h - constants.HUDHeight
	if r.debug != nil {
		rows--
	}
	return Fit(bounds, w, rows, constants.HUDHeight)
}

// Render draws one frame of the session
func (r *Renderer) Render(s *engine.Session) {
	if s == nil || !r.Ready() {
		return
	}
	r.canvas.Clear()
	w, h := r.canvas.Size()
	fill(r.canvas, 0, 0, w, h, ' ', tcell.StyleDefault.Background(RgbBackground))

	motion := s.Motion()
	vp := r.playfield(motion.Bounds())

	if belt, ok := motion.(*systems.BeltMotion); ok {
		r.drawBelt(vp, belt.Board)
	} else {
		r.drawOrbit(vp, motion.Origin())
	}
	r.drawItems(vp, s)
	r.drawPlayer(vp, motion.Origin(), s.Player())

	r.drawHUD(HUDData{
		Run:        s.Run(),
		Combo:      s.Combo().Multiplier,
		ComboCap:   r.cfg.Scoring.MultiplierCap,
		Difficulty: s.Difficulty(),
		StartLives: r.cfg.Scoring.StartLives,
		Muted:      r.muted,
	})
	if s.Over() {
		drawCentered(r.canvas, vp.Y+vp.H/2, " "+constants.TextGameOver+" ",
			tcell.StyleDefault.Background(RgbBackground).Foreground(RgbGameOver).Bold(true))
	}
	r.drawDebug()
	r.canvas.Show()
}

// RenderIdle draws the title, paused or game over screen
func (r *Renderer) RenderIdle(o Overlay) {
	if !r.Ready() {
		return
	}
	r.canvas.Clear()
	w, h := r.canvas.Size()
	base := tcell.StyleDefault.Background(RgbBackground)
	fill(r.canvas, 0, 0, w, h, ' ', base)

	r.drawHUD(HUDData{
		Run:        o.Run,
		Combo:      1,
		ComboCap:   r.cfg.Scoring.MultiplierCap,
		Difficulty: o.Difficulty,
		StartLives: r.cfg.Scoring.StartLives,
		Muted:      r.muted,
	})

	mid := constants.HUDHeight + (h-constants.HUDHeight)/2
	drawCentered(r.canvas, mid-2, constants.TextTitle, base.Foreground(RgbBackground).Background(RgbOverlay).Bold(true))
	switch {
	case o.GameOver:
		drawCentered(r.canvas, mid, constants.TextGameOver, base.Foreground(RgbGameOver).Bold(true))
	case o.Started:
		drawCentered(r.canvas, mid, constants.TextPaused, base.Foreground(RgbOverlay))
	default:
		drawCentered(r.canvas, mid, constants.TextStart, base.Foreground(RgbOverlay))
	}
	drawCentered(r.canvas, mid+2, constants.TextControls, base.Foreground(RgbHUDDim))
	r.drawDebug()
	r.canvas.Show()
}

// drawBelt traces the loop path; turns are drawn last and stay on top
func (r *Renderer) drawBelt(vp Viewport, b *components.BoardState) {
	n := len(b.LoopPath)
	var corners []int
	for i := 0; i < n; i++ {
		prev := b.LoopPath[(i+n-1)%n]
		next := b.LoopPath[(i+1)%n]
		if prev.X != next.X && prev.Y != next.Y {
			corners = append(corners, i)
			continue
		}
		r.beltCell(vp, b, i, n, constants.GlyphBelt)
	}
	for _, i := range corners {
		r.beltCell(vp, b, i, n, constants.GlyphBeltCorner)
	}
}

func (r *Renderer) beltCell(vp Viewport, b *components.BoardState, i, n int, g rune) {
	x, y := vp.Cell(b.PointAt(float64(i)))
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(BeltColor(float64(i) / float64(n)))
	r.canvas.SetContent(x, y, g, nil, style)
}

// drawOrbit marks the outer ring items may travel on
func (r *Renderer) drawOrbit(vp Viewport, center vmath.Vec2) {
	radius := r.cfg.Spawn.RadiusMax
	steps := max(16, int(vmath.TwoPi*radius*vp.Scale))
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbOrbitGuide)
	for i := 0; i < steps; i++ {
		a := float64(i) / float64(steps) * vmath.TwoPi
		x, y := vp.Cell(vmath.Polar(center, a, radius))
		r.canvas.SetContent(x, y, constants.GlyphOrbit, nil, style)
	}
}

func (r *Renderer) drawItems(vp Viewport, s *engine.Session) {
	motion := s.Motion()
	kinds := s.Kinds()
	items := s.Items()
	for i := range items {
		it := &items[i]
		x, y := vp.Cell(motion.Position(it))
		info := kindInfo(kinds, it.Kind)

		if it.Hazard {
			if r.drawSprite(vp, x, y, it.Size*2) {
				continue
			}
			style := tcell.StyleDefault.Background(RgbBackground).
				Foreground(HazardPulse(info.Color, s.SimTime())).Bold(true)
			r.canvas.SetContent(x, y, constants.GlyphHazard, nil, style)
			continue
		}
		style := tcell.StyleDefault.Background(RgbBackground).Foreground(info.Color)
		r.canvas.SetContent(x, y, info.Glyph, nil, style)
	}
}

// drawSprite centers the hazard sprite on cell (cx, cy); false when none is available
func (r *Renderer) drawSprite(vp Viewport, cx, cy int, diameter float64) bool {
	if r.sprites == nil {
		return false
	}
	cols, rows := vp.Span(diameter)
	if cols < 2 && rows < 2 {
		return false
	}
	sp := r.sprites.Sprite(cols, rows)
	if sp == nil {
		return false
	}
	ox, oy := cx-sp.Width/2, cy-sp.Height/2
	for y := 0; y < sp.Height; y++ {
		for x := 0; x < sp.Width; x++ {
			c := sp.At(x, y)
			if c.Rune == 0 {
				continue
			}
			bg := RgbBackground
			if c.HasBg {
				bg = ToTcell(c.Bg)
			}
			r.canvas.SetContent(ox+x, oy+y, c.Rune, nil,
				tcell.StyleDefault.Foreground(ToTcell(c.Fg)).Background(bg))
		}
	}
	return true
}

// drawPlayer draws the reach as sampled cells from the origin to the tip, then the player on top
func (r *Renderer) drawPlayer(vp Viewport, origin vmath.Vec2, p components.PlayerState) {
	base := tcell.StyleDefault.Background(RgbBackground)
	if p.ReachLength > 0 {
		tip := systems.ReachEndpoint(origin, &p)
		segs := max(constants.ReachSegments, int(math.Ceil(p.ReachLength*vp.Scale)))
		style := base.Foreground(RgbReach)
		for i := 1; i < segs; i++ {
			t := float64(i) / float64(segs)
			pt := vmath.Vec2{X: vmath.Lerp(origin.X, tip.X, t), Y: vmath.Lerp(origin.Y, tip.Y, t)}
			x, y := vp.Cell(pt)
			r.canvas.SetContent(x, y, constants.GlyphReach, nil, style)
		}
		x, y := vp.Cell(tip)
		r.canvas.SetContent(x, y, constants.GlyphReachTip, nil, base.Foreground(RgbReachTip).Bold(true))
	}
	x, y := vp.Cell(origin)
	r.canvas.SetContent(x, y, constants.GlyphPlayer, nil, base.Foreground(RgbHUDText).Bold(true))
}

// kindInfo finds k in the session's table, falling back to the defaults
func kindInfo(kinds []components.KindInfo, k components.Kind) components.KindInfo {
	for _, info := range kinds {
		if info.Kind == k {
			return info
		}
	}
	if k >= 0 && k < components.KindCount {
		return components.DefaultKinds[k]
	}
	return components.DefaultKinds[components.KindSalmon]
}
