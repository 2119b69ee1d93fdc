package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sushi-belt/components"
	"github.com/lixenwraith/sushi-belt/constants"
	"github.com/lixenwraith/sushi-belt/pacing"
	"github.com/lixenwraith/sushi-belt/status"
)

// HUDData is what the status lines show, gathered from a session or the idle controller
type HUDData struct {
	Run        components.RunState
	Combo      float64
	ComboCap   float64
	Difficulty int
	StartLives int
	Muted      bool
}

var difficultyNames = [...]string{"", "easy", "normal", "hard"}

// DifficultyName returns the display name of a difficulty level
func DifficultyName(d int) string {
	if d > 0 && d < len(difficultyNames) {
		return difficultyNames[d]
	}
	return fmt.Sprintf("d%d", d)
}

// drawHUD renders the two status rows at the top of the canvas
func (r *Renderer) drawHUD(h HUDData) {
	width, _ := r.canvas.Size()
	base := tcell.StyleDefault.Background(RgbBackground)
	text := base.Foreground(RgbHUDText)
	dim := base.Foreground(RgbHUDDim)
	fill(r.canvas, 0, 0, width, constants.HUDHeight, ' ', base)

	x := drawText(r.canvas, 0, 0, width, fmt.Sprintf(" score %d  lvl %d  ", h.Run.Score, h.Run.Level), text)

	lives := max(h.StartLives, h.Run.Lives)
	for i := 0; i < lives; i++ {
		g, st := constants.GlyphLife, base.Foreground(RgbLife)
		if i >= h.Run.Lives {
			g, st = constants.GlyphLifeLost, dim
		}
		x = drawText(r.canvas, x, 0, width, string(g), st)
	}

	combo := base.Foreground(ComboColor(h.Combo, h.ComboCap)).Bold(h.Combo > 1)
	x = drawText(r.canvas, x, 0, width, fmt.Sprintf("  x%.1f", h.Combo), combo)
	drawText(r.canvas, x, 0, width,
		fmt.Sprintf("  caught %d  acc %.0f%%", h.Run.SushiCaught, h.Run.Accuracy), text)

	right := fmt.Sprintf("%s  %s ", pacing.FormatElapsed(h.Run.Elapsed), DifficultyName(h.Difficulty))
	if h.Muted {
		right = "muted  " + right
	}
	drawRight(r.canvas, 0, right, dim)

	r.drawProgress(h, base)
}

// drawProgress shows how far the score is through the current level
func (r *Renderer) drawProgress(h HUDData, base tcell.Style) {
	width, _ := r.canvas.Size()
	pct := pacing.LevelProgressPct(h.Run.Score, h.Run.Level, r.cfg.Scoring.ScorePerLevel)
	label := fmt.Sprintf(" %3.0f%% ", pct)
	barW := width - len(label) - 1
	if barW <= 0 {
		return
	}
	filled := int(float64(barW) * pct / 100)
	full := base.Foreground(ProgressColor(pct))
	empty := base.Foreground(RgbHUDDim)
	x := drawText(r.canvas, 1, 1, width, strings.Repeat(string(constants.GlyphProgress), filled), full)
	x = drawText(r.canvas, x, 1, width, strings.Repeat(string(constants.GlyphProgressBg), barW-filled), empty)
	drawText(r.canvas, x, 1, width, label, base.Foreground(RgbHUDText))
}

// drawDebug writes the metric snapshot along the bottom row
func (r *Renderer) drawDebug() {
	if r.debug == nil {
		return
	}
	width, height := r.canvas.Size()
	line := strings.Join(r.debug.Snapshot(), " ")
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHUDDim)
	fill(r.canvas, 0, height-1, width, 1, ' ', style)
	drawText(r.canvas, 0, height-1, width, line, style)
}

// SetDebug enables the metrics row; nil disables it
func (r *Renderer) SetDebug(reg *status.Registry) { r.debug = reg }
