package render

import (
	"math"

	"github.com/lixenwraith/sushi-belt/constants"
	"github.com/lixenwraith/sushi-belt/vmath"
)

// Viewport maps world units onto terminal cells, preserving aspect
// Cells are CellAspect times taller than wide, so vertical scale is divided by it
type Viewport struct {
	X, Y  int     // top-left cell of the world
	W, H  int     // world extent in cells
	Scale float64 // columns per world unit
}

// Fit centers a world of the given bounds in a cols×rows area starting at row top
func Fit(bounds vmath.Vec2, cols, rows, top int) Viewport {
	if bounds.X <= 0 || bounds.Y <= 0 || cols <= 0 || rows <= 0 {
		return Viewport{X: 0, Y: top}
	}
	scale := math.Min(float64(cols)/bounds.X, float64(rows)*constants.CellAspect/bounds.Y)
	w := int(bounds.X * scale)
	h := int(bounds.Y * scale / constants.CellAspect)
	return Viewport{
		X:     (cols - w) / 2,
		Y:     top + (rows-h)/2,
		W:     w,
		H:     h,
		Scale: scale,
	}
}

// Cell returns the cell containing world point p
func (v Viewport) Cell(p vmath.Vec2) (x, y int) {
	x = v.X + int(math.Floor(p.X*v.Scale))
	y = v.Y + int(math.Floor(p.Y*v.Scale/constants.CellAspect))
	return x, y
}

// Span returns how many cells a world diameter covers, at least one each way
func (v Viewport) Span(diameter float64) (cols, rows int) {
	cols = max(1, int(math.Round(diameter*v.Scale)))
	rows = max(1, int(math.Round(diameter*v.Scale/constants.CellAspect)))
	return cols, rows
}
