package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas is the drawing surface; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}

// fill paints a rectangle with r
func fill(c Canvas, x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.SetContent(col, row, r, nil, style)
		}
	}
}

// drawText writes s starting at x, advancing by display width; returns the column after the text
// Wide runes that would cross maxX are dropped
func drawText(c Canvas, x, y, maxX int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		c.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// drawCentered writes s centered on row y, truncated to the canvas width
func drawCentered(c Canvas, y int, s string, style tcell.Style) {
	width, _ := c.Size()
	s = runewidth.Truncate(s, width, "…")
	x := (width - runewidth.StringWidth(s)) / 2
	drawText(c, max(0, x), y, width, s, style)
}

// drawRight writes s flush against the right edge of row y
func drawRight(c Canvas, y int, s string, style tcell.Style) int {
	width, _ := c.Size()
	x := max(0, width-runewidth.StringWidth(s))
	drawText(c, x, y, width, s, style)
	return x
}
