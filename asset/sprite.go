// Package asset loads the hazard icon and converts it into terminal cells.
package asset

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// quadrantChars maps 4-bit patterns to quadrant block characters
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = foreground)
var quadrantChars = [16]rune{
	' ', '▘', '▝', '▀', '▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜', '▄', '▙', '▟', '█',
}

// alphaCutoff marks a pixel transparent below this 16-bit alpha
const alphaCutoff = 0x8000

// Cell is one terminal cell of a converted sprite
// A fully transparent cell has Rune 0 and is not drawn; a half transparent
// cell has HasBg false and keeps whatever is underneath as background
type Cell struct {
	Rune  rune
	Fg    colorful.Color
	Bg    colorful.Color
	HasBg bool
}

// Sprite is a grid of cells, row-major
type Sprite struct {
	Cells  []Cell
	Width  int
	Height int
}

// At returns the cell at column x, row y
func (s *Sprite) At(x, y int) Cell {
	return s.Cells[y*s.Width+x]
}

type pixel struct {
	c      colorful.Color
	opaque bool
}

// Convert scales img to cols×rows cells using quadrant characters (2×2 pixels per cell)
func Convert(img image.Image, cols, rows int) *Sprite {
	if cols <= 0 || rows <= 0 || img.Bounds().Empty() {
		return &Sprite{}
	}

	gridW, gridH := cols*2, rows*2
	scaled := image.NewNRGBA(image.Rect(0, 0, gridW, gridH))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	s := &Sprite{Cells: make([]Cell, cols*rows), Width: cols, Height: rows}
	offsets := [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var px [4]pixel
			for i, off := range offsets {
				px[i] = toPixel(scaled.At(x*2+off[0], y*2+off[1]))
			}
			s.Cells[y*cols+x] = bestQuadrant(px)
		}
	}
	return s
}

func toPixel(c color.Color) pixel {
	_, _, _, a := c.RGBA()
	if a < alphaCutoff {
		return pixel{}
	}
	cf, _ := colorful.MakeColor(c)
	return pixel{c: cf, opaque: true}
}

// bestQuadrant picks the pattern and colors with the least Lab error
// Transparent pixels must fall in the background group, which is then left undrawn
func bestQuadrant(px [4]pixel) Cell {
	var opaqueMask int
	for i := range px {
		if px[i].opaque {
			opaqueMask |= 1 << i
		}
	}
	if opaqueMask == 0 {
		return Cell{}
	}

	best := Cell{}
	bestErr := -1.0
	// Descending so that on equal error the fuller block wins
	for pattern := 15; pattern > 0; pattern-- {
		// Foreground may only cover opaque pixels
		if pattern&^opaqueMask != 0 {
			continue
		}
		fg, bg, hasBg, err := patternColors(px, pattern)
		if bestErr < 0 || err < bestErr {
			bestErr = err
			best = Cell{Rune: quadrantChars[pattern], Fg: fg, Bg: bg, HasBg: hasBg}
		}
	}
	return best
}

func patternColors(px [4]pixel, pattern int) (fg, bg colorful.Color, hasBg bool, err float64) {
	var fgSet, bgSet []colorful.Color
	bgTransparent := false
	for i := range px {
		switch {
		case pattern&(1<<i) != 0:
			fgSet = append(fgSet, px[i].c)
		case px[i].opaque:
			bgSet = append(bgSet, px[i].c)
		default:
			bgTransparent = true
		}
	}
	fg = average(fgSet)
	if len(bgSet) > 0 && !bgTransparent {
		bg = average(bgSet)
		hasBg = true
	}

	for _, c := range fgSet {
		err += c.DistanceLab(fg)
	}
	for _, c := range bgSet {
		if hasBg {
			err += c.DistanceLab(bg)
		} else {
			// Opaque pixel lost to a transparent background
			err += 1
		}
	}
	return fg, bg, hasBg, err
}

func average(cs []colorful.Color) colorful.Color {
	if len(cs) == 0 {
		return colorful.Color{}
	}
	var r, g, b float64
	for _, c := range cs {
		r += c.R
		g += c.G
		b += c.B
	}
	n := float64(len(cs))
	return colorful.Color{R: r / n, G: g / n, B: b / n}
}
