package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Fixed colors
var (
	RgbBackground = tcell.NewRGBColor(22, 24, 33)
	RgbHUDText    = tcell.NewRGBColor(220, 220, 230)
	RgbHUDDim     = tcell.NewRGBColor(120, 124, 140)
	RgbLife       = tcell.NewRGBColor(235, 80, 100)
	RgbReach      = tcell.NewRGBColor(255, 120, 170)
	RgbReachTip   = tcell.NewRGBColor(255, 60, 140)
	RgbOrbitGuide = tcell.NewRGBColor(50, 54, 70)
	RgbOverlay    = tcell.NewRGBColor(255, 230, 160)
	RgbGameOver   = tcell.NewRGBColor(255, 90, 90)
)

// Gradient endpoints
var (
	beltDark  = colorful.Color{R: 0.22, G: 0.20, B: 0.18}
	beltLight = colorful.Color{R: 0.42, G: 0.36, B: 0.28}
	comboCool = colorful.Color{R: 0.55, G: 0.85, B: 1.00}
	comboHot  = colorful.Color{R: 1.00, G: 0.35, B: 0.15}
	progLow   = colorful.Color{R: 0.30, G: 0.60, B: 0.90}
	progHigh  = colorful.Color{R: 0.40, G: 0.95, B: 0.55}
	pulseHigh = colorful.Color{R: 1, G: 1, B: 1}
)

// ToTcell converts a colorful color to a truecolor tcell color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// FromTcell converts a tcell color to colorful; palette colors map to their RGB values
func FromTcell(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// BeltColor shades the belt by position so its motion direction reads at a glance
// frac is the position along the loop in [0, 1)
func BeltColor(frac float64) tcell.Color {
	t := 0.5 + 0.5*math.Sin(frac*2*math.Pi*6)
	return ToTcell(beltDark.BlendLab(beltLight, t))
}

// ComboColor runs from cool at x1 to hot at the cap
func ComboColor(multiplier, cap float64) tcell.Color {
	if cap <= 1 {
		return ToTcell(comboCool)
	}
	t := math.Max(0, math.Min(1, (multiplier-1)/(cap-1)))
	return ToTcell(comboCool.BlendHcl(comboHot, t).Clamped())
}

// ProgressColor colors the level bar by fill percentage
func ProgressColor(pct float64) tcell.Color {
	return ToTcell(progLow.BlendLab(progHigh, math.Max(0, math.Min(1, pct/100))))
}

// HazardPulse flashes a hazard toward white twice a second
func HazardPulse(base tcell.Color, t time.Duration) tcell.Color {
	phase := 0.5 + 0.5*math.Sin(t.Seconds()*2*math.Pi*2)
	return ToTcell(FromTcell(base).BlendRgb(pulseHigh, 0.45*phase))
}
