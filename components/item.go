package components

import "github.com/gdamore/tcell/v2"

// Kind is an item category; the set is closed
type Kind int

const (
	KindSalmon Kind = iota // common
	KindTuna               // common
	KindEbi                // rare
	KindDragon             // rare
	KindBomb               // hazard
	KindCount
)

// KindInfo is the fixed description of a kind
type KindInfo struct {
	Kind   Kind
	Name   string
	Glyph  rune
	Color  tcell.Color
	Value  int
	Weight float64
	Hazard bool
}

// DefaultKinds is the kind table in draw order; weights sum to 1
var DefaultKinds = []KindInfo{
	{KindSalmon, "salmon", 'ⓢ', tcell.NewRGBColor(250, 128, 114), 10, 0.40, false},
	{KindTuna, "tuna", 'ⓣ', tcell.NewRGBColor(220, 20, 60), 15, 0.30, false},
	{KindEbi, "ebi", 'ⓔ', tcell.NewRGBColor(255, 200, 60), 50, 0.10, false},
	{KindDragon, "dragon", 'ⓓ', tcell.NewRGBColor(80, 220, 120), 100, 0.05, false},
	{KindBomb, "bomb", '✱', tcell.NewRGBColor(255, 70, 40), 0, 0.15, true},
}

// String returns the kind's table name
func (k Kind) String() string {
	if k >= 0 && k < KindCount {
		return DefaultKinds[k].Name
	}
	return "unknown"
}

// ParseKind looks a kind up by table name
func ParseKind(name string) (Kind, bool) {
	for _, info := range DefaultKinds {
		if info.Name == name {
			return info.Kind, true
		}
	}
	return 0, false
}

// Item is one circulating piece on the belt or in orbit
// Orbit items use Angle/Radius/Speed; belt items use PathOffset and the global belt speed
type Item struct {
	ID         int
	Kind       Kind
	Angle      float64 // radians, [0, 2π)
	Radius     float64 // world units from center, constant for the item's lifetime
	Speed      float64 // radians per tick
	PathOffset float64 // path points, [0, len(LoopPath))
	Value      int
	Size       float64
	Hazard     bool
}
