package components

import "github.com/lixenwraith/sushi-belt/vmath"

// BoardState is the conveyor loop: a closed path of points and item offsets along it
type BoardState struct {
	Cols, Rows int
	TileSize   float64
	Step       float64 // distance between path points
	LoopPath   []vmath.Vec2
	SpeedPx    float64 // path points advanced per tick, shared by every item
}

// Width returns the board width in world units
func (b *BoardState) Width() float64 { return float64(b.Cols) * b.TileSize }

// Height returns the board height in world units
func (b *BoardState) Height() float64 { return float64(b.Rows) * b.TileSize }

// Center returns the board midpoint, where the player stands
func (b *BoardState) Center() vmath.Vec2 {
	return vmath.Vec2{X: b.Width() / 2, Y: b.Height() / 2}
}

// Period returns the loop length in path points
func (b *BoardState) Period() float64 { return float64(len(b.LoopPath)) }

// PointAt returns the tile-centered world position for a path offset
func (b *BoardState) PointAt(offset float64) vmath.Vec2 {
	n := len(b.LoopPath)
	if n == 0 {
		return vmath.Vec2{}
	}
	idx := int(vmath.Wrap(offset, float64(n)))
	half := b.TileSize / 2
	p := b.LoopPath[idx]
	return vmath.Vec2{X: p.X + half, Y: p.Y + half}
}

// BuildPerimeterPath walks the inner rectangle of a cols×rows board clockwise
// starting at the top-left tile, one point every step units
func BuildPerimeterPath(tileSize, step float64, cols, rows int) []vmath.Vec2 {
	w := float64(cols) * tileSize
	h := float64(rows) * tileSize
	var p []vmath.Vec2
	for x := tileSize; x <= w-tileSize; x += step {
		p = append(p, vmath.Vec2{X: x, Y: tileSize})
	}
	for y := tileSize + step; y <= h-tileSize; y += step {
		p = append(p, vmath.Vec2{X: w - tileSize, Y: y})
	}
	for x := w - tileSize - step; x >= tileSize; x -= step {
		p = append(p, vmath.Vec2{X: x, Y: h - tileSize})
	}
	for y := h - tileSize - step; y >= tileSize+step; y -= step {
		p = append(p, vmath.Vec2{X: tileSize, Y: y})
	}
	return p
}

// NewBoard lays out a cols×rows board whose loop runs one tile in from the edge
func NewBoard(tileSize, step float64, cols, rows int, speed float64) *BoardState {
	return &BoardState{
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		Step:     step,
		LoopPath: BuildPerimeterPath(tileSize, step, cols-1, rows-1),
		SpeedPx:  speed,
	}
}

// EvenOffsets spaces count items evenly around the loop
func (b *BoardState) EvenOffsets(count int) []float64 {
	n := len(b.LoopPath)
	if n == 0 || count <= 0 {
		return nil
	}
	spacing := max(1, n/count)
	out := make([]float64, count)
	for i := range out {
		out[i] = float64((i * spacing) % n)
	}
	return out
}
