package components

// PlayerState is the rotating catcher at the center of the board
type PlayerState struct {
	FacingAngle   float64 // radians, [0, 2π)
	ReachExtended bool
	ReachLength   float64 // 0..ReachMax
}
