package constants

// View
const (
	// HUDHeight is the number of rows reserved for the status line
	HUDHeight = 2

	// CellAspect compensates for terminal cells being twice as tall as wide
	CellAspect = 2.0

	// ReachSegments is the number of cells sampled along the drawn reach
	ReachSegments = 24
)

// Glyphs
const (
	GlyphPlayer     = '@'
	GlyphReach      = '·'
	GlyphReachTip   = '●'
	GlyphBelt       = '░'
	GlyphBeltCorner = '▒'
	GlyphOrbit      = '·'
	GlyphHazard     = '✱'
	GlyphLife       = '♥'
	GlyphLifeLost   = '♡'
	GlyphProgress   = '█'
	GlyphProgressBg = '░'
)

// Status text
const (
	TextTitle    = " SUSHI BELT "
	TextStart    = "press p to start, 1-3 to pick difficulty"
	TextPaused   = "paused - press p to play, r to restart, 1-3 difficulty, q to quit"
	TextGameOver = "game over - press r to restart"
	TextControls = "←/→ or a/d turn · space lick · p pause · q quit"
)
