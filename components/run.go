package components

import "time"

// RunState holds the statistics of one run; it survives pause but not restart
type RunState struct {
	Score       int
	Level       int
	Lives       int
	SushiCaught int
	Accuracy    float64
	Elapsed     time.Duration
}
