package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Sound timings
const (
	CatchSoundDuration    = 90 * time.Millisecond
	HazardSoundDuration   = 220 * time.Millisecond
	LevelUpNoteDuration   = 90 * time.Millisecond
	GameOverSoundDuration = 700 * time.Millisecond
)

// Sound pitches in Hz
const (
	CatchBaseFreq   = 660.0
	HazardFreq      = 110.0
	GameOverFreq    = 196.0
	ComboPitchRatio = 1.06
)
