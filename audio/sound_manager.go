// Package audio plays short synthesized cues for catches, hazards,
// level-ups and game over through the beep speaker.
package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sushi-belt/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// levelUpSteps are the semitone offsets of the level-up arpeggio
var levelUpSteps = []float64{0, 4, 7, 12}

// SoundManager mixes gameplay cues into a single speaker stream
// Every Play method is a no-op until Initialize succeeds, and while muted
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates an uninitialized manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker; calling it again is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// SetMuted sets the mute flag
func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	sm.muted = m
	sm.mu.Unlock()
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// CatchFreq returns the catch chime pitch; each combo step raises it
func CatchFreq(multiplier float64) float64 {
	steps := math.Max(0, (multiplier-1)/constants.ComboMultiplierStep)
	return constants.CatchBaseFreq * math.Pow(constants.ComboPitchRatio, steps*2)
}

// PlayCatch plays a chime pitched by the combo multiplier
func (sm *SoundManager) PlayCatch(multiplier float64) {
	sm.play(NewChimeGenerator(sampleRate, CatchFreq(multiplier), constants.CatchSoundDuration))
}

// PlayHazard plays a low buzz
func (sm *SoundManager) PlayHazard() {
	sm.play(NewBuzzGenerator(sampleRate, constants.HazardFreq, constants.HazardSoundDuration))
}

// PlayLevelUp plays a rising major arpeggio
func (sm *SoundManager) PlayLevelUp() {
	notes := make([]beep.Streamer, len(levelUpSteps))
	for i, semis := range levelUpSteps {
		freq := constants.CatchBaseFreq * math.Pow(2, semis/12)
		notes[i] = NewChimeGenerator(sampleRate, freq, constants.LevelUpNoteDuration)
	}
	sm.play(beep.Seq(notes...))
}

// PlayGameOver plays a falling glide
func (sm *SoundManager) PlayGameOver() {
	sm.play(NewSweepGenerator(sampleRate, constants.GameOverFreq*2, constants.GameOverFreq/2, constants.GameOverSoundDuration))
}
