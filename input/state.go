package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/sushi-belt/systems"
)

// KeyState tracks which held controls are down
// Terminals report presses and auto-repeats but no releases, so a control stays
// held until its hold window passes without a repeat or Release is called
type KeyState struct {
	mu         sync.Mutex
	lastSeen   [actionCount]time.Time
	down       [actionCount]bool
	rotateHold time.Duration
	reachHold  time.Duration
}

// NewKeyState creates a key state with per-control hold windows
// The reach window is longer since the first auto-repeat arrives late
func NewKeyState(rotateHold, reachHold time.Duration) *KeyState {
	return &KeyState{rotateHold: rotateHold, reachHold: reachHold}
}

func (ks *KeyState) holdFor(a Action) time.Duration {
	if a == ActionExtend {
		return ks.reachHold
	}
	return ks.rotateHold
}

// Press records a press or repeat of a held control at now
// Opposite rotations cancel: the latest direction wins
func (ks *KeyState) Press(a Action, now time.Time) {
	if !a.Held() {
		return
	}
	ks.mu.Lock()
	defer ks.mu.Unlock()

	ks.down[a] = true
	ks.lastSeen[a] = now
	switch a {
	case ActionRotateLeft:
		ks.down[ActionRotateRight] = false
	case ActionRotateRight:
		ks.down[ActionRotateLeft] = false
	}
}

// Release marks a control up immediately
func (ks *KeyState) Release(a Action) {
	if !a.Held() {
		return
	}
	ks.mu.Lock()
	ks.down[a] = false
	ks.mu.Unlock()
}

// Clear releases every control; used on pause and restart
func (ks *KeyState) Clear() {
	ks.mu.Lock()
	ks.down = [actionCount]bool{}
	ks.mu.Unlock()
}

// Held reports whether a control is down at now
func (ks *KeyState) Held(a Action, now time.Time) bool {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	return ks.heldLocked(a, now)
}

func (ks *KeyState) heldLocked(a Action, now time.Time) bool {
	if !ks.down[a] {
		return false
	}
	if now.Sub(ks.lastSeen[a]) > ks.holdFor(a) {
		ks.down[a] = false
		return false
	}
	return true
}

// Snapshot returns the held controls at now; the session reads it once per tick
func (ks *KeyState) Snapshot(now time.Time) systems.Controls {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	return systems.Controls{
		Left:   ks.heldLocked(ActionRotateLeft, now),
		Right:  ks.heldLocked(ActionRotateRight, now),
		Extend: ks.heldLocked(ActionExtend, now),
	}
}
