package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestKeyStateHoldWindow(t *testing.T) {
	ks := NewKeyState(160*time.Millisecond, 450*time.Millisecond)
	t0 := time.Unix(1000, 0)

	ks.Press(ActionRotateLeft, t0)
	ks.Press(ActionExtend, t0)

	c := ks.Snapshot(t0.Add(100 * time.Millisecond))
	if !c.Left || !c.Extend || c.Right {
		t.Fatalf("Expected left and extend held, got %+v", c)
	}

	c = ks.Snapshot(t0.Add(300 * time.Millisecond))
	if c.Left {
		t.Error("Rotation should release after its hold window")
	}
	if !c.Extend {
		t.Error("Reach should still be held inside its longer window")
	}

	if ks.Held(ActionExtend, t0.Add(500*time.Millisecond)) {
		t.Error("Reach should release after its hold window")
	}
}

func TestKeyStateRepeatsExtendHold(t *testing.T) {
	ks := NewKeyState(160*time.Millisecond, 450*time.Millisecond)
	t0 := time.Unix(1000, 0)

	for i := 0; i < 10; i++ {
		ks.Press(ActionRotateRight, t0.Add(time.Duration(i)*100*time.Millisecond))
	}
	if !ks.Held(ActionRotateRight, t0.Add(1000*time.Millisecond)) {
		t.Error("Expected repeats to keep the key held")
	}
}

func TestKeyStateOppositeRotationsCancel(t *testing.T) {
	ks := NewKeyState(time.Second, time.Second)
	t0 := time.Unix(1000, 0)

	ks.Press(ActionRotateLeft, t0)
	ks.Press(ActionRotateRight, t0)
	c := ks.Snapshot(t0)
	if c.Left || !c.Right {
		t.Errorf("Expected latest direction only, got %+v", c)
	}
}

func TestKeyStateReleaseAndClear(t *testing.T) {
	ks := NewKeyState(time.Second, time.Second)
	t0 := time.Unix(1000, 0)

	ks.Press(ActionExtend, t0)
	ks.Release(ActionExtend)
	if ks.Held(ActionExtend, t0) {
		t.Error("Expected extend released")
	}

	ks.Press(ActionRotateLeft, t0)
	ks.Press(ActionExtend, t0)
	ks.Clear()
	if c := ks.Snapshot(t0); c.Left || c.Extend {
		t.Errorf("Expected all released after Clear, got %+v", c)
	}

	// Commands never register as held
	ks.Press(ActionPause, t0)
	if ks.Held(ActionPause, t0) {
		t.Error("Pause must not be tracked as held")
	}
}

func TestDefaultKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionRotateLeft},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionRotateRight},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionExtend},
		{"upper P", tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModNone), ActionPause},
		{"difficulty 3", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), ActionDifficultyHard},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.ev); got != tt.want {
				t.Errorf("Lookup = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithBindings(t *testing.T) {
	base := DefaultKeyTable()
	kt, err := base.WithBindings(map[string]string{
		"j":     "rotate_left",
		"space": "none",
		"Down":  "extend",
	})
	if err != nil {
		t.Fatalf("WithBindings: %v", err)
	}

	if a := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone)); a != ActionRotateLeft {
		t.Errorf("j = %v, want rotate_left", a)
	}
	if a := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)); a != ActionNone {
		t.Errorf("space = %v, want unbound", a)
	}
	if a := kt.Lookup(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)); a != ActionExtend {
		t.Errorf("Down = %v, want extend", a)
	}
	if _, ok := base.Runes['j']; ok {
		t.Error("WithBindings must not modify the base table")
	}

	if _, err := base.WithBindings(map[string]string{"x": "teleport"}); err == nil {
		t.Error("Expected error for unknown action")
	}
	if _, err := base.WithBindings(map[string]string{"NoSuchKey": "quit"}); err == nil {
		t.Error("Expected error for unknown key name")
	}
}

func TestActionNames(t *testing.T) {
	for a := ActionNone; a < actionCount; a++ {
		got, ok := ActionByName(a.String())
		if !ok || got != a {
			t.Errorf("ActionByName(%q) = %v, %v", a.String(), got, ok)
		}
	}
}
