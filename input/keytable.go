package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Rune aliases for keys that are awkward as bare TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable runes; lookups fold case
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionRotateLeft,
			tcell.KeyRight:  ActionRotateRight,
			tcell.KeyUp:     ActionExtend,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlS:  ActionToggleMute,
		},
		Runes: map[rune]Action{
			'a': ActionRotateLeft,
			'd': ActionRotateRight,
			' ': ActionExtend,
			'w': ActionExtend,
			'p': ActionPause,
			'r': ActionRestart,
			'1': ActionDifficultyEasy,
			'2': ActionDifficultyNormal,
			'3': ActionDifficultyHard,
			'm': ActionToggleMute,
			'q': ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action, len(kt.SpecialKeys)),
		Runes:       make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		out.Runes[k] = v
	}
	return out
}

// Lookup returns the action bound to a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if a, ok := kt.Runes[r]; ok {
			return a
		}
		if lower := []rune(strings.ToLower(string(r))); len(lower) == 1 {
			return kt.Runes[lower[0]]
		}
		return ActionNone
	}
	return kt.SpecialKeys[ev.Key()]
}

// WithBindings returns a copy of kt with overrides applied
// Keys are single characters, rune aliases, or tcell key names; the "none" action unbinds
func (kt *KeyTable) WithBindings(overrides map[string]string) (*KeyTable, error) {
	out := kt.Clone()
	for keyStr, actionName := range overrides {
		a, ok := ActionByName(strings.ToLower(strings.TrimSpace(actionName)))
		if !ok {
			return nil, errors.Errorf("keys.%s: unknown action %q", keyStr, actionName)
		}

		if r, ok := resolveRune(keyStr); ok {
			if a == ActionNone {
				delete(out.Runes, r)
			} else {
				out.Runes[r] = a
			}
			continue
		}

		k, ok := keyByName(keyStr)
		if !ok {
			return nil, errors.Errorf("keys.%s: unknown key name", keyStr)
		}
		if a == ActionNone {
			delete(out.SpecialKeys, k)
		} else {
			out.SpecialKeys[k] = a
		}
	}
	return out, nil
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	if runes := []rune(s); len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// keyByName matches tcell's key names case-insensitively
func keyByName(name string) (tcell.Key, bool) {
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}
