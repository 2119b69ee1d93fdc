package input

// Action is a semantic game command produced by a key
type Action uint8

const (
	ActionNone Action = iota

	// Held controls, sampled once per tick
	ActionRotateLeft
	ActionRotateRight
	ActionExtend

	// One-shot commands, handled on the event
	ActionPause
	ActionRestart
	ActionDifficultyEasy
	ActionDifficultyNormal
	ActionDifficultyHard
	ActionToggleMute
	ActionQuit

	actionCount
)

// actionNames maps actions to the names used in the [keys] config table
var actionNames = [actionCount]string{
	ActionNone:             "none",
	ActionRotateLeft:       "rotate_left",
	ActionRotateRight:      "rotate_right",
	ActionExtend:           "extend",
	ActionPause:            "pause",
	ActionRestart:          "restart",
	ActionDifficultyEasy:   "difficulty_easy",
	ActionDifficultyNormal: "difficulty_normal",
	ActionDifficultyHard:   "difficulty_hard",
	ActionToggleMute:       "toggle_mute",
	ActionQuit:             "quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Held reports whether the action is a continuous control rather than a command
func (a Action) Held() bool {
	return a == ActionRotateLeft || a == ActionRotateRight || a == ActionExtend
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), true
		}
	}
	return ActionNone, false
}
