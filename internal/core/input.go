package core

// Action represents a semantic game action, abstracted from physical key presses.
// Human input and the autopilot both speak this vocabulary.
type Action int

const (
	ActionNone           Action = iota
	ActionJump                  // Space, Up, W - jump impulse; starts the run from the idle screen
	ActionToggleBoost           // F, Right, D - dash forward and return
	ActionTogglePause           // P, Escape - pause/unpause
	ActionToggleDebug           // H - hitbox overlay
	ActionToggleAutoplay        // A - autopilot on/off
	ActionRestart               // R - restart after game over
	ActionScoreboard            // Tab - open scoreboard after game over
	ActionQuit                  // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionToggleBoost:
		return "ToggleBoost"
	case ActionTogglePause:
		return "TogglePause"
	case ActionToggleDebug:
		return "ToggleDebug"
	case ActionToggleAutoplay:
		return "ToggleAutoplay"
	case ActionRestart:
		return "Restart"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions delivered between two ticks.
// Every action is applied before the next tick runs; repeats collapse into one.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
