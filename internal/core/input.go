package core

// Action represents a semantic platform action, abstracted from physical
// key presses. Lane taps are not actions: they carry a lane index and are
// queued separately on the InputFrame so their arrival order is preserved.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up in menus
	ActionDown           // S, Down arrow - move down in menus
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart run after a terminal outcome
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause stepping
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player did between two simulation
// ticks: platform actions plus lane taps in arrival order. The platform
// delivers the taps one at a time before advancing the simulation, so a
// tap is always evaluated against the tile positions of the previous frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Taps holds tapped lane indices in the order the keys arrived.
	Taps []int
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

// Tap appends a lane tap to the frame's ordered queue.
func (f *InputFrame) Tap(lane int) {
	f.Taps = append(f.Taps, lane)
}

// Clear resets all actions and taps for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Taps = f.Taps[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Taps = append(clone.Taps, f.Taps...)
	return clone
}
