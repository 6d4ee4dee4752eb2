package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game
)

// InputFrame represents the player's intent for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Direction is the resolved movement code from the held keys.
	Direction Direction

	// Aim is the latest pointer position in world pixels; valid when HasAim.
	Aim    Point
	HasAim bool

	// Fire requests a shot toward FireAt.
	Fire   bool
	FireAt Point
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
