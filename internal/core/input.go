package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys into actions; games only see actions.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveUp             // W, Up arrow - held while moving up
	ActionMoveDown           // S, Down arrow - held while moving down
	ActionMoveLeft           // A, Left arrow - held while moving left
	ActionMoveRight          // D, Right arrow - held while moving right
	ActionDashPress          // Shift pressed - start a dash
	ActionDashRelease        // Shift released - end a dash and strike
	ActionDashToggle         // Space in terminals without key release events
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R key - restart game after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
)

var actionNames = [...]string{
	ActionNone:        "None",
	ActionMoveUp:      "MoveUp",
	ActionMoveDown:    "MoveDown",
	ActionMoveLeft:    "MoveLeft",
	ActionMoveRight:   "MoveRight",
	ActionDashPress:   "DashPress",
	ActionDashRelease: "DashRelease",
	ActionDashToggle:  "DashToggle",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
	ActionPause:       "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the input state for one simulation tick.
// Movement actions are present for every tick the key is held; the others
// are edge-triggered.
type InputFrame struct {
	Actions map[Action]bool

	// Delta is the wall-clock time in seconds since the previous frame.
	// Zero means one fixed tick at the runtime tick rate.
	Delta float64
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
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Delta = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	c.Delta = f.Delta
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	return c
}
