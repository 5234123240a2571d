package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // A, Left arrow
	ActionRight              // D, Right arrow
	ActionUp                 // W, Up arrow
	ActionDown               // S, Down arrow
	ActionGhost              // Space, Enter - dig without moving, or restart when dead
	ActionSoundToggle        // M
	ActionNextLevel          // N
	ActionPrevLevel          // P
	ActionSuicide            // R
	ActionRespawn            // J - put the hero back at its last position
	ActionRefillTime         // T
	ActionPause              // Esc
	ActionQuit               // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionGhost:       "Ghost",
	ActionSoundToggle: "SoundToggle",
	ActionNextLevel:   "NextLevel",
	ActionPrevLevel:   "PrevLevel",
	ActionSuicide:     "Suicide",
	ActionRespawn:     "Respawn",
	ActionRefillTime:  "RefillTime",
	ActionPause:       "Pause",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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
