package core

// Action is a discrete input edge, abstracted from physical key presses.
// Ship commands come in Start/Stop pairs; platform actions are single edges.
type Action int

const (
	ActionNone Action = iota
	ActionRotateLeftStart
	ActionRotateLeftStop
	ActionRotateRightStart
	ActionRotateRightStop
	ActionThrustStart
	ActionThrustStop
	ActionFireStart
	ActionFireStop
	ActionPause   // P, Escape - pause/unpause game
	ActionRestart // R key - start a new session after game over
	ActionQuit    // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotateLeftStart:
		return "RotateLeftStart"
	case ActionRotateLeftStop:
		return "RotateLeftStop"
	case ActionRotateRightStart:
		return "RotateRightStart"
	case ActionRotateRightStop:
		return "RotateRightStop"
	case ActionThrustStart:
		return "ThrustStart"
	case ActionThrustStop:
		return "ThrustStop"
	case ActionFireStart:
		return "FireStart"
	case ActionFireStop:
		return "FireStop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is one of the four ship controls.
type Command int

const (
	CommandRotateLeft Command = iota
	CommandRotateRight
	CommandThrust
	CommandFire
)

// Start returns the key-down edge for the command.
func (c Command) Start() Action {
	switch c {
	case CommandRotateLeft:
		return ActionRotateLeftStart
	case CommandRotateRight:
		return ActionRotateRightStart
	case CommandThrust:
		return ActionThrustStart
	case CommandFire:
		return ActionFireStart
	}
	return ActionNone
}

// Stop returns the key-up edge for the command.
func (c Command) Stop() Action {
	switch c {
	case CommandRotateLeft:
		return ActionRotateLeftStop
	case CommandRotateRight:
		return ActionRotateRightStop
	case CommandThrust:
		return ActionThrustStop
	case CommandFire:
		return ActionFireStop
	}
	return ActionNone
}

// InputFrame holds the edges received since the previous tick.
// Order is preserved: a press and release inside one tick must replay as such.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make([]Action, 0, 8),
	}
}

// Push appends an edge. ActionNone is ignored.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was received this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// Len returns the number of queued edges.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}

// Each calls fn for every edge in arrival order.
func (f InputFrame) Each(fn func(Action)) {
	for _, a := range f.Actions {
		fn(a)
	}
}
