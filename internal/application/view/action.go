package view

// ActionKind identifies what the driver should do after a Render call.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionChange
	ActionQuit
)

// String returns the string representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "None"
	case ActionChange:
		return "Change"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Action is the outcome of one Render call. Exactly one of the three kinds
// is produced per frame; Next is set only for ActionChange and ownership of
// it passes to the driver.
type Action struct {
	Kind ActionKind
	Next View
}

// None keeps the current view active.
func None() Action {
	return Action{Kind: ActionNone}
}

// ChangeTo replaces the active view with next.
func ChangeTo(next View) Action {
	return Action{Kind: ActionChange, Next: next}
}

// Quit terminates the driving loop.
func Quit() Action {
	return Action{Kind: ActionQuit}
}
