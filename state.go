package overlay

import "fmt"

// State is the interaction mode of a widget at a point in time.
// Exactly one state is current whenever a widget renders.
type State int

const (
	StateNormal State = iota
	StateHover
	StatePress
	StateDisabled
)

// States lists every state in declaration order.
var States = [...]State{StateNormal, StateHover, StatePress, StateDisabled}

var stateNames = [...]string{
	StateNormal:   "normal",
	StateHover:    "hover",
	StatePress:    "press",
	StateDisabled: "disabled",
}

// String returns the state's name as used in style sets and theme files.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// ParseState converts a state name back into a State.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return StateNormal, fmt.Errorf("unknown state %q", name)
}

// ResolveState picks the current state from the three interaction flags.
// Precedence is disabled, then pressed, then hovered.
func ResolveState(disabled, pressed, hovered bool) State {
	switch {
	case disabled:
		return StateDisabled
	case pressed:
		return StatePress
	case hovered:
		return StateHover
	default:
		return StateNormal
	}
}

// Interaction tracks the hover/press/disabled flags of one widget.
// The overlay's input dispatch writes them; the widget reads State() when it
// renders. onChange fires only when a flag actually flips.
type Interaction struct {
	hovered  bool
	pressed  bool
	disabled bool

	onChange func()
}

// Hovered reports whether the cursor is over the widget.
func (i *Interaction) Hovered() bool { return i.hovered }

// Pressed reports whether the primary button is held on the widget.
func (i *Interaction) Pressed() bool { return i.pressed }

// Disabled reports whether the widget ignores input.
func (i *Interaction) Disabled() bool { return i.disabled }

// State resolves the current flags into a single State.
func (i *Interaction) State() State {
	return ResolveState(i.disabled, i.pressed, i.hovered)
}

// SetHovered updates the hover flag.
func (i *Interaction) SetHovered(v bool) { i.set(&i.hovered, v) }

// SetPressed updates the press flag.
func (i *Interaction) SetPressed(v bool) { i.set(&i.pressed, v) }

// SetDisabled updates the disabled flag.
func (i *Interaction) SetDisabled(v bool) { i.set(&i.disabled, v) }

func (i *Interaction) set(flag *bool, v bool) {
	if *flag == v {
		return
	}
	*flag = v
	if i.onChange != nil {
		i.onChange()
	}
}
