package input

// Button is a logical button the controller reacts to.
type Button int

const (
	ButtonJump Button = iota
	ButtonSprint

	buttonCount
)

func (b Button) String() string {
	switch b {
	case ButtonJump:
		return "jump"
	case ButtonSprint:
		return "sprint"
	default:
		return "unknown"
	}
}

// Device is polled once per input tick. Pressed and Released report edges
// for the current tick only.
type Device interface {
	Axis() float64
	Pressed(b Button) bool
	Released(b Button) bool
	Held(b Button) bool
}

// Frame is the input captured for a single tick.
type Frame struct {
	// Axis is -1 for left, 0 for none, +1 for right.
	Axis           float64
	JumpPressed    bool
	JumpReleased   bool
	SprintHeld     bool
	SprintReleased bool
}

// Sample reads d into a Frame. A nil device yields a neutral frame.
func Sample(d Device) Frame {
	if d == nil {
		return Frame{}
	}
	return Frame{
		Axis:           snap(d.Axis()),
		JumpPressed:    d.Pressed(ButtonJump),
		JumpReleased:   d.Released(ButtonJump),
		SprintHeld:     d.Held(ButtonSprint),
		SprintReleased: d.Released(ButtonSprint),
	}
}

func snap(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
