package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/input"
)

const stickDeadZone = 0.3

// Keyboard reads ebiten keyboard and the first standard gamepad. A/D or the
// arrows move, Space/W/Up jump and Shift sprints. On a gamepad the left stick
// moves, the bottom face button jumps and the left face button sprints.
//
// Edges are per logical button: with Space and W both down, letting go of
// Space is not a jump release.
type Keyboard struct {
	latch input.Latch
}

func NewKeyboard() *Keyboard { return &Keyboard{} }

// Update samples every button. Call it once per tick before the controller
// reads the device.
func (k *Keyboard) Update() {
	k.latch.Update(held)
}

func (k *Keyboard) Axis() float64 {
	var x float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		x -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		x += 1
	}
	if id, ok := gamepad(); ok {
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadZone {
			x = -1
		} else if leftX > stickDeadZone {
			x = 1
		}
	}
	return x
}

func (k *Keyboard) Pressed(b input.Button) bool  { return k.latch.Pressed(b) }
func (k *Keyboard) Released(b input.Button) bool { return k.latch.Released(b) }
func (k *Keyboard) Held(b input.Button) bool     { return k.latch.Held(b) }

// held reports whether any key or pad button mapped to b is down.
func held(b input.Button) bool {
	for _, key := range keysFor(b) {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	if id, ok := gamepad(); ok {
		return ebiten.IsStandardGamepadButtonPressed(id, padButtonFor(b))
	}
	return false
}

func keysFor(b input.Button) []ebiten.Key {
	switch b {
	case input.ButtonJump:
		return []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp}
	case input.ButtonSprint:
		return []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}
	default:
		return nil
	}
}

func padButtonFor(b input.Button) ebiten.StandardGamepadButton {
	if b == input.ButtonSprint {
		return ebiten.StandardGamepadButtonRightLeft
	}
	return ebiten.StandardGamepadButtonRightBottom
}

func gamepad() (ebiten.GamepadID, bool) {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

var _ input.Device = (*Keyboard)(nil)
