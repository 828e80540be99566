package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
)

// Transform tracks a character's yaw around the vertical axis. A yaw of 180
// degrees mirrors the character horizontally.
type Transform struct {
	body *Body
	yaw  float64
}

func NewTransform(b *Body) *Transform {
	return &Transform{body: b}
}

func (t *Transform) RotateY(deg float64) {
	t.yaw = math.Mod(t.yaw+deg, 360)
	if t.yaw < 0 {
		t.yaw += 360
	}
}

func (t *Transform) Yaw() float64 { return t.yaw }

// Mirrored reports whether the character currently faces left.
func (t *Transform) Mirrored() bool {
	return math.Cos(t.yaw*math.Pi/180) < 0
}

// Anchor returns a point attached to the body at offset, mirrored with the
// transform.
func (t *Transform) Anchor(offset cp.Vector) controller.Anchor {
	return &anchor{t: t, offset: offset}
}

type anchor struct {
	t      *Transform
	offset cp.Vector
}

func (a *anchor) Position() cp.Vector {
	off := a.offset
	if a.t.Mirrored() {
		off.X = -off.X
	}
	return a.t.body.Position().Add(off)
}

var _ controller.Transform = (*Transform)(nil)
