package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
)

// Body adapts a dynamic chipmunk body to controller.Body.
type Body struct {
	body          *cp.Body
	shape         *cp.Shape
	width, height float64
}

func (b *Body) Velocity() cp.Vector { return b.body.Velocity() }

// SetVelocity sets the velocity less any part of it pointing into a surface
// the body touched on the last step. Chipmunk moves positions before it
// solves contacts, so a velocity driven into a wall every tick would sink
// the box deeper each step until it came out the other side.
func (b *Body) SetVelocity(x, y float64) {
	b.body.SetVelocityVector(b.slide(cp.Vector{X: x, Y: y}))
}

// ApplyImpulse changes velocity by j, with the same contact rule as
// SetVelocity.
func (b *Body) ApplyImpulse(j cp.Vector) {
	b.body.ApplyImpulseAtLocalPoint(j, cp.Vector{})
	b.body.SetVelocityVector(b.slide(b.body.Velocity()))
}

// slide removes the components of v along the normals of current contacts.
// Arbiter normals point from this body toward the other shape.
func (b *Body) slide(v cp.Vector) cp.Vector {
	b.body.EachArbiter(func(arb *cp.Arbiter) {
		if arb.Count() == 0 {
			return
		}
		n := arb.Normal()
		if into := v.Dot(n); into > 0 {
			v = v.Sub(n.Mult(into))
		}
	})
	return v
}

// ApplyForce accumulates f until the next step; chipmunk clears forces after
// integrating.
func (b *Body) ApplyForce(f cp.Vector) {
	b.body.ApplyForceAtLocalPoint(f, cp.Vector{})
}

func (b *Body) Position() cp.Vector { return b.body.Position() }

func (b *Body) SetPosition(p cp.Vector) { b.body.SetPosition(p) }

// Size returns the collision box dimensions.
func (b *Body) Size() (float64, float64) { return b.width, b.height }

// Shape returns the collision shape.
func (b *Body) Shape() *cp.Shape { return b.shape }

// Reset teleports the body to p and stops it.
func (b *Body) Reset(p cp.Vector) {
	b.body.SetPosition(p)
	b.body.SetVelocity(0, 0)
}

// Lost reports whether the body has left the level vertically or its state
// is no longer finite.
func (b *Body) Lost(floor float64) bool {
	p, v := b.body.Position(), b.body.Velocity()
	for _, f := range []float64{p.X, p.Y, v.X, v.Y} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return true
		}
	}
	return p.Y < floor
}

var _ controller.Body = (*Body)(nil)
