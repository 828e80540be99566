// Package physics wraps a chipmunk space built from a level and adapts its
// bodies and queries to the controller's collaborator interfaces.
package physics

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/levels"
)

const DefaultGravity = -40.0

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeCharacter
)

// Shape categories. CategoryGround matches controller.LayerGround so probe
// masks can be passed straight through as chipmunk filter masks.
const (
	CategoryGround    = uint(controller.LayerGround)
	CategoryCharacter = uint(1 << 1)
)

const solidFriction = 0.8

// World owns the chipmunk space and its static collision shapes.
type World struct {
	space *cp.Space
}

// NewWorld creates an empty space with the given vertical gravity.
func NewWorld(gravity float64) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &World{space: space}
}

// NewWorldFromLevel builds static boxes for the level's solid tiles plus
// segments along its outer edges.
func NewWorldFromLevel(lvl *levels.Level) *World {
	g := lvl.Gravity
	if g == 0 {
		g = DefaultGravity
	}
	w := NewWorld(g)
	rects := lvl.SolidRects()
	for _, r := range rects {
		w.AddStaticBox(r)
	}
	w.AddBounds(float64(lvl.Width), float64(lvl.Height))
	log.Printf("physics: world %s: %d static boxes, gravity %.1f", lvl.Name, len(rects), g)
	return w
}

// Space returns the underlying chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// AddStaticBox adds a solid ground box.
func (w *World) AddStaticBox(r levels.Rect) *cp.Shape {
	shape := cp.NewBox2(w.space.StaticBody, cp.BB{L: r.L, B: r.B, R: r.R, T: r.T}, 0)
	w.addSolid(shape)
	return shape
}

// AddBounds adds thin segments around [0,width] x [0,height].
func (w *World) AddBounds(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	const thickness = 0.05
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: width, Y: 0}},
		{a: cp.Vector{X: 0, Y: height}, b: cp.Vector{X: width, Y: height}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: height}},
		{a: cp.Vector{X: width, Y: 0}, b: cp.Vector{X: width, Y: height}},
	}
	for _, seg := range segments {
		w.addSolid(cp.NewSegment(w.space.StaticBody, seg.a, seg.b, thickness))
	}
}

func (w *World) addSolid(shape *cp.Shape) {
	shape.SetFriction(solidFriction)
	shape.SetCollisionType(collisionTypeSolid)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, CategoryGround, cp.ALL_CATEGORIES))
	w.space.AddShape(shape)
}

// AddCharacter adds a box body of the given size centered on pos. Rotation is
// locked and the shape is frictionless so the controller owns horizontal
// speed.
func (w *World) AddCharacter(pos cp.Vector, width, height float64) *Body {
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(pos)
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeCharacter)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, CategoryCharacter, cp.ALL_CATEGORIES))
	w.space.AddBody(body)
	w.space.AddShape(shape)
	return &Body{body: body, shape: shape, width: width, height: height}
}

// Step advances the simulation.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil {
		return
	}
	w.space.Step(dt)
}

// OverlapCircle reports whether any shape in mask lies within radius of
// center.
func (w *World) OverlapCircle(center cp.Vector, radius float64, mask controller.LayerMask) bool {
	info := w.space.PointQueryNearest(center, radius, queryFilter(mask))
	return info != nil && info.Shape != nil
}

// Raycast reports whether a segment from origin along dir for distance hits
// a shape in mask. An origin already inside such a shape counts as a hit;
// contacts settle with a little overlap, so a probe on the body's edge often
// starts inside the wall it touches.
func (w *World) Raycast(origin, dir cp.Vector, distance float64, mask controller.LayerMask) bool {
	if distance <= 0 || dir.Length() == 0 {
		return false
	}
	filter := queryFilter(mask)
	if inside := w.space.PointQueryNearest(origin, 0, filter); inside != nil && inside.Shape != nil {
		return true
	}
	end := origin.Add(dir.Normalize().Mult(distance))
	info := w.space.SegmentQueryFirst(origin, end, 0, filter)
	return info.Shape != nil
}

// DebugDraw feeds every shape in the space to d.
func (w *World) DebugDraw(d cp.Drawer) {
	if w == nil || w.space == nil || d == nil {
		return
	}
	cp.DrawSpace(w.space, d)
}

func queryFilter(mask controller.LayerMask) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
}
