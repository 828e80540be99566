package controller

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/input"
)

type fakeBody struct {
	vel      cp.Vector
	force    cp.Vector
	impulses []cp.Vector
	forces   []cp.Vector
}

func (b *fakeBody) Velocity() cp.Vector      { return b.vel }
func (b *fakeBody) SetVelocity(x, y float64) { b.vel = cp.Vector{X: x, Y: y} }
func (b *fakeBody) ApplyImpulse(j cp.Vector) {
	b.impulses = append(b.impulses, j)
	b.vel = b.vel.Add(j)
}
func (b *fakeBody) ApplyForce(f cp.Vector) {
	b.forces = append(b.forces, f)
	b.force = b.force.Add(f)
}

// integrate applies accumulated forces to a unit mass, without gravity.
func (b *fakeBody) integrate(dt float64) {
	b.vel = b.vel.Add(b.force.Mult(dt))
	b.force = cp.Vector{}
}

type fakeAnimator struct {
	clips  []string
	bools  map[string]bool
	floats map[string]float64
	rates  []float64
}

func newFakeAnimator() *fakeAnimator {
	return &fakeAnimator{bools: map[string]bool{}, floats: map[string]float64{}}
}

func (a *fakeAnimator) Play(clip string)                { a.clips = append(a.clips, clip) }
func (a *fakeAnimator) SetBool(name string, v bool)     { a.bools[name] = v }
func (a *fakeAnimator) SetFloat(name string, v float64) { a.floats[name] = v }
func (a *fakeAnimator) SetSpeed(rate float64)           { a.rates = append(a.rates, rate) }

func (a *fakeAnimator) lastClip() string {
	if len(a.clips) == 0 {
		return ""
	}
	return a.clips[len(a.clips)-1]
}

type fakeWorld struct {
	grounded bool
	wall     bool
	rayDir   cp.Vector
	rayLen   float64
	radius   float64
}

func (w *fakeWorld) OverlapCircle(center cp.Vector, radius float64, mask LayerMask) bool {
	w.radius = radius
	return w.grounded
}

func (w *fakeWorld) Raycast(origin, dir cp.Vector, distance float64, mask LayerMask) bool {
	w.rayDir = dir
	w.rayLen = distance
	return w.wall
}

type point cp.Vector

func (p point) Position() cp.Vector { return cp.Vector(p) }

type fakeTransform struct {
	yaw       float64
	rotations int
}

func (t *fakeTransform) RotateY(deg float64) {
	t.yaw += deg
	t.rotations++
}

type fakeDevice struct {
	axis     float64
	pressed  map[input.Button]bool
	released map[input.Button]bool
	held     map[input.Button]bool
}

func newFakeDevice() *fakeDevice {
	d := &fakeDevice{}
	d.clear()
	return d
}

func (d *fakeDevice) clear() {
	d.axis = 0
	d.pressed = map[input.Button]bool{}
	d.released = map[input.Button]bool{}
	d.held = map[input.Button]bool{}
}

func (d *fakeDevice) Axis() float64                 { return d.axis }
func (d *fakeDevice) Pressed(b input.Button) bool  { return d.pressed[b] }
func (d *fakeDevice) Released(b input.Button) bool { return d.released[b] }
func (d *fakeDevice) Held(b input.Button) bool     { return d.held[b] }

type rig struct {
	c         *Controller
	body      *fakeBody
	anim      *fakeAnimator
	world     *fakeWorld
	transform *fakeTransform
	dev       *fakeDevice
}

func newRig(t *testing.T, cfg Config) *rig {
	t.Helper()
	r := &rig{
		body:      &fakeBody{},
		anim:      newFakeAnimator(),
		world:     &fakeWorld{},
		transform: &fakeTransform{},
		dev:       newFakeDevice(),
	}
	c, err := New(cfg, Deps{
		Body:        r.body,
		Animator:    r.anim,
		Collision:   r.world,
		GroundCheck: point{X: 0, Y: -1},
		WallCheck:   point{X: 0.5, Y: 0},
		Transform:   r.transform,
		Input:       r.dev,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.c = c
	return r
}

// settle runs a physics tick so the probe picks up the fake world flags.
func (r *rig) settle(grounded, wall bool) {
	r.world.grounded = grounded
	r.world.wall = wall
	r.c.probe()
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
