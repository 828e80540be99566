package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
)

const (
	CharacterWidth  = 0.7
	CharacterHeight = 1.4
)

// Character bundles a body with its transform and the spawn it resets to.
type Character struct {
	Body      *Body
	Transform *Transform
	Spawn     cp.Vector
}

// SpawnCharacter adds a default-sized character at spawn.
func (w *World) SpawnCharacter(spawn cp.Vector) *Character {
	b := w.AddCharacter(spawn, CharacterWidth, CharacterHeight)
	return &Character{Body: b, Transform: NewTransform(b), Spawn: spawn}
}

// Deps wires the character into controller deps, probing against w. The
// ground check sits at the feet and the wall check at the front edge.
func (c *Character) Deps(w *World, anim controller.AnimationPlayer) controller.Deps {
	width, height := c.Body.Size()
	return controller.Deps{
		Body:        c.Body,
		Animator:    anim,
		Collision:   w,
		GroundCheck: c.Transform.Anchor(cp.Vector{X: 0, Y: -height / 2}),
		WallCheck:   c.Transform.Anchor(cp.Vector{X: width / 2, Y: 0}),
		Transform:   c.Transform,
	}
}

// Respawn puts the character back at its spawn if it fell out of the level.
// It reports whether it did.
func (c *Character) Respawn(floor float64) bool {
	if !c.Body.Lost(floor) {
		return false
	}
	c.Body.Reset(c.Spawn)
	return true
}
