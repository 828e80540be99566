package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/input"
)

var (
	ErrNoBody      = errors.New("controller: physics body is required")
	ErrNoAnimator  = errors.New("controller: animation player is required")
	ErrNoCollision = errors.New("controller: collision query is required")
	ErrNoAnchor    = errors.New("controller: probe anchor is required")
)

// LayerMask selects which collision layers a probe reacts to.
type LayerMask uint

// Body is the physics body the controller drives. Integration happens
// outside the controller, between ticks.
type Body interface {
	Velocity() cp.Vector
	SetVelocity(x, y float64)
	// ApplyImpulse changes velocity immediately.
	ApplyImpulse(impulse cp.Vector)
	// ApplyForce accumulates a force for the next integration step.
	ApplyForce(force cp.Vector)
}

// CollisionQuery answers probe questions against static geometry.
type CollisionQuery interface {
	OverlapCircle(center cp.Vector, radius float64, mask LayerMask) bool
	Raycast(origin, dir cp.Vector, distance float64, mask LayerMask) bool
}

// AnimationPlayer receives clip selection and parameter updates.
type AnimationPlayer interface {
	Play(clip string)
	SetBool(name string, v bool)
	SetFloat(name string, v float64)
	SetSpeed(rate float64)
}

// Anchor is a point that follows the character, such as the ground check.
type Anchor interface {
	Position() cp.Vector
}

// Transform is the visual transform that is turned around on a flip.
type Transform interface {
	RotateY(degrees float64)
}

// DebugOverlay draws probe geometry. It has no effect on behavior.
type DebugOverlay interface {
	DrawWireCircle(center cp.Vector, radius float64)
	DrawLine(a, b cp.Vector)
}

// Deps are the collaborators handed to New.
type Deps struct {
	Body        Body
	Animator    AnimationPlayer
	Collision   CollisionQuery
	GroundCheck Anchor
	WallCheck   Anchor

	// Optional.
	Transform Transform
	Input     input.Device
	Logger    *log.Logger
}

func (d Deps) validate() error {
	switch {
	case d.Body == nil:
		return ErrNoBody
	case d.Animator == nil:
		return ErrNoAnimator
	case d.Collision == nil:
		return ErrNoCollision
	case d.GroundCheck == nil:
		return fmt.Errorf("%w: ground check", ErrNoAnchor)
	case d.WallCheck == nil:
		return fmt.Errorf("%w: wall check", ErrNoAnchor)
	}
	return nil
}
