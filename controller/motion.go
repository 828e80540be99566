package controller

import (
	"math"

	"github.com/jakecoffman/cp"
)

// resolveMotion applies the horizontal movement rule for this physics tick,
// then the wall-slide clamp. The first matching case wins.
func (c *Controller) resolveMotion() {
	s := &c.state
	cfg := &c.cfg
	body := c.deps.Body
	axis := c.frame.Axis
	wallJumping := s.WallJumpTicks > 0

	v := body.Velocity()
	switch {
	case s.Grounded && !wallJumping:
		body.SetVelocity(axis*s.Speed, v.Y)
	case !s.Grounded && !s.WallSliding && axis != 0 && !wallJumping:
		body.ApplyForce(cp.Vector{X: cfg.AirMovementForce * axis})
		v = body.Velocity()
		if math.Abs(v.X) > s.Speed {
			body.SetVelocity(s.Speed*axis, v.Y)
		}
	case !s.Grounded && !s.WallSliding && axis == 0:
		body.SetVelocity(v.X*cfg.AirDragMultiplier, v.Y)
	case wallJumping:
		body.SetVelocity(axis*s.Speed, v.Y)
	}
	if wallJumping {
		s.WallJumpTicks--
	}

	if s.WallSliding {
		v = body.Velocity()
		if v.Y < -cfg.WallSlideSpeed {
			body.SetVelocity(v.X, -cfg.WallSlideSpeed)
		}
	}
}

// jump dispatches a jump press. Plain jump, wall-hop and wall-jump are
// checked in that order and none fires without CanJump.
func (c *Controller) jump() {
	s := &c.state
	cfg := &c.cfg
	body := c.deps.Body
	axis := c.frame.Axis

	if !s.CanJump {
		return
	}

	switch {
	case !s.WallSliding:
		v := body.Velocity()
		body.SetVelocity(v.X, cfg.JumpForce)
		s.spendJump()
	case s.WallSliding && axis == 0:
		s.WallSliding = false
		s.spendJump()
		body.ApplyImpulse(cp.Vector{
			X: cfg.WallHopForce * cfg.WallHopDirection.X * float64(-s.Facing),
			Y: cfg.WallHopForce * cfg.WallHopDirection.Y,
		})
	case (s.WallSliding || s.TouchingWall) && axis != 0:
		s.WallSliding = false
		s.spendJump()
		body.ApplyImpulse(cp.Vector{
			X: cfg.WallJumpForce * cfg.WallJumpDirection.X * axis,
			Y: cfg.WallJumpForce * cfg.WallJumpDirection.Y,
		})
		s.WallJumpTicks = cfg.WallJumpTicks
	default:
		return
	}

	// the budget was just spent, eligibility waits for the next derive
	s.CanJump = cfg.MultiJump && s.JumpsRemaining > 0
}

// cutJump shortens the jump arc when jump is released early.
func (c *Controller) cutJump() {
	body := c.deps.Body
	v := body.Velocity()
	body.SetVelocity(v.X, v.Y*c.cfg.VariableJumpHeightMultiplier)
}
