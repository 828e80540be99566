package controller

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/input"
)

// derive recomputes the discrete flags from the latest probe results, the
// sampled input and the body velocity. It reports whether the character
// turned around.
func (s *State) derive(cfg *Config, in input.Frame, vel cp.Vector) bool {
	if s.TouchingWall && !s.Grounded && vel.Y < 0 {
		s.WallSliding = true
		s.WallJumpTicks = 0
	} else {
		s.WallSliding = false
	}

	// checked every tick, not only on landing
	if s.Grounded || s.WallSliding {
		s.JumpsRemaining = cfg.ExtraJumps
	}

	if cfg.MultiJump {
		s.CanJump = s.JumpsRemaining > 0
	} else {
		s.CanJump = s.Grounded
	}

	flipped := false
	if !s.WallSliding && ((s.FacingRight && in.Axis < 0) || (!s.FacingRight && in.Axis > 0)) {
		s.flip()
		flipped = true
	}

	s.Walking = math.Abs(vel.X) >= cfg.WalkDeadZone
	return flipped
}

// updateSprint applies the sprint edges. Sprint only starts on the ground but
// a release always stops it. It returns the new animation rate when sprint
// toggled.
func (s *State) updateSprint(cfg *Config, in input.Frame) (float64, bool) {
	if s.Grounded && in.SprintHeld && !s.Sprinting {
		s.Sprinting = true
		s.Speed = cfg.SprintSpeed
		return cfg.SprintAnimSpeed, true
	}
	if in.SprintReleased && s.Sprinting {
		s.Sprinting = false
		s.Speed = cfg.WalkSpeed
		return cfg.WalkAnimSpeed, true
	}
	return 0, false
}
