// Package controller turns input and ground/wall probes into velocity changes
// on a physics body for a 2D platformer character.
//
// A frame driver calls OnInputTick at input rate and OnPhysicsTick at the
// fixed physics rate, in that order within a frame. The physics body is
// integrated by its owner between ticks.
package controller

import (
	"fmt"

	"github.com/milk9111/platformer/input"
)

// Controller owns the motion state of one character.
type Controller struct {
	cfg   Config
	deps  Deps
	state State
	frame input.Frame
	last  Locomotion
}

// New validates deps and returns a controller facing right at walk speed.
func New(cfg Config, deps Deps) (*Controller, error) {
	if err := deps.validate(); err != nil {
		return nil, fmt.Errorf("controller: new: %w", err)
	}
	cfg = cfg.normalized()
	c := &Controller{
		cfg:  cfg,
		deps: deps,
	}
	c.state = newState(&c.cfg)
	c.last = c.state.Locomotion()
	return c, nil
}

// OnInputTick samples input, derives the discrete state, dispatches jump and
// sprint edges and publishes animation.
func (c *Controller) OnInputTick() {
	c.frame = input.Sample(c.deps.Input)

	if c.state.derive(&c.cfg, c.frame, c.deps.Body.Velocity()) && c.deps.Transform != nil {
		c.deps.Transform.RotateY(180)
	}

	if c.frame.JumpPressed {
		c.jump()
	}
	if c.frame.JumpReleased {
		c.cutJump()
	}

	if rate, ok := c.state.updateSprint(&c.cfg, c.frame); ok {
		c.deps.Animator.SetSpeed(rate)
	}

	c.publishAnimation()
	c.logTransition()
}

// OnPhysicsTick resolves velocity for the tick and then re-probes the world
// for the next one.
func (c *Controller) OnPhysicsTick() {
	c.resolveMotion()
	c.probe()
}

// State returns a copy of the current motion state.
func (c *Controller) State() State { return c.state }

// Config returns the normalized config in use.
func (c *Controller) Config() Config { return c.cfg }

// Frame returns the input sampled on the last input tick.
func (c *Controller) Frame() input.Frame { return c.frame }

// Reconfigure swaps the tuning between ticks, keeping the motion state. The
// jump budget is clamped to the new maximum; movement speed and animation
// rate follow the current sprint state.
func (c *Controller) Reconfigure(cfg Config) {
	c.cfg = cfg.normalized()
	if c.state.JumpsRemaining > c.cfg.ExtraJumps {
		c.state.JumpsRemaining = c.cfg.ExtraJumps
	}
	if c.state.WallJumpTicks > c.cfg.WallJumpTicks {
		c.state.WallJumpTicks = c.cfg.WallJumpTicks
	}
	if c.state.Sprinting {
		c.state.Speed = c.cfg.SprintSpeed
		c.deps.Animator.SetSpeed(c.cfg.SprintAnimSpeed)
	} else {
		c.state.Speed = c.cfg.WalkSpeed
		c.deps.Animator.SetSpeed(c.cfg.WalkAnimSpeed)
	}
}

// Resync re-probes the world after the owner moved the body, for example on
// a respawn. A slide or wall-jump in progress is dropped.
func (c *Controller) Resync() {
	c.state.WallSliding = false
	c.state.WallJumpTicks = 0
	c.probe()
}

func (c *Controller) logTransition() {
	cur := c.state.Locomotion()
	if cur == c.last {
		return
	}
	if c.deps.Logger != nil {
		c.deps.Logger.Printf("controller: %s -> %s", c.last, cur)
	}
	c.last = cur
}
