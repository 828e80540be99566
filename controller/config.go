package controller

import "github.com/jakecoffman/cp"

// LayerGround is the default layer for surfaces that count as ground and wall.
const LayerGround LayerMask = 1

// Config holds per-character movement tuning. It is copied into the
// controller; later changes to the caller's value have no effect.
type Config struct {
	WalkSpeed       float64
	SprintSpeed     float64
	WalkAnimSpeed   float64
	SprintAnimSpeed float64

	JumpForce                    float64
	AirMovementForce             float64
	AirDragMultiplier            float64
	VariableJumpHeightMultiplier float64
	ExtraJumps                   int
	MultiJump                    bool

	WallSlideSpeed    float64
	WallHopForce      float64
	WallJumpForce     float64
	WallHopDirection  cp.Vector
	WallJumpDirection cp.Vector
	// WallJumpTicks is how many physics ticks a wall-jump keeps overriding
	// horizontal velocity with axis * speed.
	WallJumpTicks int

	GroundCheckRadius float64
	WallCheckDistance float64
	// WalkDeadZone is the horizontal speed at or above which the character
	// counts as walking.
	WalkDeadZone float64
	GroundMask   LayerMask
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		WalkSpeed:       10,
		SprintSpeed:     15,
		WalkAnimSpeed:   1,
		SprintAnimSpeed: 1.5,

		JumpForce:                    16,
		AirMovementForce:             50,
		AirDragMultiplier:            0.95,
		VariableJumpHeightMultiplier: 0.5,
		ExtraJumps:                   1,
		MultiJump:                    false,

		WallSlideSpeed:    2,
		WallHopForce:      10,
		WallJumpForce:     20,
		WallHopDirection:  cp.Vector{X: 1, Y: 0.5},
		WallJumpDirection: cp.Vector{X: 1, Y: 2},
		WallJumpTicks:     10,

		GroundCheckRadius: 0.3,
		WallCheckDistance: 0.4,
		WalkDeadZone:      0.2,
		GroundMask:        LayerGround,
	}
}

func (c Config) normalized() Config {
	c.WallHopDirection = unit(c.WallHopDirection)
	c.WallJumpDirection = unit(c.WallJumpDirection)
	if c.ExtraJumps < 0 {
		c.ExtraJumps = 0
	}
	if c.WallJumpTicks < 0 {
		c.WallJumpTicks = 0
	}
	return c
}

func unit(v cp.Vector) cp.Vector {
	if v.Length() == 0 {
		return v
	}
	return v.Normalize()
}
