package controller

// Clip and parameter names published to the animation player.
const (
	ClipIdle = "Idle"
	ClipWalk = "Walk"

	ParamGrounded    = "isGrounded"
	ParamWallSliding = "isWallSliding"
	ParamYVelocity   = "yVelocity"
)

// publishAnimation selects a clip while grounded and pushes the continuous
// parameters. Airborne visuals are left to the parameters.
func (c *Controller) publishAnimation() {
	s := &c.state
	a := c.deps.Animator

	if s.Grounded {
		if s.Walking {
			a.Play(ClipWalk)
		} else {
			a.Play(ClipIdle)
		}
	}

	a.SetBool(ParamGrounded, s.Grounded)
	a.SetBool(ParamWallSliding, s.WallSliding)
	a.SetFloat(ParamYVelocity, c.deps.Body.Velocity().Y)
}
