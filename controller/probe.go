package controller

import "github.com/jakecoffman/cp"

// probe re-samples ground and wall contact for the next tick.
func (c *Controller) probe() {
	s := &c.state
	q := c.deps.Collision

	s.Grounded = q.OverlapCircle(c.deps.GroundCheck.Position(), c.cfg.GroundCheckRadius, c.cfg.GroundMask)
	s.TouchingWall = q.Raycast(c.deps.WallCheck.Position(), c.facingAxis(), c.cfg.WallCheckDistance, c.cfg.GroundMask)

	// a slide ends the moment the feet find ground
	if s.Grounded {
		s.WallSliding = false
	}
}

func (c *Controller) facingAxis() cp.Vector {
	return cp.Vector{X: float64(c.state.Facing)}
}

// DrawGizmos draws the ground circle and the wall ray.
func (c *Controller) DrawGizmos(o DebugOverlay) {
	if o == nil {
		return
	}
	ground := c.deps.GroundCheck.Position()
	o.DrawWireCircle(ground, c.cfg.GroundCheckRadius)

	wall := c.deps.WallCheck.Position()
	o.DrawLine(wall, wall.Add(c.facingAxis().Mult(c.cfg.WallCheckDistance)))
}
