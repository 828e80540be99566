// Package camera maps world units (y up) to screen pixels (y down) and
// follows a target inside the level bounds.
package camera

import "math"

// Camera centers the view on PosX, PosY in world units.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	// pixels per world unit
	zoom float64

	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
	// world bounds in world units (0 means unbounded)
	worldW float64
	worldH float64
}

// New creates a camera for a logical screen size and pixels-per-unit zoom.
func New(screenW, screenH int, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{screenW: screenW, screenH: screenH, zoom: zoom, smooth: 0.15}
}

func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

func (c *Camera) Zoom() float64 { return c.zoom }

func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

func (c *Camera) ScreenSize() (int, int) { return c.screenW, c.screenH }

// SetWorldBounds sets the level size used to clamp the view.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = math.Max(0, math.Min(f, 1))
}

// Update moves the camera toward the target. Call once per fixed update.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX += (targetX - c.PosX) * c.smooth
		c.PosY += (targetY - c.PosY) * c.smooth
	}
	c.settle()
}

// SnapTo centers the camera immediately, e.g. after a level load.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.settle()
}

func (c *Camera) settle() {
	// align to whole screen pixels
	c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
	c.PosY = math.Round(c.PosY*c.zoom) / c.zoom

	halfW := float64(c.screenW) / c.zoom / 2
	halfH := float64(c.screenH) / c.zoom / 2
	if c.worldW > 0 {
		c.PosX = clampAxis(c.PosX, halfW, c.worldW)
	}
	if c.worldH > 0 {
		c.PosY = clampAxis(c.PosY, halfH, c.worldH)
	}
}

// clampAxis keeps a view of half-size half inside [0, size], centering when
// the world is smaller than the view.
func clampAxis(pos, half, size float64) float64 {
	lo, hi := half, size-half
	if hi < lo {
		return size / 2
	}
	return math.Max(lo, math.Min(pos, hi))
}

// WorldToScreen converts a world point to screen pixels.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	sx := (x-c.PosX)*c.zoom + float64(c.screenW)/2
	sy := float64(c.screenH)/2 - (y-c.PosY)*c.zoom
	return sx, sy
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	x := (sx-float64(c.screenW)/2)/c.zoom + c.PosX
	y := (float64(c.screenH)/2-sy)/c.zoom + c.PosY
	return x, y
}
