package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/camera"
	"github.com/milk9111/platformer/controller"
	"golang.org/x/image/colornames"
)

// Overlay draws controller probe gizmos onto a screen image.
type Overlay struct {
	screen *ebiten.Image
	cam    *camera.Camera
	Color  color.Color
}

func NewOverlay(screen *ebiten.Image, cam *camera.Camera) *Overlay {
	return &Overlay{screen: screen, cam: cam, Color: colornames.Yellow}
}

func (o *Overlay) DrawWireCircle(center cp.Vector, radius float64) {
	x, y := o.cam.WorldToScreen(center.X, center.Y)
	r := radius * o.cam.Zoom()
	vector.StrokeCircle(o.screen, float32(x), float32(y), float32(r), 1, o.Color, true)
}

func (o *Overlay) DrawLine(a, b cp.Vector) {
	ax, ay := o.cam.WorldToScreen(a.X, a.Y)
	bx, by := o.cam.WorldToScreen(b.X, b.Y)
	vector.StrokeLine(o.screen, float32(ax), float32(ay), float32(bx), float32(by), 1, o.Color, true)
}

var _ controller.DebugOverlay = (*Overlay)(nil)
