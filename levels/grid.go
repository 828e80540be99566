package levels

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
	"github.com/solarlune/resolv"
)

const tagSolid = "solid"

// Grid answers ground and wall queries against a level's merged solid rects
// stored in a resolv space. Coordinates stay in world units, y up; the space
// itself is laid out in pixels.
type Grid struct {
	Space *resolv.Space
	scale float64
}

// NewGrid builds a Grid for lvl.
func NewGrid(lvl *Level) *Grid {
	ts := lvl.TileSize
	if ts <= 0 {
		ts = 32
	}
	scale := float64(ts)
	space := resolv.NewSpace(lvl.Width*ts, lvl.Height*ts, ts, ts)

	rects := lvl.SolidRects()
	for _, r := range rects {
		obj := resolv.NewObject(r.L*scale, r.B*scale, r.W()*scale, r.H()*scale, tagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W()*scale, r.H()*scale))
		space.Add(obj)
	}

	log.Printf("levels: grid %s: %d solid rects, %dx%d tiles", lvl.Name, len(rects), lvl.Width, lvl.Height)

	return &Grid{Space: space, scale: scale}
}

// OverlapCircle reports whether any solid rect touches the circle.
func (g *Grid) OverlapCircle(center cp.Vector, radius float64, mask controller.LayerMask) bool {
	if mask&controller.LayerGround == 0 {
		return false
	}
	cx, cy, r := center.X*g.scale, center.Y*g.scale, radius*g.scale
	for _, obj := range g.near(cx-r, cy-r, cx+r, cy+r) {
		nx := clamp(cx, obj.X, obj.X+obj.W)
		ny := clamp(cy, obj.Y, obj.Y+obj.H)
		dx, dy := cx-nx, cy-ny
		if dx*dx+dy*dy <= r*r {
			return true
		}
	}
	return false
}

// Raycast reports whether the segment from origin along dir for distance
// world units hits a solid rect.
func (g *Grid) Raycast(origin, dir cp.Vector, distance float64, mask controller.LayerMask) bool {
	if mask&controller.LayerGround == 0 || distance <= 0 {
		return false
	}
	l := dir.Length()
	if l == 0 {
		return false
	}
	dir = dir.Mult(1 / l)
	x0, y0 := origin.X*g.scale, origin.Y*g.scale
	dx, dy := dir.X*distance*g.scale, dir.Y*distance*g.scale
	for _, obj := range g.near(math.Min(x0, x0+dx), math.Min(y0, y0+dy), math.Max(x0, x0+dx), math.Max(y0, y0+dy)) {
		if hit, _ := segmentAABBHit(x0, y0, dx, dy, obj.X, obj.Y, obj.X+obj.W, obj.Y+obj.H); hit {
			return true
		}
	}
	return false
}

// near returns the solid objects registered in the cells overlapping the
// pixel box, padded by a pixel since objects register up to their far edge
// minus one.
func (g *Grid) near(minX, minY, maxX, maxY float64) []*resolv.Object {
	x0, y0 := g.Space.WorldToSpace(minX-1, minY-1)
	x1, y1 := g.Space.WorldToSpace(maxX+1, maxY+1)

	var objs []*resolv.Object
	seen := make(map[*resolv.Object]bool)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cell := g.Space.Cell(x, y)
			if cell == nil || !cell.ContainsTags(tagSolid) {
				continue
			}
			for _, obj := range cell.Objects {
				if seen[obj] || !obj.HasTags(tagSolid) {
					continue
				}
				seen[obj] = true
				objs = append(objs, obj)
			}
		}
	}
	return objs
}

// segmentAABBHit is the slab test for the segment p0 + t*d, t in [0, 1].
func segmentAABBHit(x0, y0, dx, dy, minX, minY, maxX, maxY float64) (bool, float64) {
	tmin := 0.0
	tmax := 1.0

	if dx != 0 {
		invD := 1.0 / dx
		t1 := (minX - x0) * invD
		t2 := (maxX - x0) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	} else if x0 < minX || x0 > maxX {
		return false, 0
	}

	if dy != 0 {
		invD := 1.0 / dy
		t1 := (minY - y0) * invD
		t2 := (maxY - y0) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	} else if y0 < minY || y0 > maxY {
		return false, 0
	}

	if tmax >= tmin {
		return true, tmin
	}
	return false, 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
