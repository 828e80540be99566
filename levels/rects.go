package levels

// Rect is an axis-aligned box in world units, y up.
type Rect struct {
	L, B, R, T float64
}

func (r Rect) W() float64 { return r.R - r.L }
func (r Rect) H() float64 { return r.T - r.B }

// SolidRects merges contiguous solid tiles into as few rectangles as a
// greedy row-then-column sweep finds, converted to world units.
func (l *Level) SolidRects() []Rect {
	if l == nil || l.Width <= 0 || l.Height <= 0 {
		return nil
	}
	var rects []Rect
	processed := make([]bool, l.Width*l.Height)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			idx := y*l.Width + x
			if processed[idx] {
				continue
			}
			if l.Tiles[idx] == 0 {
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < l.Width {
				idx2 := y*l.Width + (x + w)
				if processed[idx2] || l.Tiles[idx2] == 0 {
					break
				}
				w++
			}

			h := 1
		heightLoop:
			for y+h < l.Height {
				for xi := x; xi < x+w; xi++ {
					idx2 := (y+h)*l.Width + xi
					if processed[idx2] || l.Tiles[idx2] == 0 {
						break heightLoop
					}
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*l.Width+xx] = true
				}
			}

			// Tile rows grow downward; world y grows upward.
			top := float64(l.Height - y)
			rects = append(rects, Rect{
				L: float64(x),
				B: top - float64(h),
				R: float64(x + w),
				T: top,
			})
		}
	}
	return rects
}
