package camera

import "testing"

func TestWorldToScreenFlipsY(t *testing.T) {
	c := New(200, 100, 10)
	c.SnapTo(5, 5)

	cases := []struct {
		name   string
		x, y   float64
		sx, sy float64
	}{
		{"center", 5, 5, 100, 50},
		{"up_is_up", 5, 6, 100, 40},
		{"right", 7, 5, 120, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sx, sy := c.WorldToScreen(tc.x, tc.y)
			if sx != tc.sx || sy != tc.sy {
				t.Fatalf("(%v,%v) -> (%v,%v), want (%v,%v)", tc.x, tc.y, sx, sy, tc.sx, tc.sy)
			}
			x, y := c.ScreenToWorld(sx, sy)
			if x != tc.x || y != tc.y {
				t.Fatalf("round trip (%v,%v)", x, y)
			}
		})
	}
}

func TestClampToWorld(t *testing.T) {
	cases := []struct {
		name           string
		worldW, worldH float64
		target         [2]float64
		want           [2]float64
	}{
		{"inside", 100, 100, [2]float64{50, 50}, [2]float64{50, 50}},
		{"left_bottom_edge", 100, 100, [2]float64{0, 0}, [2]float64{10, 5}},
		{"right_top_edge", 100, 100, [2]float64{200, 200}, [2]float64{90, 95}},
		{"world_smaller_than_view", 8, 4, [2]float64{1, 1}, [2]float64{4, 2}},
		{"unbounded", 0, 0, [2]float64{-30, 7}, [2]float64{-30, 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(200, 100, 10)
			c.SetWorldBounds(tc.worldW, tc.worldH)
			c.SnapTo(tc.target[0], tc.target[1])
			if c.PosX != tc.want[0] || c.PosY != tc.want[1] {
				t.Fatalf("pos (%v,%v), want %v", c.PosX, c.PosY, tc.want)
			}
		})
	}
}

func TestUpdateSmoothsTowardTarget(t *testing.T) {
	c := New(200, 100, 10)
	c.SetSmooth(0.5)
	c.SnapTo(0, 0)
	c.Update(10, 0)
	if c.PosX != 5 {
		t.Fatalf("x = %v, want 5 after one half step", c.PosX)
	}
	c.SetSmooth(0)
	c.Update(-3, 2)
	if c.PosX != -3 || c.PosY != 2 {
		t.Fatalf("pos (%v,%v), want snap to target", c.PosX, c.PosY)
	}
}
