package levels

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
)

func TestLoadEmbedded(t *testing.T) {
	cases := []struct {
		file          string
		width, height int
		solid         int
		spawnX        float64
		spawnY        float64
	}{
		{"arena.json", 40, 12, 125, 3.5, 3.5},
		{"tower.tmx", 20, 16, 81, 9.5, 2.5},
	}

	for _, c := range cases {
		t.Run(c.file, func(t *testing.T) {
			lvl, err := LoadLevelFromFS(LevelsFS, c.file)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if lvl.Width != c.width || lvl.Height != c.height {
				t.Fatalf("size %dx%d, want %dx%d", lvl.Width, lvl.Height, c.width, c.height)
			}
			if lvl.TileSize != 32 {
				t.Fatalf("tile size %d, want 32", lvl.TileSize)
			}
			n := 0
			for _, v := range lvl.Tiles {
				if v != 0 {
					n++
				}
			}
			if n != c.solid {
				t.Fatalf("solid tiles %d, want %d", n, c.solid)
			}
			x, y := lvl.Spawn()
			if x != c.spawnX || y != c.spawnY {
				t.Fatalf("spawn (%v,%v), want (%v,%v)", x, y, c.spawnX, c.spawnY)
			}
		})
	}
}

func TestNamesListsEmbeddedLevels(t *testing.T) {
	names, err := Names(LevelsFS)
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	want := []string{"arena.json", "tower.tmx"}
	if len(names) != len(want) {
		t.Fatalf("names %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names %v, want %v", names, want)
		}
	}
}

func TestLoadJSONErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"nospawn.json": {Data: []byte(`{"width":2,"height":1,"tile_size":16,"layers":[[1,0]]}`)},
		"garbage.json": {Data: []byte(`{"width":`)},
		"empty.json":   {Data: []byte(`{"width":0,"height":0}`)},
		"level.txt":    {Data: []byte(`x`)},
	}

	if _, err := LoadLevelFromFS(fsys, "nospawn.json"); !errors.Is(err, ErrNoSpawn) {
		t.Fatalf("nospawn: err = %v, want ErrNoSpawn", err)
	}
	for _, name := range []string{"garbage.json", "empty.json", "level.txt", "missing.json"} {
		if _, err := LoadLevelFromFS(fsys, name); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadJSONPhysicsLayersOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"l.json": {Data: []byte(`{
			"width": 3, "height": 1,
			"layers": [[1,0,0],[0,1,0]],
			"layer_meta": [{"physics": false},{"physics": true}],
			"entities": [{"type":"spawn","x":2,"y":0}]
		}`)},
	}
	lvl, err := LoadLevelFromFS(fsys, "l.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if lvl.Solid(0, 0) || !lvl.Solid(1, 0) || lvl.Solid(2, 0) {
		t.Fatalf("tiles = %v, want only the physics layer", lvl.Tiles)
	}
	if lvl.TileSize != 32 {
		t.Fatalf("default tile size %d, want 32", lvl.TileSize)
	}
	if lvl.Solid(-1, 0) || lvl.Solid(3, 0) || lvl.Solid(0, 1) {
		t.Fatalf("out of range should be empty")
	}
}

func TestSolidRectsCoverEveryTileOnce(t *testing.T) {
	for _, file := range []string{"arena.json", "tower.tmx"} {
		t.Run(file, func(t *testing.T) {
			lvl, err := LoadLevelFromFS(LevelsFS, file)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			covered := make([]int, lvl.Width*lvl.Height)
			for _, r := range lvl.SolidRects() {
				for wy := int(r.B); wy < int(r.T); wy++ {
					for x := int(r.L); x < int(r.R); x++ {
						row := lvl.Height - wy - 1
						covered[row*lvl.Width+x]++
					}
				}
			}
			for i, n := range covered {
				want := 0
				if lvl.Tiles[i] != 0 {
					want = 1
				}
				if n != want {
					t.Fatalf("tile %d,%d covered %d times, want %d", i%lvl.Width, i/lvl.Width, n, want)
				}
			}
		})
	}
}

func TestSolidRectsMergesRows(t *testing.T) {
	lvl := &Level{Width: 3, Height: 2, Tiles: []int{
		0, 0, 0,
		1, 1, 1,
	}}
	rects := lvl.SolidRects()
	if len(rects) != 1 {
		t.Fatalf("rects = %v, want one", rects)
	}
	if got, want := rects[0], (Rect{L: 0, B: 0, R: 3, T: 1}); got != want {
		t.Fatalf("rect = %+v, want %+v", got, want)
	}
}

func TestGridQueries(t *testing.T) {
	lvl, err := LoadLevelFromFS(LevelsFS, "arena.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	g := NewGrid(lvl)
	right := cp.Vector{X: 1}

	cases := []struct {
		name string
		got  bool
		want bool
	}{
		{"feet_on_floor", g.OverlapCircle(cp.Vector{X: 3.5, Y: 2.1}, 0.3, controller.LayerGround), true},
		{"in_air", g.OverlapCircle(cp.Vector{X: 3.5, Y: 3}, 0.3, controller.LayerGround), false},
		{"masked_out", g.OverlapCircle(cp.Vector{X: 3.5, Y: 2.1}, 0.3, 0), false},
		{"ray_reaches_pillar", g.Raycast(cp.Vector{X: 24.5, Y: 5}, right, 1, controller.LayerGround), true},
		{"ray_short", g.Raycast(cp.Vector{X: 24, Y: 5}, right, 0.5, controller.LayerGround), false},
		{"ray_away", g.Raycast(cp.Vector{X: 24.5, Y: 5}, cp.Vector{X: -1}, 1, controller.LayerGround), false},
		{"ray_zero_dir", g.Raycast(cp.Vector{X: 24.5, Y: 5}, cp.Vector{}, 1, controller.LayerGround), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Fatalf("got %v, want %v", c.got, c.want)
			}
		})
	}

	t.Run("near_uses_cells", func(t *testing.T) {
		ts := float64(lvl.TileSize)
		// open air between the platform and the pillar
		if objs := g.near(18*ts, 5*ts, 19*ts, 6*ts); len(objs) != 0 {
			t.Fatalf("expected no solids near open air, got %d", len(objs))
		}
		objs := g.near(25.5*ts, 5*ts, 25.6*ts, 5.1*ts)
		if len(objs) != 1 {
			t.Fatalf("expected only the pillar, got %d objects", len(objs))
		}
		if all := len(g.Space.Objects()); all <= len(objs) {
			t.Fatalf("space holds %d objects, want more than the %d near the pillar", all, len(objs))
		}
	})
}
