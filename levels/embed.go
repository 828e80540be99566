package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.json *.tmx
var LevelsFS embed.FS

var ErrNoSpawn = errors.New("levels: level has no spawn point")

// Level is a tile grid. Tiles are stored row-major with the top row first;
// any non-zero tile is solid.
type Level struct {
	Name     string
	Width    int
	Height   int
	TileSize int
	Tiles    []int
	// SpawnX/SpawnY are tile coordinates with the origin at the top-left.
	SpawnX  float64
	SpawnY  float64
	Gravity float64
}

type levelFile struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	TileSize  int         `json:"tile_size"`
	Gravity   float64     `json:"gravity,omitempty"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

type Entity struct {
	Type  string                 `json:"type"`
	X     float64                `json:"x"`
	Y     float64                `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Load reads a level by name from disk under levels/ when present, falling
// back to the embedded copy.
func Load(name string) (*Level, error) {
	clean := filepath.ToSlash(name)
	clean = strings.TrimPrefix(clean, "levels/")
	if path.Ext(clean) == "" {
		clean += ".json"
	}
	if _, err := os.Stat(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return LoadLevelFromFS(os.DirFS("levels"), clean)
	}
	return LoadLevelFromFS(LevelsFS, clean)
}

// LoadLevelFromFS dispatches on the file extension.
func LoadLevelFromFS(fsys fs.FS, name string) (*Level, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".tmx":
		return LoadTMX(fsys, name)
	case ".json":
		return LoadJSON(fsys, name)
	default:
		return nil, fmt.Errorf("levels: unsupported level format %q", name)
	}
}

// LoadJSON reads the tile-grid JSON format. Only layers marked as physics
// layers contribute solid tiles; without layer meta every layer does.
func LoadJSON(fsys fs.FS, name string) (*Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lf levelFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lf.Width <= 0 || lf.Height <= 0 {
		return nil, fmt.Errorf("levels: %s: invalid size %dx%d", name, lf.Width, lf.Height)
	}

	lvl := &Level{
		Name:     strings.TrimSuffix(path.Base(name), path.Ext(name)),
		Width:    lf.Width,
		Height:   lf.Height,
		TileSize: lf.TileSize,
		Tiles:    make([]int, lf.Width*lf.Height),
		Gravity:  lf.Gravity,
	}
	if lvl.TileSize <= 0 {
		lvl.TileSize = 32
	}

	for i, layer := range lf.Layers {
		if len(layer) != lf.Width*lf.Height {
			continue
		}
		if len(lf.LayerMeta) > 0 && (i >= len(lf.LayerMeta) || !lf.LayerMeta[i].Physics) {
			continue
		}
		for idx, v := range layer {
			if v != 0 {
				lvl.Tiles[idx] = v
			}
		}
	}

	found := false
	for _, e := range lf.Entities {
		if e.Type == "spawn" {
			lvl.SpawnX, lvl.SpawnY = e.X, e.Y
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("levels: %s: %w", name, ErrNoSpawn)
	}
	return lvl, nil
}

// Solid reports whether the tile at x, y is solid. Out of range is empty.
func (l *Level) Solid(x, y int) bool {
	if l == nil || x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return false
	}
	return l.Tiles[y*l.Width+x] != 0
}

// Spawn returns the spawn point in world units: one unit per tile, y up.
func (l *Level) Spawn() (float64, float64) {
	return l.SpawnX + 0.5, float64(l.Height) - l.SpawnY - 0.5
}
