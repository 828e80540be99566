package levels

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	tmxSolidLayer = "solid"
	tmxSpawnGroup = "spawn"
)

// LoadTMX reads a Tiled map. Tiles come from the layer named "solid" and the
// spawn from the first object in the "spawn" object group.
func LoadTMX(fsys fs.FS, name string) (*Level, error) {
	m, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", name, err)
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("levels: %s: invalid tile size %dx%d", name, m.TileWidth, m.TileHeight)
	}

	lvl := &Level{
		Name:     strings.TrimSuffix(path.Base(name), path.Ext(name)),
		Width:    m.Width,
		Height:   m.Height,
		TileSize: m.TileWidth,
		Tiles:    make([]int, m.Width*m.Height),
	}

	for _, layer := range m.Layers {
		if layer.Name != tmxSolidLayer {
			continue
		}
		for i, tile := range layer.Tiles {
			if i >= len(lvl.Tiles) {
				break
			}
			if tile.IsNil() {
				continue
			}
			lvl.Tiles[i] = int(tile.ID) + 1
		}
		break
	}

	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)
	for _, og := range m.ObjectGroups {
		if og.Name != tmxSpawnGroup || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		lvl.SpawnX = o.X / tileW
		lvl.SpawnY = o.Y / tileH
		return lvl, nil
	}
	return nil, fmt.Errorf("levels: %s: %w", name, ErrNoSpawn)
}

// Names lists the level files at the root of fsys, sorted.
func Names(fsys fs.FS) ([]string, error) {
	var names []string
	for _, pattern := range []string{"*.json", "*.tmx"} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		names = append(names, matches...)
	}
	sort.Strings(names)
	return names, nil
}
