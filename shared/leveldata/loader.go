package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from arena maps
const (
	GroupPlayerSpawn = "PlayerSpawn"
	GroupRespawn     = "Respawn"
	GroupSafeZone    = "SafeZone"
)

// LoadArena parses a TMX file into arena data. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("arena %s: tile size must be positive", tmxPath)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	toWorld := func(x, y float64) Point {
		return Point{X: x / tileW, Y: y / tileH}
	}

	data := &ArenaData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width),
		Height: float64(levelMap.Height),
	}
	data.PlayerSpawn = Point{X: data.Width / 2, Y: data.Height / 2}

	var spawns []*tiled.Object
	hasRespawn := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlayerSpawn:
			spawns = append(spawns, og.Objects...)
		case GroupRespawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				data.Respawn = toWorld(o.X, o.Y)
				hasRespawn = true
			}
		case GroupSafeZone:
			for _, o := range og.Objects {
				pos := toWorld(o.X, o.Y)
				data.SafeZones = append(data.SafeZones, Rect{
					X:    pos.X,
					Y:    pos.Y,
					W:    o.Width / tileW,
					H:    o.Height / tileH,
					Name: o.Name,
				})
			}
		}
	}

	// Lowest spawnIndex wins so map authors can reorder without moving objects
	if len(spawns) > 0 {
		sort.SliceStable(spawns, func(i, j int) bool {
			return spawns[i].Properties.GetInt("spawnIndex") < spawns[j].Properties.GetInt("spawnIndex")
		})
		data.PlayerSpawn = toWorld(spawns[0].X, spawns[0].Y)
	}
	if !hasRespawn {
		data.Respawn = data.PlayerSpawn
	}

	return data, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
