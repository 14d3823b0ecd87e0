package core

import (
	"fmt"
	"os"
	"path/filepath"

	cfg "github.com/automoto/wavebreak/config"
	"github.com/automoto/wavebreak/shared/leveldata"
)

// LoadArenas loads all .tmx arenas from the given assets directory,
// returning them keyed by stem name plus a sorted name list.
func LoadArenas(assetsDir string) (map[string]*leveldata.ArenaData, []string, error) {
	arenas, names, err := leveldata.LoadAllArenas(os.DirFS(assetsDir), "arenas")
	if err != nil {
		return nil, nil, fmt.Errorf("load all arenas: %w", err)
	}
	return arenas, names, nil
}

// SelectArena picks an arena by name. An empty name picks the first one.
func SelectArena(arenas map[string]*leveldata.ArenaData, names []string, name string) (*leveldata.ArenaData, error) {
	if name == "" {
		if len(names) == 0 {
			return nil, fmt.Errorf("no arenas loaded")
		}
		name = names[0]
	}
	arena, ok := arenas[name]
	if !ok {
		return nil, fmt.Errorf("unknown arena %q (have %v)", name, names)
	}
	return arena, nil
}

// LoadTuningFile applies a YAML tuning overlay from disk.
func LoadTuningFile(path string) error {
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return cfg.LoadTuning(os.DirFS(dir), file)
}
