package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/doomerang-horde/assets"
	"github.com/automoto/doomerang-horde/shared/leveldata"
)

// LoadArenas loads every .tmx arena from dir, or the bundled arenas when dir
// is empty. Names are sorted.
func LoadArenas(dir string) (map[string]*leveldata.ArenaData, []string, error) {
	if dir == "" {
		return assets.LoadArenas()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve arena dir: %w", err)
	}
	arenas, names, err := leveldata.LoadAllArenas(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
	if err != nil {
		return nil, nil, fmt.Errorf("load arenas: %w", err)
	}
	return arenas, names, nil
}

// NewArenaByName loads arenas from dir and builds the one called name. An
// empty name picks the first arena.
func NewArenaByName(dir, name string) (*Arena, error) {
	arenas, names, err := LoadArenas(dir)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = names[0]
	}
	data, ok := arenas[name]
	if !ok {
		return nil, fmt.Errorf("unknown arena %q (have %v)", name, names)
	}
	return NewArena(name, data)
}
