package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	WallLayer        = "walls"
	PlayerSpawnGroup = "PlayerSpawn"
	EnemySpawnGroup  = "EnemySpawn"
)

var (
	ErrNoPlayerSpawn = errors.New("arena has no player spawn")
	ErrNoEnemySpawn  = errors.New("arena has no enemy spawn")
)

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != WallLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				if layer.Tiles[y*levelMap.Width+x].IsNil() {
					continue
				}
				data.SolidRects = append(data.SolidRects, SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawnGroup:
			data.PlayerSpawns = appendSpawns(data.PlayerSpawns, og)
		case EnemySpawnGroup:
			data.EnemySpawns = appendSpawns(data.EnemySpawns, og)
		}
	}

	if len(data.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	if len(data.EnemySpawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoEnemySpawn)
	}
	return data, nil
}

// appendSpawns reads spawn objects, ordered by their spawnIndex property and
// then left to right.
func appendSpawns(dst []SpawnPoint, og *tiled.ObjectGroup) []SpawnPoint {
	start := len(dst)
	for _, o := range og.Objects {
		dst = append(dst, SpawnPoint{
			X:     o.X,
			Y:     o.Y,
			Index: o.Properties.GetInt("spawnIndex"),
		})
	}
	added := dst[start:]
	sort.SliceStable(added, func(i, j int) bool {
		if added[i].Index != added[j].Index {
			return added[i].Index < added[j].Index
		}
		return added[i].X < added[j].X
	})
	return dst
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
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
			return nil, nil, err
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
