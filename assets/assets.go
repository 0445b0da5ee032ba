// Package assets embeds the bundled arenas and the default designer config.
package assets

import (
	"embed"

	"github.com/automoto/doomerang-horde/shared/leveldata"
)

//go:embed arenas/*.tmx designer.yaml
var FS embed.FS

const ArenaDir = "arenas"

// DesignerYAML returns the bundled designer document.
func DesignerYAML() []byte {
	data, err := FS.ReadFile("designer.yaml")
	if err != nil {
		panic(err)
	}
	return data
}

// LoadArenas parses every bundled arena.
func LoadArenas() (map[string]*leveldata.ArenaData, []string, error) {
	return leveldata.LoadAllArenas(FS, ArenaDir)
}
