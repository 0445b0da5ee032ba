package components

import (
	"github.com/automoto/doomerang-horde/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name  string
	Arena *leveldata.ArenaData
}

var Level = donburi.NewComponentType[LevelData]()
