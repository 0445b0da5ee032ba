package components

import (
	"github.com/automoto/doomerang-horde/ai"
	"github.com/automoto/doomerang-horde/nav"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	ID    string
	Agent *ai.Agent
	Nav   *nav.Agent
	Tint  [4]uint8

	// Touching latches body contact with the player so damage is dealt on
	// entry only.
	Touching bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
