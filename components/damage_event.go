package components

import (
	"github.com/automoto/doomerang-horde/combat"
	"github.com/yohamta/donburi"
)

// DamageEventData queues hits for UpdateCombat. Several sources may hit the
// same entity in one frame.
type DamageEventData struct {
	Hits []combat.Hit
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
