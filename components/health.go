package components

import (
	"github.com/automoto/doomerang-horde/combat"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	*combat.Damageable
}

var Health = donburi.NewComponentType[HealthData]()
