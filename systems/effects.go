package systems

import (
	"github.com/automoto/doomerang-horde/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects expires auto-destroying entities such as death effects.
func UpdateEffects(ecs *ecs.ECS) {
	sim, ok := GetSim(ecs)
	if !ok {
		return
	}
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.Remaining -= sim.Frame
		if ad.Remaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		RemoveEntity(ecs, e)
	}
}
