package systems

import (
	"github.com/automoto/doomerang-horde/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths removes every entity marked with Death. Enemy agents are torn
// down first so no listener or task outlives its entity.
func UpdateDeaths(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		dead = append(dead, e)
	})

	for _, e := range dead {
		RemoveEntity(ecs, e)
	}
}

// RemoveEntity destroys an entity's agent, drops its collision object and
// removes it from the world.
func RemoveEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Enemy) {
		enemy := components.Enemy.Get(e)
		if enemy.Agent != nil {
			enemy.Agent.Destroy()
		}
		if enemy.Nav != nil {
			enemy.Nav.Stop()
		}
	}
	if e.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			if obj := components.Object.Get(e); obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	ecs.World.Remove(e.Entity())
}
