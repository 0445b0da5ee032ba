package systems

import (
	"github.com/automoto/doomerang-horde/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs each agent's attack decision once per frame.
func UpdateEnemies(e *ecs.ECS) {
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.Agent == nil || entry.HasComponent(components.Death) {
			return
		}
		enemy.Agent.Update()
	})
}
