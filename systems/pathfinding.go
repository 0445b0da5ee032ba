package systems

import (
	"github.com/automoto/doomerang-horde/components"
	cfg "github.com/automoto/doomerang-horde/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNavigation moves chasing enemies along their paths. Attacking agents
// are left alone; the lunge owns their position.
func UpdateNavigation(e *ecs.ECS) {
	sim, ok := GetSim(e)
	if !ok {
		return
	}
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.Agent == nil || enemy.Nav == nil || !enemy.Agent.Alive() {
			return
		}
		if enemy.Agent.State() != cfg.Chasing || !enemy.Agent.Pursuit.SteeringEnabled() {
			return
		}
		enemy.Nav.Update(sim.Frame)
	})
}
