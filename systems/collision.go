package systems

import (
	"github.com/automoto/doomerang-horde/combat"
	"github.com/automoto/doomerang-horde/components"
	"github.com/automoto/doomerang-horde/shared/gamemath"
	"github.com/automoto/doomerang-horde/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts deals contact damage when an enemy body starts touching the
// player, using the damage the enemy spawned with. Staying in contact does not hit again; the enemy has to separate
// first.
func UpdateContacts(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	player := bodyOf(playerEntry)

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.Agent == nil || !enemy.Agent.Alive() {
			enemy.Touching = false
			return
		}
		body := bodyOf(entry)
		touching := false
		if body.Object.Check(0, 0, tags.ResolvPlayer) != nil {
			reach := body.Radius() + player.Radius()
			touching = gamemath.DistanceSquared(body.Position(), player.Position()) < reach*reach
		}
		if touching && !enemy.Touching {
			QueueDamage(playerEntry, combat.Hit{
				Amount:    enemy.Agent.Behavior.ContactDamage(),
				Position:  player.Position(),
				Direction: player.Position().Sub(body.Position()).Normalized(),
			})
		}
		enemy.Touching = touching
	})
}
