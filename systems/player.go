package systems

import (
	"github.com/automoto/doomerang-horde/combat"
	"github.com/automoto/doomerang-horde/components"
	cfg "github.com/automoto/doomerang-horde/config"
	"github.com/automoto/doomerang-horde/shared/gamemath"
	"github.com/automoto/doomerang-horde/systems/factory"
	"github.com/automoto/doomerang-horde/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer counts down the player's timers and fires at the nearest living
// enemy in range whenever the weapon is ready.
func UpdatePlayer(e *ecs.ECS) {
	sim, ok := GetSim(e)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	player := components.Player.Get(playerEntry)
	player.FireCooldown = max(player.FireCooldown-sim.Frame, 0)
	player.Invuln = max(player.Invuln-sim.Frame, 0)

	if player.FireCooldown > 0 {
		return
	}

	origin := bodyOf(playerEntry).Position()
	target := nearestEnemy(e.World, origin, cfg.Player.FireRange)
	if target == nil {
		return
	}
	aim := bodyOf(target).Position()
	QueueDamage(target, combat.Hit{
		Amount:    cfg.Player.FireDamage,
		Position:  aim,
		Direction: aim.Sub(origin).Normalized(),
	})
	player.FireCooldown = cfg.Player.FireCooldown.Duration()
	player.Shots++
}

// nearestEnemy returns the closest living enemy within maxRange of origin.
func nearestEnemy(w donburi.World, origin gamemath.Vec2, maxRange float64) *donburi.Entry {
	var best *donburi.Entry
	bestSq := maxRange * maxRange
	components.Enemy.Each(w, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.Agent == nil || !enemy.Agent.Alive() || entry.HasComponent(components.Death) {
			return
		}
		if d := gamemath.DistanceSquared(origin, bodyOf(entry).Position()); d <= bestSq {
			best, bestSq = entry, d
		}
	})
	return best
}

func bodyOf(entry *donburi.Entry) factory.ObjectBody {
	obj := components.Object.Get(entry).Object
	return factory.ObjectBody{Object: obj, R: obj.W / 2}
}
