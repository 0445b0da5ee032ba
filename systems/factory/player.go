package factory

import (
	"log"

	"github.com/automoto/doomerang-horde/ai"
	"github.com/automoto/doomerang-horde/archetypes"
	"github.com/automoto/doomerang-horde/combat"
	"github.com/automoto/doomerang-horde/components"
	cfg "github.com/automoto/doomerang-horde/config"
	"github.com/automoto/doomerang-horde/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centered on (x, y). Its death marks the
// entity for removal, which is what enemies observe as a lost target.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := newBodyObject(x, y, cfg.Player.CollisionRadius, "character", tags.ResolvPlayer)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs.World, player, obj)

	health := combat.NewDamageable(cfg.Player.Health)
	components.Health.SetValue(player, components.HealthData{Damageable: health})
	components.Player.SetValue(player, components.PlayerData{})

	despawn := entityDespawner{world: ecs.World, entity: player.Entity()}
	if sim, ok := simData(ecs.World); ok {
		despawn.scheduler = sim.Scheduler
	}
	health.OnDeath(func() {
		log.Printf("[arena] player died")
		despawn.Despawn()
	})

	return player
}

// PlayerTarget returns the pursuit target view of the player entity.
func PlayerTarget(w donburi.World, player *donburi.Entry) ai.Target {
	obj := components.Object.Get(player).Object
	return playerTarget{
		ObjectBody: ObjectBody{Object: obj, R: obj.W / 2},
		world:      w,
		entity:     player.Entity(),
		health:     components.Health.Get(player).Damageable,
	}
}
