package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-horde/ai"
	"github.com/automoto/doomerang-horde/archetypes"
	"github.com/automoto/doomerang-horde/combat"
	"github.com/automoto/doomerang-horde/components"
	cfg "github.com/automoto/doomerang-horde/config"
	"github.com/automoto/doomerang-horde/nav"
	"github.com/automoto/doomerang-horde/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoSimulation = errors.New("arena has no simulation context")

// CreateEnemy spawns an enemy agent centered on (x, y) pursuing the player.
// The current enemy configuration is copied into the agent. On failure the
// partially built entity is removed again.
func CreateEnemy(ecs *ecs.ECS, x, y float64) (*donburi.Entry, error) {
	sim, ok := simData(ecs.World)
	if !ok {
		return nil, ErrNoSimulation
	}
	enemyCfg := cfg.Enemy

	enemy := archetypes.Enemy.Spawn(ecs)
	entity := enemy.Entity()

	obj := newBodyObject(x, y, enemyCfg.CollisionRadius, "character", tags.ResolvEnemy)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs.World, enemy, obj)

	health := combat.NewDamageable(enemyCfg.Health)
	components.Health.SetValue(enemy, components.HealthData{Damageable: health})

	body := ObjectBody{Object: obj, R: enemyCfg.CollisionRadius}
	steering := nav.NewAgent(sim.Grid, body)
	id := uuid.NewString()

	deps := ai.Deps{
		ID:        id,
		Body:      body,
		Health:    health,
		Steering:  steering,
		Lifecycle: sim.Lifecycle,
		Scheduler: sim.Scheduler,
		Effects:   worldEffects{ecs: ecs},
		Score:     worldScore{world: ecs.World, id: id, body: body},
		Despawn:   entityDespawner{world: ecs.World, entity: entity, scheduler: sim.Scheduler},
		Tint:      enemyTint{world: ecs.World, entity: entity},
		Config:    enemyCfg,
	}
	if player, ok := tags.Player.First(ecs.World); ok {
		deps.Target = PlayerTarget(ecs.World, player)
	}

	agent, err := ai.Spawn(deps)
	if err != nil {
		removeFromSpace(ecs.World, obj)
		ecs.World.Remove(entity)
		return nil, fmt.Errorf("create enemy: %w", err)
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		ID:    id,
		Agent: agent,
		Nav:   steering,
		Tint:  enemyCfg.TintColor,
	})
	return enemy, nil
}

func simData(w donburi.World) (*components.SimData, bool) {
	entry, ok := components.Sim.First(w)
	if !ok {
		return nil, false
	}
	return components.Sim.Get(entry), true
}
