package factory

import (
	"github.com/automoto/doomerang-horde/archetypes"
	"github.com/automoto/doomerang-horde/components"
	cfg "github.com/automoto/doomerang-horde/config"
	"github.com/automoto/doomerang-horde/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnDeathEffect records a death effect at position, oriented along the
// killing blow. It is removed after the configured lifetime.
func SpawnDeathEffect(ecs *ecs.ECS, position, direction gamemath.Vec2) *donburi.Entry {
	entry := archetypes.Effect.Spawn(ecs)
	components.Effect.SetValue(entry, components.EffectData{
		Kind:      components.EffectDeath,
		Position:  position,
		Direction: direction,
	})
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{
		Remaining: cfg.Effect.DeathEffectLifetime.Duration(),
	})
	return entry
}
