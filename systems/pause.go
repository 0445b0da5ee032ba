package systems

import (
	"github.com/automoto/doomerang-horde/components"
	cfg "github.com/automoto/doomerang-horde/config"
	"github.com/yohamta/donburi/ecs"
)

// WithPauseCheck wraps a system to skip execution unless the match is being
// played. Simulation time stands still while paused or over.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsPlaying(e) {
			return
		}
		system(e)
	}
}

// IsPlaying reports whether the match is in the Playing state.
func IsPlaying(e *ecs.ECS) bool {
	match, ok := GetMatch(e)
	return ok && match.State == cfg.MatchStatePlaying
}

// GetMatch returns the singleton Match component.
func GetMatch(e *ecs.ECS) (*components.MatchData, bool) {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Match.Get(entry), true
}

// GetSim returns the singleton simulation context.
func GetSim(e *ecs.ECS) (*components.SimData, bool) {
	entry, ok := components.Sim.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Sim.Get(entry), true
}

// AddSystems registers the arena systems in frame order. Everything but the
// match bookkeeping is skipped while the match is not being played.
func AddSystems(e *ecs.ECS) {
	e.AddSystem(WithPauseCheck(UpdateClock))
	e.AddSystem(WithPauseCheck(UpdateSpawner))
	e.AddSystem(WithPauseCheck(UpdateEnemies))
	e.AddSystem(WithPauseCheck(UpdateNavigation))
	e.AddSystem(WithPauseCheck(UpdatePlayer))
	e.AddSystem(WithPauseCheck(UpdateContacts))
	e.AddSystem(WithPauseCheck(UpdateCombat))
	e.AddSystem(WithPauseCheck(UpdateScore))
	e.AddSystem(WithPauseCheck(UpdateDeaths))
	e.AddSystem(WithPauseCheck(UpdateEffects))
	e.AddSystem(UpdateMatch)
}
