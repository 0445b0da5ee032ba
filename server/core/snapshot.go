package core

import (
	"time"

	"github.com/automoto/doomerang-horde/components"
	cfg "github.com/automoto/doomerang-horde/config"
	"github.com/automoto/doomerang-horde/systems"
	"github.com/automoto/doomerang-horde/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var effectQuery = donburi.NewQuery(filter.Contains(tags.Effect))

type EnemySnapshot struct {
	ID     string
	X, Y   float64
	State  cfg.StateID
	Health int
	Tint   [4]uint8
}

type PlayerSnapshot struct {
	X, Y      float64
	Health    int
	MaxHealth int
	Alive     bool
}

// Snapshot is a read-only view of an arena after a tick.
type Snapshot struct {
	Arena   string
	State   cfg.MatchStateID
	Now     time.Duration
	Score   int
	Kills   int
	Best    int
	Wave    int
	Player  PlayerSnapshot
	Enemies []EnemySnapshot
	Effects int
}

func (a *Arena) Snapshot() Snapshot {
	w := a.ecs.World
	snap := Snapshot{Arena: a.name}

	if match, ok := systems.GetMatch(a.ecs); ok {
		snap.State = match.State
		snap.Score = match.Score
		snap.Kills = match.Kills
		snap.Best = match.Best
	}
	if sim, ok := systems.GetSim(a.ecs); ok {
		snap.Now = sim.Scheduler.Now()
	}
	if entry, ok := components.Spawner.First(w); ok {
		snap.Wave = components.Spawner.Get(entry).Wave
	}

	if player, ok := tags.Player.First(w); ok {
		obj := components.Object.Get(player).Object
		health := components.Health.Get(player)
		snap.Player = PlayerSnapshot{
			X:         obj.X + obj.W/2,
			Y:         obj.Y + obj.H/2,
			Health:    health.Current,
			MaxHealth: health.Max,
			Alive:     !health.Dead(),
		}
	}

	components.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Agent == nil {
			return
		}
		obj := components.Object.Get(e).Object
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			ID:     enemy.ID,
			X:      obj.X + obj.W/2,
			Y:      obj.Y + obj.H/2,
			State:  enemy.Agent.State(),
			Health: components.Health.Get(e).Current,
			Tint:   enemy.Tint,
		})
	})
	snap.Effects = effectQuery.Count(w)
	return snap
}
