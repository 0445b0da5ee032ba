package systems

import (
	"log"

	"github.com/automoto/doomerang-horde/components"
	cfg "github.com/automoto/doomerang-horde/config"
	"github.com/automoto/doomerang-horde/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner releases a wave of enemies every spawn interval, cycling
// through the arena's spawn points and never exceeding the alive cap.
func UpdateSpawner(e *ecs.ECS) {
	sim, ok := GetSim(e)
	if !ok {
		return
	}
	entry, ok := components.Spawner.First(e.World)
	if !ok {
		return
	}
	sp := components.Spawner.Get(entry)
	now := sim.Scheduler.Now()
	if len(sp.Points) == 0 || now < sp.Next {
		return
	}
	sp.Next = now + cfg.Wave.SpawnInterval.Duration()

	alive := CountAliveEnemies(e.World)
	spawned := 0
	for spawned < cfg.Wave.PerWave && alive < cfg.Wave.MaxAlive {
		p := sp.Points[sp.Cursor%len(sp.Points)]
		sp.Cursor++
		if _, err := factory.CreateEnemy(e, p.X, p.Y); err != nil {
			log.Printf("[arena] spawn failed: %v", err)
			return
		}
		spawned++
		alive++
	}
	if spawned > 0 {
		sp.Wave++
		log.Printf("[arena] wave %d: %d enemies, %d alive", sp.Wave, spawned, alive)
	}
}

// CountAliveEnemies counts enemies whose agent is still alive.
func CountAliveEnemies(w donburi.World) int {
	n := 0
	components.Enemy.Each(w, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.Agent != nil && enemy.Agent.Alive() && !entry.HasComponent(components.Death) {
			n++
		}
	})
	return n
}
