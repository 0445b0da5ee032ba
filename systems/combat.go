package systems

import (
	"github.com/automoto/doomerang-horde/combat"
	"github.com/automoto/doomerang-horde/components"
	cfg "github.com/automoto/doomerang-horde/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// QueueDamage schedules a hit on entry for the next UpdateCombat pass.
func QueueDamage(entry *donburi.Entry, hit combat.Hit) {
	if entry.HasComponent(components.DamageEvent) {
		dmg := components.DamageEvent.Get(entry)
		dmg.Hits = append(dmg.Hits, hit)
		return
	}
	donburi.Add(entry, components.DamageEvent, &components.DamageEventData{
		Hits: []combat.Hit{hit},
	})
}

// UpdateCombat applies queued hits to every entity with Health. Deaths caused
// here run their listeners immediately; removal happens in UpdateDeaths.
func UpdateCombat(ecs *ecs.ECS) {
	var queued []*donburi.Entry
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		queued = append(queued, e)
	})

	for _, e := range queued {
		if !e.Valid() {
			continue
		}
		hits := components.DamageEvent.Get(e).Hits
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
		if !e.HasComponent(components.Health) {
			continue
		}
		health := components.Health.Get(e)
		if health.Damageable == nil {
			continue
		}

		for _, hit := range hits {
			// The player shrugs off hits during its grace period.
			if e.HasComponent(components.Player) {
				player := components.Player.Get(e)
				if player.Invuln > 0 {
					continue
				}
				if health.TakeHit(hit) {
					player.Invuln = cfg.Player.InvulnTime.Duration()
				}
				continue
			}
			health.TakeHit(hit)
		}
	}
}
