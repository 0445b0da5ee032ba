package factory

import (
	"github.com/automoto/doomerang-horde/combat"
	"github.com/automoto/doomerang-horde/components"
	"github.com/automoto/doomerang-horde/lifecycle"
	"github.com/automoto/doomerang-horde/sched"
	"github.com/automoto/doomerang-horde/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newBodyObject builds a square collision object centered on (x, y).
func newBodyObject(x, y, radius float64, objTags ...string) *resolv.Object {
	size := radius * 2
	obj := resolv.NewObject(x-radius, y-radius, size, size, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	return obj
}

// ObjectBody exposes a resolv object as a circular body addressed by its center.
type ObjectBody struct {
	Object *resolv.Object
	R      float64
}

func (b ObjectBody) Position() gamemath.Vec2 {
	return gamemath.Vec2{X: b.Object.X + b.Object.W/2, Y: b.Object.Y + b.Object.H/2}
}

func (b ObjectBody) SetPosition(p gamemath.Vec2) {
	b.Object.X = p.X - b.Object.W/2
	b.Object.Y = p.Y - b.Object.H/2
	b.Object.Update()
}

func (b ObjectBody) Radius() float64 {
	return b.R
}

// playerTarget is what enemies pursue. It stops being valid once the player
// entity leaves the world.
type playerTarget struct {
	ObjectBody
	world  donburi.World
	entity donburi.Entity
	health *combat.Damageable
}

func (t playerTarget) Valid() bool {
	return t.world.Valid(t.entity) && !t.health.Dead()
}

func (t playerTarget) OnDie(fn func()) lifecycle.Subscription {
	return t.health.OnDeath(fn)
}

// entityDespawner marks an entity for removal by UpdateDeaths.
type entityDespawner struct {
	world     donburi.World
	entity    donburi.Entity
	scheduler *sched.Scheduler
}

func (d entityDespawner) Despawn() {
	if !d.world.Valid(d.entity) {
		return
	}
	e := d.world.Entry(d.entity)
	if e.HasComponent(components.Death) {
		return
	}
	death := &components.DeathData{}
	if d.scheduler != nil {
		death.At = d.scheduler.Now()
	}
	donburi.Add(e, components.Death, death)
}

// worldScore publishes points as AgentDied events for UpdateScore.
type worldScore struct {
	world donburi.World
	id    string
	body  ObjectBody
}

func (s worldScore) PointsEarned(points int) {
	components.AgentDied.Publish(s.world, components.AgentDiedEvent{
		ID:       s.id,
		Points:   points,
		Position: s.body.Position(),
	})
}

type worldEffects struct {
	ecs *ecs.ECS
}

func (f worldEffects) SpawnDeathEffect(position, direction gamemath.Vec2) {
	SpawnDeathEffect(f.ecs, position, direction)
}

// enemyTint stores the current tint on the enemy component.
type enemyTint struct {
	world  donburi.World
	entity donburi.Entity
}

func (t enemyTint) SetTint(c [4]uint8) {
	if !t.world.Valid(t.entity) {
		return
	}
	e := t.world.Entry(t.entity)
	if !e.HasComponent(components.Enemy) {
		return
	}
	components.Enemy.Get(e).Tint = c
}
