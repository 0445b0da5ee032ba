// Package combat holds the health and damage collaborator shared by the player
// and enemy agents.
package combat

import (
	"github.com/automoto/doomerang-horde/lifecycle"
	"github.com/automoto/doomerang-horde/shared/gamemath"
)

// Hit describes one application of damage. Position and Direction locate the
// blow for effects; they may be zero for environmental damage.
type Hit struct {
	Amount    int
	Position  gamemath.Vec2
	Direction gamemath.Vec2
}

// Damageable tracks hit points and announces damage and death.
type Damageable struct {
	Current int
	Max     int

	dead         bool
	onTakeDamage lifecycle.Hook[Hit]
	onDie        lifecycle.Hook[Hit]
}

func NewDamageable(max int) *Damageable {
	return &Damageable{Current: max, Max: max}
}

func (d *Damageable) TakeDamage(amount int) {
	d.TakeHit(Hit{Amount: amount})
}

// TakeHit applies h and reports whether it was accepted. Non-positive amounts
// and hits after death are ignored. OnDie fires once, after the OnTakeDamage
// of the killing blow.
func (d *Damageable) TakeHit(h Hit) bool {
	if d.dead || h.Amount <= 0 {
		return false
	}
	d.Current -= h.Amount
	if d.Current < 0 {
		d.Current = 0
	}
	d.onTakeDamage.Emit(h)

	if d.Current == 0 {
		d.dead = true
		d.onDie.Emit(h)
	}
	return true
}

func (d *Damageable) Dead() bool {
	return d.dead
}

// Ratio returns remaining health in [0, 1].
func (d *Damageable) Ratio() float64 {
	if d.Max <= 0 {
		return 0
	}
	return float64(d.Current) / float64(d.Max)
}

func (d *Damageable) OnTakeDamage(fn func(Hit)) lifecycle.Subscription {
	return d.onTakeDamage.Subscribe(fn)
}

func (d *Damageable) OnDie(fn func(Hit)) lifecycle.Subscription {
	return d.onDie.Subscribe(fn)
}

// OnDeath registers a zero-argument death listener.
func (d *Damageable) OnDeath(fn func()) lifecycle.Subscription {
	if fn == nil {
		return lifecycle.Subscription{}
	}
	return d.onDie.Subscribe(func(Hit) { fn() })
}
