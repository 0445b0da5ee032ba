// Package ai drives hostile agents: the attack state machine (Behavior) and the
// target-seeking steering loop (Pursuit). Both run on the caller's logic thread
// and advance only through the scheduler they are given.
package ai

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/doomerang-horde/combat"
	"github.com/automoto/doomerang-horde/config"
	"github.com/automoto/doomerang-horde/lifecycle"
	"github.com/automoto/doomerang-horde/sched"
	"github.com/automoto/doomerang-horde/shared/gamemath"
)

// ErrMissingCollaborator is returned by Spawn when a required dependency is nil.
var ErrMissingCollaborator = errors.New("missing collaborator")

// Body is the agent's own transform and footprint.
type Body interface {
	Position() gamemath.Vec2
	SetPosition(p gamemath.Vec2)
	Radius() float64
}

// Target is the pursued object. Valid turns false once it is destroyed.
type Target interface {
	Position() gamemath.Vec2
	Radius() float64
	Valid() bool
	OnDie(fn func()) lifecycle.Subscription
}

// Health announces the agent's own death.
type Health interface {
	OnDie(fn func(combat.Hit)) lifecycle.Subscription
}

// Steering is the pathfinding client owned by one agent.
type Steering interface {
	SetDestination(p gamemath.Vec2)
	SetSpeed(speed float64)
}

// EffectSpawner plays the death effect along the killing blow.
type EffectSpawner interface {
	SpawnDeathEffect(position, direction gamemath.Vec2)
}

// ScoreSink receives the points awarded on death.
type ScoreSink interface {
	PointsEarned(points int)
}

// Despawner removes the agent from the world after death.
type Despawner interface {
	Despawn()
}

// Tinter receives the attack color swap.
type Tinter interface {
	SetTint(c [4]uint8)
}

// Deps wires one agent. Body, Target, Health, Steering, Lifecycle and
// Scheduler are required; the rest default to no-ops.
type Deps struct {
	ID string

	Body      Body
	Target    Target
	Health    Health
	Steering  Steering
	Lifecycle lifecycle.Source
	Scheduler *sched.Scheduler

	Effects EffectSpawner
	Score   ScoreSink
	Despawn Despawner
	Tint    Tinter

	Config config.EnemyConfig
}

func (d Deps) validate() error {
	var missing []string
	if d.Body == nil {
		missing = append(missing, "body")
	}
	if d.Target == nil {
		missing = append(missing, "target")
	}
	if d.Health == nil {
		missing = append(missing, "health")
	}
	if d.Steering == nil {
		missing = append(missing, "steering")
	}
	if d.Lifecycle == nil {
		missing = append(missing, "lifecycle")
	}
	if d.Scheduler == nil {
		missing = append(missing, "scheduler")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingCollaborator, missing)
	}
	return nil
}

type nopEffects struct{}

func (nopEffects) SpawnDeathEffect(gamemath.Vec2, gamemath.Vec2) {}

type nopScore struct{}

func (nopScore) PointsEarned(int) {}

type nopDespawn struct{}

func (nopDespawn) Despawn() {}

type nopTint struct{}

func (nopTint) SetTint([4]uint8) {}

// Agent is the Behavior/Pursuit pair of one spawned enemy.
type Agent struct {
	ID       string
	Behavior *Behavior
	Pursuit  *Pursuit
}

// Spawn builds an agent and starts it: lifecycle, death and target listeners
// are subscribed and the steering loop is launched. It fails without side
// effects when a required collaborator is missing.
func Spawn(d Deps) (*Agent, error) {
	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("spawn agent %q: %w", d.ID, err)
	}
	if d.Effects == nil {
		d.Effects = nopEffects{}
	}
	if d.Score == nil {
		d.Score = nopScore{}
	}
	if d.Despawn == nil {
		d.Despawn = nopDespawn{}
	}
	if d.Tint == nil {
		d.Tint = nopTint{}
	}

	b := newBehavior(d)
	p := newPursuit(d, b)
	b.pursuit = p

	b.start(d.Lifecycle, d.Health)
	p.start(d.Lifecycle)

	log.Printf("[ai] %s spawned at (%.1f, %.1f)", d.ID, d.Body.Position().X, d.Body.Position().Y)
	return &Agent{ID: d.ID, Behavior: b, Pursuit: p}, nil
}

// Update runs the per-frame attack decision.
func (a *Agent) Update() {
	a.Behavior.Update()
}

func (a *Agent) State() config.StateID {
	return a.Behavior.State()
}

func (a *Agent) Alive() bool {
	return a.Behavior.Alive()
}

// Destroy unsubscribes every listener and cancels running tasks. Safe to call
// more than once.
func (a *Agent) Destroy() {
	a.Behavior.destroy()
	a.Pursuit.destroy()
}
