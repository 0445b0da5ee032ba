package ai

import (
	"log"
	"time"

	"github.com/automoto/doomerang-horde/config"
	"github.com/automoto/doomerang-horde/lifecycle"
	"github.com/automoto/doomerang-horde/sched"
	"github.com/automoto/doomerang-horde/shared/gamemath"
)

// Pursuit republishes a stand-off point next to the target to the agent's
// steering client on a fixed period.
type Pursuit struct {
	id       string
	behavior *Behavior
	body     Body
	target   Target
	steering Steering
	sched    *sched.Scheduler

	speed    float64
	standoff float64
	period   time.Duration

	steeringEnabled bool
	wakeAt          time.Duration
	last            gamemath.Vec2
	submitted       bool

	loop *sched.Task
	subs []lifecycle.Subscription
}

func newPursuit(d Deps, b *Behavior) *Pursuit {
	c := d.Config
	return &Pursuit{
		id:       d.ID,
		behavior: b,
		body:     d.Body,
		target:   d.Target,
		steering: d.Steering,
		sched:    d.Scheduler,
		speed:    c.SteeringSpeed,
		standoff: d.Body.Radius() + d.Target.Radius() + c.StandoffDistance + c.AttackDistanceThreshold/2,
		period:   c.RefreshPeriod.Duration(),
	}
}

func (p *Pursuit) start(lc lifecycle.Source) {
	p.subs = append(p.subs,
		lc.Subscribe(lifecycle.Handlers{
			Start:  p.enable,
			Pause:  p.disable,
			Resume: p.enable,
			End:    p.disable,
			Quit:   p.disable,
		}),
		p.target.OnDie(p.onTargetDie),
	)
	p.steering.SetSpeed(p.speed)
	p.steeringEnabled = true
	p.loop = p.sched.Go(sched.RoutineFunc(p.tick))
}

func (p *Pursuit) SteeringEnabled() bool {
	return p.steeringEnabled
}

func (p *Pursuit) StandoffRadius() float64 {
	return p.standoff
}

// LastDestination returns the most recent goal handed to the steering client.
func (p *Pursuit) LastDestination() (gamemath.Vec2, bool) {
	return p.last, p.submitted
}

// LoopRunning reports whether the steering loop is still alive.
func (p *Pursuit) LoopRunning() bool {
	return p.loop.Running()
}

func (p *Pursuit) setSteering(on bool) {
	p.steeringEnabled = on
}

// enable re-arms steering unless an attack or the target's death owns it.
func (p *Pursuit) enable() {
	if p.behavior.State() == config.Chasing {
		p.steeringEnabled = true
	}
}

func (p *Pursuit) disable() {
	p.steeringEnabled = false
}

func (p *Pursuit) tick(now, dt time.Duration) bool {
	if !p.target.Valid() {
		log.Printf("[ai] %s lost its target, steering stopped", p.id)
		return true
	}
	if now < p.wakeAt {
		return false
	}
	p.wakeAt = now + p.period

	if !p.steeringEnabled || p.behavior.State() != config.Chasing || !p.behavior.Alive() {
		return false
	}
	dest := gamemath.StandoffPoint(p.body.Position(), p.target.Position(), p.standoff)
	p.steering.SetDestination(dest)
	p.last, p.submitted = dest, true
	return false
}

func (p *Pursuit) onTargetDie() {
	p.steeringEnabled = false
	p.behavior.forceIdle()
}

func (p *Pursuit) destroy() {
	for _, s := range p.subs {
		s.Cancel()
	}
	p.subs = nil
	p.loop.Cancel()
}
