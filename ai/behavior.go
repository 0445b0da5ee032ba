package ai

import (
	"log"
	"time"

	"github.com/automoto/doomerang-horde/combat"
	"github.com/automoto/doomerang-horde/config"
	"github.com/automoto/doomerang-horde/lifecycle"
	"github.com/automoto/doomerang-horde/sched"
	"github.com/automoto/doomerang-horde/shared/gamemath"
)

// Behavior owns an agent's attack state machine.
//
//	Chasing -> Attacking   cooldown elapsed and target inside the envelope
//	Attacking -> Chasing   lunge finished
//	Chasing -> Idle        target died (terminal)
//
// Death freezes the state for good.
type Behavior struct {
	id      string
	body    Body
	target  Target
	sched   *sched.Scheduler
	pursuit *Pursuit

	effects EffectSpawner
	score   ScoreSink
	despawn Despawner
	tint    Tinter

	cfg        config.EnemyConfig
	envelopeSq float64
	points     int

	state      config.StateID
	alive      bool
	enabled    bool
	nextAttack time.Duration

	attack *sched.Task
	lunge  *lunge
	subs   []lifecycle.Subscription
}

func newBehavior(d Deps) *Behavior {
	return &Behavior{
		id:         d.ID,
		body:       d.Body,
		target:     d.Target,
		sched:      d.Scheduler,
		effects:    d.Effects,
		score:      d.Score,
		despawn:    d.Despawn,
		tint:       d.Tint,
		cfg:        d.Config,
		envelopeSq: gamemath.AttackEnvelopeSquared(d.Config.AttackDistanceThreshold, d.Body.Radius(), d.Target.Radius()),
		points:     d.Config.Points,
		state:      config.Chasing,
		alive:      true,
		enabled:    true,
	}
}

func (b *Behavior) start(lc lifecycle.Source, health Health) {
	b.subs = append(b.subs,
		lc.Subscribe(lifecycle.Handlers{
			Start:  b.onGameStart,
			Pause:  b.onGamePause,
			Resume: b.onGameResume,
			End:    b.onGameEnd,
			Quit:   b.onGameEnd,
		}),
		health.OnDie(b.onDie),
	)
}

// State is the current attack state.
func (b *Behavior) State() config.StateID {
	return b.state
}

// Alive turns false once the agent has died.
func (b *Behavior) Alive() bool {
	return b.alive
}

// Enabled reports whether the per-frame attack decision runs.
func (b *Behavior) Enabled() bool {
	return b.enabled
}

// NextAttackTime is the simulation time after which another attack may begin.
func (b *Behavior) NextAttackTime() time.Duration {
	return b.nextAttack
}

// EnvelopeSquared is the squared attack distance measured between centers.
func (b *Behavior) EnvelopeSquared() float64 {
	return b.envelopeSq
}

// ContactDamage is the damage copied from the designer config at spawn.
func (b *Behavior) ContactDamage() int {
	return b.cfg.Damage
}

// AttackProgress returns the lunge progress of the running attack, or -1.
func (b *Behavior) AttackProgress() float64 {
	if b.lunge == nil || !b.attack.Running() {
		return -1
	}
	return b.lunge.progress
}

// Update is the per-frame attack decision.
func (b *Behavior) Update() {
	if !b.enabled || !b.alive || b.state != config.Chasing || !b.target.Valid() {
		return
	}
	now := b.sched.Now()
	if now <= b.nextAttack {
		return
	}
	if gamemath.DistanceSquared(b.body.Position(), b.target.Position()) < b.envelopeSq {
		b.beginAttack(now)
	}
}

func (b *Behavior) beginAttack(now time.Duration) {
	b.pursuit.setSteering(false)
	b.nextAttack = now + b.cfg.TimeBetweenAttacks.Duration()
	b.state = config.Attacking

	origin := b.body.Position()
	b.lunge = &lunge{
		b:      b,
		origin: origin,
		dest:   gamemath.LungeDestination(origin, b.target.Position(), b.body.Radius()),
	}
	b.tint.SetTint(b.cfg.AttackColor)
	b.attack = b.sched.Go(b.lunge)
}

// lunge moves the body out toward the target and back along a parabola. It
// suspends once per frame.
type lunge struct {
	b            *Behavior
	origin, dest gamemath.Vec2
	progress     float64
}

func (l *lunge) Resume(now, dt time.Duration) bool {
	l.progress += dt.Seconds() * l.b.cfg.AttackSpeed
	if l.progress > 1 {
		l.b.body.SetPosition(l.origin)
		l.b.finishAttack()
		return true
	}
	l.b.body.SetPosition(l.origin.Lerp(l.dest, gamemath.LungeCurve(l.progress)))
	return false
}

func (b *Behavior) finishAttack() {
	b.tint.SetTint(b.cfg.TintColor)
	// Target death or own death during the lunge wins over the return to Chasing.
	if !b.alive || b.state != config.Attacking {
		return
	}
	b.state = config.Chasing
	b.pursuit.setSteering(true)
}

func (b *Behavior) onGameStart() {
	b.enabled = true
}

func (b *Behavior) onGamePause() {
	b.enabled = false
	b.attack.SetPaused(true)
}

func (b *Behavior) onGameResume() {
	b.enabled = true
	b.attack.SetPaused(false)
}

// onGameEnd halts the lunge where it stands. State and color are left as they
// are; the agent is about to be torn down.
func (b *Behavior) onGameEnd() {
	b.enabled = false
	b.attack.Cancel()
}

// forceIdle is the target-death transition.
func (b *Behavior) forceIdle() {
	if !b.alive {
		return
	}
	b.state = config.Idle
}

func (b *Behavior) onDie(hit combat.Hit) {
	if !b.alive {
		return
	}
	b.alive = false
	b.attack.Cancel()

	b.effects.SpawnDeathEffect(hit.Position, hit.Direction)
	b.score.PointsEarned(b.points)
	log.Printf("[ai] %s died, %d points", b.id, b.points)
	b.despawn.Despawn()
}

func (b *Behavior) destroy() {
	for _, s := range b.subs {
		s.Cancel()
	}
	b.subs = nil
	b.attack.Cancel()
}
