package nav

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/automoto/doomerang-horde/shared/gamemath"
)

// Mover is the body an Agent drives.
type Mover interface {
	Position() gamemath.Vec2
	SetPosition(p gamemath.Vec2)
}

// Agent is a steering client. It owns a path toward the last destination and
// moves its body along it, one linear tween per segment.
type Agent struct {
	grid *Grid
	body Mover

	speed       float64
	destination gamemath.Vec2
	hasDest     bool
	path        []gamemath.Vec2

	tween   *gween.Tween
	segFrom gamemath.Vec2
	segTo   gamemath.Vec2
	lastSet gamemath.Vec2
	replans int
}

func NewAgent(grid *Grid, body Mover) *Agent {
	return &Agent{grid: grid, body: body}
}

// SetSpeed sets the maximum speed in world units per second.
func (a *Agent) SetSpeed(speed float64) {
	a.speed = speed
	a.tween = nil
}

func (a *Agent) Speed() float64 {
	return a.speed
}

// SetDestination replans toward p. An unreachable goal leaves the agent idle.
func (a *Agent) SetDestination(p gamemath.Vec2) {
	a.destination, a.hasDest = p, true
	a.path = a.grid.FindPath(a.body.Position(), p)
	a.tween = nil
	a.replans++
}

func (a *Agent) Destination() (gamemath.Vec2, bool) {
	return a.destination, a.hasDest
}

// Replans returns how many destinations have been submitted.
func (a *Agent) Replans() int {
	return a.replans
}

// Moving reports whether waypoints remain.
func (a *Agent) Moving() bool {
	return len(a.path) > 0
}

// Stop drops the current path. The destination is kept for diagnostics.
func (a *Agent) Stop() {
	a.path = nil
	a.tween = nil
}

// Update moves the body along the path by dt.
func (a *Agent) Update(dt time.Duration) {
	if a.speed <= 0 || dt <= 0 {
		return
	}
	pos := a.body.Position()
	// Something else moved the body; restart the segment from where it is.
	if a.tween != nil && pos != a.lastSet {
		a.tween = nil
	}
	for a.tween == nil {
		if len(a.path) == 0 {
			return
		}
		dist := a.path[0].Sub(pos).Length()
		if dist == 0 {
			a.path = a.path[1:]
			continue
		}
		a.segFrom, a.segTo = pos, a.path[0]
		a.tween = gween.New(0, 1, float32(dist/a.speed), ease.Linear)
	}

	t, finished := a.tween.Update(float32(dt.Seconds()))
	next := a.segFrom.Lerp(a.segTo, float64(t))
	if finished {
		next = a.segTo
		a.path = a.path[1:]
		a.tween = nil
	}
	a.body.SetPosition(next)
	a.lastSet = next
}
