package components

import (
	"github.com/automoto/doomerang-horde/shared/gamemath"
	"github.com/yohamta/donburi/features/events"
)

// AgentDiedEvent is published when an enemy agent dies and awards points.
type AgentDiedEvent struct {
	ID       string
	Points   int
	Position gamemath.Vec2
}

var AgentDied = events.NewEventType[AgentDiedEvent]()
