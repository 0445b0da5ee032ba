package components

import (
	"time"

	"github.com/automoto/doomerang-horde/shared/gamemath"
	"github.com/yohamta/donburi"
)

type EffectKind int

const (
	EffectDeath EffectKind = iota
)

// EffectData records a one-shot visual effect for spectators.
type EffectData struct {
	Kind      EffectKind
	Position  gamemath.Vec2
	Direction gamemath.Vec2
}

var Effect = donburi.NewComponentType[EffectData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	Remaining time.Duration
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
