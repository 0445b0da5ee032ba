package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	FireCooldown time.Duration // Time until the weapon can fire again
	Invuln       time.Duration // Grace period after a contact hit
	Shots        int
}

var Player = donburi.NewComponentType[PlayerData]()
