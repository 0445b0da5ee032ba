package netcomponents

import "github.com/yohamta/donburi"

type NetPlayerData struct {
	X, Y      float64
	Health    int
	MaxHealth int
	Alive     bool
}

var NetPlayer = donburi.NewComponentType[NetPlayerData]()

// LerpNetPlayer interpolates the position; the rest snaps to the newer state.
func LerpNetPlayer(from, to NetPlayerData, t float64) *NetPlayerData {
	next := to
	next.X = from.X + (to.X-from.X)*t
	next.Y = from.Y + (to.Y-from.Y)*t
	return &next
}
