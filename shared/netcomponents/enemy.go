package netcomponents

import "github.com/yohamta/donburi"

type NetEnemyData struct {
	ID     string
	X, Y   float64
	State  int // netconfig.StateID
	Health int
	Tint   [4]uint8
}

var NetEnemy = donburi.NewComponentType[NetEnemyData]()

// LerpNetEnemy interpolates between two enemy states
func LerpNetEnemy(from, to NetEnemyData, t float64) *NetEnemyData {
	return &NetEnemyData{
		ID:     to.ID,
		X:      from.X + (to.X-from.X)*t,
		Y:      from.Y + (to.Y-from.Y)*t,
		State:  to.State,
		Health: to.Health,
		Tint:   to.Tint,
	}
}
