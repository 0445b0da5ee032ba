package netcomponents

import (
	"github.com/automoto/doomerang-horde/shared/netconfig"
	"github.com/yohamta/donburi"
)

type NetGameStateData struct {
	Arena      string
	MatchState netconfig.MatchStateID
	Score      int
	Kills      int
	Best       int
	Wave       int
	Elapsed    float64 // Seconds of simulation time
}

var NetGameState = donburi.NewComponentType[NetGameStateData]()
