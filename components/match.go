package components

import (
	"time"

	cfg "github.com/automoto/doomerang-horde/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state and score.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State   cfg.MatchStateID
	Score   int
	Kills   int
	Best    int // Best score on record when the match started
	Elapsed time.Duration
}

var Match = donburi.NewComponentType[MatchData]()

// AddKill credits one enemy death.
func (m *MatchData) AddKill(points int) {
	m.Kills++
	m.Score += points
}
