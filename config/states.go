package config

import "github.com/automoto/doomerang-horde/shared/netconfig"

// Type aliases so simulation code can say config.StateID.
type StateID = netconfig.StateID
type MatchStateID = netconfig.MatchStateID

const (
	MatchStateWaiting  = netconfig.MatchStateWaiting
	MatchStatePlaying  = netconfig.MatchStatePlaying
	MatchStatePaused   = netconfig.MatchStatePaused
	MatchStateWon      = netconfig.MatchStateWon
	MatchStateLost     = netconfig.MatchStateLost
	MatchStateFinished = netconfig.MatchStateFinished
)

const (
	StateNone = netconfig.StateNone
	Idle      = netconfig.Idle
	Chasing   = netconfig.Chasing
	Attacking = netconfig.Attacking
)
