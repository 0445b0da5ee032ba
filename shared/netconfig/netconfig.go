// Package netconfig defines lightweight types shared between the simulation and
// the spectator feed. It must have zero dependencies on the ECS or any transport
// so both sides can import it.
package netconfig

// StateID identifies an enemy agent's behavior state.
type StateID int

// MatchStateID represents the current phase of an arena match.
type MatchStateID int

const (
	MatchStateWaiting  MatchStateID = iota // Built, waiting for GameStart
	MatchStatePlaying                      // Simulation advancing
	MatchStatePaused                       // Simulation time frozen
	MatchStateWon                          // Score target reached
	MatchStateLost                         // Player died
	MatchStateFinished                     // Ended or quit
)

const (
	StateNone StateID = -1

	// Idle is terminal: the pursued target is gone.
	Idle StateID = iota - 1
	Chasing
	Attacking
)

// StateNames maps StateID to its display name.
var StateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Chasing:   "chasing",
	Attacking: "attacking",
}

func (s StateID) String() string {
	if name, ok := StateNames[s]; ok {
		return name
	}
	return "unknown"
}

var matchStateNames = map[MatchStateID]string{
	MatchStateWaiting:  "waiting",
	MatchStatePlaying:  "playing",
	MatchStatePaused:   "paused",
	MatchStateWon:      "won",
	MatchStateLost:     "lost",
	MatchStateFinished: "finished",
}

func (m MatchStateID) String() string {
	if name, ok := matchStateNames[m]; ok {
		return name
	}
	return "unknown"
}

// Active reports whether the match has not reached a terminal phase.
func (m MatchStateID) Active() bool {
	return m == MatchStateWaiting || m == MatchStatePlaying || m == MatchStatePaused
}
