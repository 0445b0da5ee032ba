package messages

// ControlAction is a match command a spectator may send to the server.
type ControlAction int

const (
	ControlStart ControlAction = iota
	ControlPause
	ControlResume
	ControlEnd
	ControlRestart
	ControlQuit
)

var controlNames = map[ControlAction]string{
	ControlStart:   "start",
	ControlPause:   "pause",
	ControlResume:  "resume",
	ControlEnd:     "end",
	ControlRestart: "restart",
	ControlQuit:    "quit",
}

func (a ControlAction) String() string {
	if name, ok := controlNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseControlAction maps a command name back to its action.
func ParseControlAction(name string) (ControlAction, bool) {
	for a, n := range controlNames {
		if n == name {
			return a, true
		}
	}
	return 0, false
}

// Control is sent by a spectator to drive the match.
type Control struct {
	Action ControlAction
}
