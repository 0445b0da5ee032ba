package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// DeathData marks an entity that should be removed from the world at the end
// of the frame.
type DeathData struct {
	At time.Duration
}

var Death = donburi.NewComponentType[DeathData]()
