package components

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpawnerData drives enemy waves from the arena's spawn points.
type SpawnerData struct {
	Points []math.Vec2
	Next   time.Duration // Simulation time of the next wave
	Wave   int
	Cursor int // Next spawn point to use
}

var Spawner = donburi.NewComponentType[SpawnerData]()
