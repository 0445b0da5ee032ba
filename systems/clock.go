package systems

import "github.com/yohamta/donburi/ecs"

// UpdateClock advances simulation time by one frame, resuming every
// scheduled task once.
func UpdateClock(e *ecs.ECS) {
	sim, ok := GetSim(e)
	if !ok {
		return
	}
	sim.Scheduler.Advance(sim.Frame)
}
