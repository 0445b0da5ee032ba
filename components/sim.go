package components

import (
	"time"

	"github.com/automoto/doomerang-horde/lifecycle"
	"github.com/automoto/doomerang-horde/nav"
	"github.com/automoto/doomerang-horde/sched"
	"github.com/yohamta/donburi"
)

// SimData is the per-arena simulation context shared by all systems.
type SimData struct {
	Scheduler *sched.Scheduler
	Lifecycle *lifecycle.Publisher
	Grid      *nav.Grid
	Frame     time.Duration // Length of the frame being simulated
}

var Sim = donburi.NewComponentType[SimData]()
