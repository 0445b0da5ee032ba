package core

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/doomerang-horde/components"
	cfg "github.com/automoto/doomerang-horde/config"
	"github.com/automoto/doomerang-horde/lifecycle"
	"github.com/automoto/doomerang-horde/shared/leveldata"
	"github.com/automoto/doomerang-horde/systems"
	"github.com/automoto/doomerang-horde/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Arena runs one match on one level. The lifecycle publisher outlives world
// rebuilds so external listeners survive a restart. Not safe for concurrent
// use; drive it from the game loop goroutine.
type Arena struct {
	name      string
	data      *leveldata.ArenaData
	lifecycle *lifecycle.Publisher
	ecs       *ecs.ECS
}

func NewArena(name string, data *leveldata.ArenaData) (*Arena, error) {
	a := &Arena{
		name:      name,
		data:      data,
		lifecycle: lifecycle.NewPublisher(),
	}
	if err := a.build(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Arena) build() error {
	world := donburi.NewWorld()
	e := ecs.NewECS(world)

	systems.AddSystems(e)

	if _, err := factory.CreateLevel(e, a.name, a.data, a.lifecycle); err != nil {
		return fmt.Errorf("build arena: %w", err)
	}
	systems.RegisterScoreEvents(world)
	if match, ok := systems.GetMatch(e); ok {
		match.Best = systems.LoadBestScore(a.name)
	}

	a.ecs = e
	return nil
}

func (a *Arena) Name() string {
	return a.name
}

// Lifecycle exposes the publisher for external listeners.
func (a *Arena) Lifecycle() *lifecycle.Publisher {
	return a.lifecycle
}

// ECS returns the current world. It changes on Restart.
func (a *Arena) ECS() *ecs.ECS {
	return a.ecs
}

func (a *Arena) Start() bool {
	return systems.StartMatch(a.ecs)
}

func (a *Arena) Pause() bool {
	return systems.PauseMatch(a.ecs)
}

func (a *Arena) Resume() bool {
	return systems.ResumeMatch(a.ecs)
}

// End finishes the match without a winner.
func (a *Arena) End() bool {
	return systems.EndMatch(a.ecs, cfg.MatchStateFinished)
}

func (a *Arena) Quit() {
	systems.QuitMatch(a.ecs)
}

// Restart tears every agent down, announces GameRestart and rebuilds the
// level with fresh state. The new match waits for Start.
func (a *Arena) Restart() error {
	a.teardown()
	a.lifecycle.Publish(lifecycle.GameRestart)
	if err := a.build(); err != nil {
		return err
	}
	log.Printf("[arena] restarted %q", a.name)
	return nil
}

func (a *Arena) teardown() {
	var entries []*donburi.Entry
	components.Enemy.Each(a.ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	for _, e := range entries {
		systems.RemoveEntity(a.ecs, e)
	}
}

// Tick simulates one frame of length dt.
func (a *Arena) Tick(dt time.Duration) {
	if sim, ok := systems.GetSim(a.ecs); ok {
		sim.Frame = dt
	}
	a.ecs.Update()
}
