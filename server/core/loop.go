package core

import (
	"log"
	"time"

	cfg "github.com/automoto/doomerang-horde/config"
	"github.com/automoto/doomerang-horde/systems"
	"github.com/leap-fish/necs/esync/srvsync"
)

type GameLoop struct {
	server   *Server
	tickRate int
	reload   <-chan string
	running  bool
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// WatchConfig makes the loop reload the designer file on each event, between
// frames. Call before Run.
func (g *GameLoop) WatchConfig(events <-chan string) {
	g.reload = events
}

func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[loop] started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("[loop] stopped")
			return
		case path, ok := <-g.reload:
			if !ok {
				g.reload = nil
				continue
			}
			if err := cfg.LoadFile(path); err != nil {
				log.Printf("[config] reload failed, keeping previous values: %v", err)
			}
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	g.server.ProcessCommands()

	g.server.arena.Tick(time.Second / time.Duration(g.tickRate))
	g.server.Mirror(g.server.arena.Snapshot())

	if err := srvsync.DoSync(); err != nil {
		log.Printf("[loop] sync error: %v", err)
	}
}

// RunFrames advances an arena by frames ticks of dt without any network and
// returns the final snapshot.
func RunFrames(a *Arena, frames int, dt time.Duration) Snapshot {
	for i := 0; i < frames; i++ {
		a.Tick(dt)
		if match, ok := systems.GetMatch(a.ecs); ok && !match.State.Active() {
			break
		}
	}
	return a.Snapshot()
}
