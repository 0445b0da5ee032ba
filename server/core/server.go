package core

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/doomerang-horde/shared/messages"
	"github.com/automoto/doomerang-horde/shared/netcomponents"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

const controlQueueSize = 16

// Server streams an arena to websocket spectators. It keeps its own network
// world mirroring the arena snapshot; necs syncs that world to every client.
type Server struct {
	arena     *Arena
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport

	state   donburi.Entity
	player  donburi.Entity
	enemies map[string]donburi.Entity

	controls   chan messages.Control
	spectators map[*router.NetworkClient]struct{}
	mu         sync.RWMutex

	quit     chan struct{}
	quitOnce sync.Once
}

// NewServer creates a spectator server for arena ticking at tickRate.
func NewServer(arena *Arena, tickRate int) (*Server, error) {
	world := donburi.NewWorld()

	s := &Server{
		arena:      arena,
		world:      world,
		enemies:    make(map[string]donburi.Entity),
		controls:   make(chan messages.Control, controlQueueSize),
		spectators: make(map[*router.NetworkClient]struct{}),
		quit:       make(chan struct{}),
	}
	s.loop = NewGameLoop(s, tickRate)

	srvsync.UseEsync(world)

	s.state = world.Create(netcomponents.NetGameState)
	if err := srvsync.NetworkSync(world, &s.state, netcomponents.NetGameState); err != nil {
		return nil, err
	}
	s.player = world.Create(netcomponents.NetPlayer)
	if err := srvsync.NetworkSync(world, &s.player, srvsync.WithInterp(netcomponents.NetPlayer)); err != nil {
		return nil, err
	}

	s.setupRouterCallbacks()
	return s, nil
}

// Loop returns the game loop driving this server.
func (s *Server) Loop() *GameLoop {
	return s.loop
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

// Shutdown queues a quit for the game loop, waits up to timeout for the loop
// to apply it and then stops the server. It reports whether the arena saw the
// quit before the timeout.
func (s *Server) Shutdown(timeout time.Duration) bool {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	defer s.Stop()

	select {
	case s.controls <- messages.Control{Action: messages.ControlQuit}:
	case <-deadline.C:
		log.Println("[server] shutdown: control queue blocked, stopping without quit")
		return false
	}

	select {
	case <-s.quit:
		return true
	case <-deadline.C:
		log.Println("[server] shutdown: loop did not drain quit in time")
		return false
	}
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.mu.Lock()
		s.spectators[client] = struct{}{}
		s.mu.Unlock()
		log.Printf("[server] spectator connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.mu.Lock()
		delete(s.spectators, client)
		s.mu.Unlock()
		if err != nil {
			log.Printf("[server] spectator %s disconnected with error: %v", client.Id(), err)
		} else {
			log.Printf("[server] spectator %s disconnected", client.Id())
		}
	})

	router.On(func(client *router.NetworkClient, msg messages.Control) {
		s.Enqueue(msg)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

// Enqueue hands a control command to the game loop. Commands arriving faster
// than the loop drains them are dropped.
func (s *Server) Enqueue(msg messages.Control) bool {
	select {
	case s.controls <- msg:
		return true
	default:
		log.Printf("[server] control queue full, dropping %s", msg.Action)
		return false
	}
}

// ProcessCommands applies queued control commands to the arena. Called from
// the game loop between frames.
func (s *Server) ProcessCommands() {
	for {
		select {
		case msg := <-s.controls:
			s.apply(msg)
		default:
			return
		}
	}
}

func (s *Server) apply(msg messages.Control) {
	switch msg.Action {
	case messages.ControlStart:
		s.arena.Start()
	case messages.ControlPause:
		s.arena.Pause()
	case messages.ControlResume:
		s.arena.Resume()
	case messages.ControlEnd:
		s.arena.End()
	case messages.ControlRestart:
		if err := s.arena.Restart(); err != nil {
			log.Printf("[server] restart failed: %v", err)
			return
		}
		s.arena.Start()
	case messages.ControlQuit:
		s.arena.Quit()
		s.quitOnce.Do(func() { close(s.quit) })
	default:
		log.Printf("[server] unknown control action %d", int(msg.Action))
	}
}

// Mirror copies an arena snapshot into the network world.
func (s *Server) Mirror(snap Snapshot) {
	netcomponents.NetGameState.SetValue(s.world.Entry(s.state), netcomponents.NetGameStateData{
		Arena:      snap.Arena,
		MatchState: snap.State,
		Score:      snap.Score,
		Kills:      snap.Kills,
		Best:       snap.Best,
		Wave:       snap.Wave,
		Elapsed:    snap.Now.Seconds(),
	})
	netcomponents.NetPlayer.SetValue(s.world.Entry(s.player), netcomponents.NetPlayerData{
		X:         snap.Player.X,
		Y:         snap.Player.Y,
		Health:    snap.Player.Health,
		MaxHealth: snap.Player.MaxHealth,
		Alive:     snap.Player.Alive,
	})

	seen := make(map[string]bool, len(snap.Enemies))
	for _, e := range snap.Enemies {
		seen[e.ID] = true
		entity, ok := s.enemies[e.ID]
		if !ok {
			entity = s.world.Create(netcomponents.NetEnemy)
			if err := srvsync.NetworkSync(s.world, &entity, srvsync.WithInterp(netcomponents.NetEnemy)); err != nil {
				log.Printf("[server] failed to sync enemy %s: %v", e.ID, err)
				s.world.Remove(entity)
				continue
			}
			s.enemies[e.ID] = entity
		}
		netcomponents.NetEnemy.SetValue(s.world.Entry(entity), netcomponents.NetEnemyData{
			ID:     e.ID,
			X:      e.X,
			Y:      e.Y,
			State:  int(e.State),
			Health: e.Health,
			Tint:   e.Tint,
		})
	}

	for id, entity := range s.enemies {
		if seen[id] {
			continue
		}
		if s.world.Valid(entity) {
			s.world.Remove(entity)
		}
		delete(s.enemies, id)
	}
}

// World returns the network world
func (s *Server) World() donburi.World {
	return s.world
}

// SpectatorCount returns the number of connected spectators
func (s *Server) SpectatorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.spectators)
}
