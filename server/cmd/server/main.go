package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/doomerang-horde/config"
	"github.com/automoto/doomerang-horde/server/core"
	"github.com/automoto/doomerang-horde/shared/protocol"
	"github.com/automoto/doomerang-horde/systems"
)

const shutdownTimeout = 2 * time.Second

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", config.Sim.TickRate, "Simulation tick rate (updates per second)")
	arenaName := flag.String("arena", "", "Arena to play (empty = first arena)")
	arenaDir := flag.String("arenas", "", "Directory of .tmx arenas (empty = bundled arenas)")
	designer := flag.String("designer", "", "Designer YAML overriding the defaults")
	watch := flag.Bool("watch", false, "Reload the designer file when it changes")
	frames := flag.Int("frames", 0, "Run this many frames headless, print the result and exit")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("Invalid tick rate %d", *tickRate)
	}
	if *designer != "" {
		if err := config.LoadFile(*designer); err != nil {
			log.Fatalf("Failed to load designer config: %v", err)
		}
	}
	_ = systems.InitPersistence("doomerang-horde")

	arena, err := core.NewArenaByName(*arenaDir, *arenaName)
	if err != nil {
		log.Fatalf("Failed to build arena: %v", err)
	}

	if *frames > 0 {
		arena.Start()
		snap := core.RunFrames(arena, *frames, time.Second/time.Duration(*tickRate))
		log.Printf("Arena %q after %v: %s, score %d (best %d), kills %d, wave %d, player hp %d/%d, %d enemies",
			snap.Arena, snap.Now, snap.State, snap.Score, snap.Best, snap.Kills, snap.Wave,
			snap.Player.Health, snap.Player.MaxHealth, len(snap.Enemies))
		return
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	server, err := core.NewServer(arena, *tickRate)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if *watch && *designer != "" {
		watcher, err := config.Watch(*designer)
		if err != nil {
			log.Fatalf("Failed to watch designer config: %v", err)
		}
		defer watcher.Close()
		go func() {
			for err := range watcher.Errors {
				log.Printf("[config] watch error: %v", err)
			}
		}()
		server.Loop().WatchConfig(watcher.Events)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Shutdown(shutdownTimeout)
		os.Exit(0)
	}()

	arena.Start()
	log.Printf("Starting horde server on port %d (arena: %s, tick rate: %d/s)", *port, arena.Name(), *tickRate)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
