package factory

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/doomerang-horde/archetypes"
	"github.com/automoto/doomerang-horde/components"
	cfg "github.com/automoto/doomerang-horde/config"
	"github.com/automoto/doomerang-horde/lifecycle"
	"github.com/automoto/doomerang-horde/nav"
	"github.com/automoto/doomerang-horde/sched"
	"github.com/automoto/doomerang-horde/shared/leveldata"
	"github.com/automoto/doomerang-horde/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var ErrNoPlayerSpawn = errors.New("arena has no player spawn")

// CreateLevel builds a complete arena in an empty world: level record,
// collision space and walls, nav grid, simulation context, match, spawner and
// player. Enemies arrive later through the spawner.
func CreateLevel(ecs *ecs.ECS, name string, data *leveldata.ArenaData, lc *lifecycle.Publisher) (*donburi.Entry, error) {
	if len(data.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("create level %q: %w", name, ErrNoPlayerSpawn)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Name: name, Arena: data})

	cell := int(cfg.Nav.CellSize)
	CreateSpace(ecs, data.MapWidth, data.MapHeight, cell, cell)
	for _, r := range data.SolidRects {
		CreateWall(ecs, r)
	}

	spaceEntry, _ := components.Space.First(ecs.World)
	grid := nav.NewGrid(components.Space.Get(spaceEntry), float64(data.MapWidth), float64(data.MapHeight), cfg.Nav.CellSize, tags.ResolvSolid)

	sim := archetypes.Sim.Spawn(ecs)
	components.Sim.SetValue(sim, components.SimData{
		Scheduler: sched.New(),
		Lifecycle: lc,
		Grid:      grid,
	})

	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{State: cfg.MatchStateWaiting})

	points := make([]math.Vec2, 0, len(data.EnemySpawns))
	for _, sp := range data.EnemySpawns {
		points = append(points, math.NewVec2(sp.X, sp.Y))
	}
	spawner := archetypes.Spawner.Spawn(ecs)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Points: points,
		Next:   cfg.Wave.FirstDelay.Duration(),
	})

	spawn := data.PlayerSpawns[0]
	CreatePlayer(ecs, spawn.X, spawn.Y)

	log.Printf("[arena] built %q: %d solid tiles, %d enemy spawns, %dx%d map",
		name, len(data.SolidRects), len(points), data.MapWidth, data.MapHeight)
	return level, nil
}
