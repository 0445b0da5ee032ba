package systems

import (
	"testing"
	"time"

	"github.com/automoto/doomerang-horde/combat"
	"github.com/automoto/doomerang-horde/components"
	"github.com/automoto/doomerang-horde/config"
	"github.com/automoto/doomerang-horde/lifecycle"
	"github.com/automoto/doomerang-horde/shared/gamemath"
	"github.com/automoto/doomerang-horde/shared/leveldata"
	"github.com/automoto/doomerang-horde/systems/factory"
	"github.com/automoto/doomerang-horde/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const tick = 50 * time.Millisecond

// testArena is a walled 20x12 tile room with the player in the middle and one
// enemy spawn 120 units to its left.
func testArena() *leveldata.ArenaData {
	data := &leveldata.ArenaData{
		Name:         "room",
		MapWidth:     320,
		MapHeight:    192,
		TileWidth:    16,
		TileHeight:   16,
		PlayerSpawns: []leveldata.SpawnPoint{{X: 160, Y: 96}},
		EnemySpawns:  []leveldata.SpawnPoint{{X: 40, Y: 96}},
	}
	for x := 0; x < 20; x++ {
		data.SolidRects = append(data.SolidRects,
			leveldata.SolidRect{X: float64(x * 16), Y: 0, W: 16, H: 16},
			leveldata.SolidRect{X: float64(x * 16), Y: 176, W: 16, H: 16})
	}
	for y := 1; y < 11; y++ {
		data.SolidRects = append(data.SolidRects,
			leveldata.SolidRect{X: 0, Y: float64(y * 16), W: 16, H: 16},
			leveldata.SolidRect{X: 304, Y: float64(y * 16), W: 16, H: 16})
	}
	return data
}

type harness struct {
	t      *testing.T
	ecs    *ecs.ECS
	lc     *lifecycle.Publisher
	events []lifecycle.Event
}

// newHarness applies the designer defaults, lets tweak adjust them and builds
// the test room. Globals are restored when the test ends.
func newHarness(t *testing.T, tweak func(d *config.Designer)) *harness {
	t.Helper()
	saved := config.Current()
	t.Cleanup(func() { config.Apply(saved) })

	d := config.Defaults()
	d.Wave.FirstDelay = 0
	d.Wave.SpawnInterval = 100
	d.Wave.PerWave = 1
	d.Wave.MaxAlive = 1
	d.Wave.WinScore = 0
	if tweak != nil {
		tweak(&d)
	}
	config.Apply(d)

	e := ecs.NewECS(donburi.NewWorld())
	AddSystems(e)
	h := &harness{t: t, ecs: e, lc: lifecycle.NewPublisher()}
	if _, err := factory.CreateLevel(e, "room", testArena(), h.lc); err != nil {
		t.Fatalf("CreateLevel: %v", err)
	}
	RegisterScoreEvents(e.World)

	record := func(ev lifecycle.Event) func() {
		return func() { h.events = append(h.events, ev) }
	}
	h.lc.Subscribe(lifecycle.Handlers{
		Start:  record(lifecycle.GameStart),
		Pause:  record(lifecycle.GamePause),
		Resume: record(lifecycle.GameResume),
		Won:    record(lifecycle.GameWon),
		Lose:   record(lifecycle.GameLose),
		End:    record(lifecycle.GameEnd),
		Quit:   record(lifecycle.GameQuit),
	})
	return h
}

func (h *harness) run(frames int) {
	sim, _ := GetSim(h.ecs)
	for i := 0; i < frames; i++ {
		sim.Frame = tick
		h.ecs.Update()
	}
}

// runUntil ticks until done reports true, failing after limit frames.
func (h *harness) runUntil(limit int, done func() bool) {
	h.t.Helper()
	for i := 0; i < limit; i++ {
		h.run(1)
		if done() {
			return
		}
	}
	h.t.Fatalf("condition not reached after %d frames", limit)
}

func (h *harness) match() *components.MatchData {
	m, ok := GetMatch(h.ecs)
	if !ok {
		h.t.Fatal("no match")
	}
	return m
}

func (h *harness) enemies() []*components.EnemyData {
	var out []*components.EnemyData
	components.Enemy.Each(h.ecs.World, func(e *donburi.Entry) {
		out = append(out, components.Enemy.Get(e))
	})
	return out
}

func (h *harness) player() *donburi.Entry {
	p, ok := tags.Player.First(h.ecs.World)
	if !ok {
		h.t.Fatal("no player")
	}
	return p
}

func TestSystemsIdleUntilStart(t *testing.T) {
	h := newHarness(t, nil)
	h.run(10)

	sim, _ := GetSim(h.ecs)
	if sim.Scheduler.Now() != 0 {
		t.Fatalf("clock advanced before start: %v", sim.Scheduler.Now())
	}
	if len(h.enemies()) != 0 {
		t.Fatal("spawner ran before start")
	}
	if !StartMatch(h.ecs) {
		t.Fatal("StartMatch failed from waiting")
	}
	if StartMatch(h.ecs) {
		t.Fatal("StartMatch succeeded twice")
	}
	h.run(1)
	if len(h.enemies()) != 1 {
		t.Fatalf("expected first enemy on the first played frame, got %d", len(h.enemies()))
	}
}

func TestSpawnerWavesRespectCap(t *testing.T) {
	h := newHarness(t, func(d *config.Designer) {
		d.Wave.FirstDelay = 0.5
		d.Wave.SpawnInterval = 1
		d.Wave.PerWave = 2
		d.Wave.MaxAlive = 3
		d.Player.FireRange = 0
	})
	StartMatch(h.ecs)

	h.run(9)
	if n := CountAliveEnemies(h.ecs.World); n != 0 {
		t.Fatalf("spawned %d enemies before the first delay", n)
	}
	h.run(1)
	if n := CountAliveEnemies(h.ecs.World); n != 2 {
		t.Fatalf("first wave spawned %d enemies, want 2", n)
	}
	h.run(20)
	if n := CountAliveEnemies(h.ecs.World); n != 3 {
		t.Fatalf("second wave left %d enemies alive, want cap of 3", n)
	}
	h.run(20)
	if n := CountAliveEnemies(h.ecs.World); n != 3 {
		t.Fatalf("cap exceeded: %d enemies", n)
	}

	seen := map[string]bool{}
	for _, e := range h.enemies() {
		if e.ID == "" || seen[e.ID] {
			t.Fatalf("enemy IDs must be unique and set, got %q", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestEnemiesCloseInOnPlayer(t *testing.T) {
	h := newHarness(t, func(d *config.Designer) {
		d.Player.FireRange = 0
	})
	StartMatch(h.ecs)
	h.run(1)

	entry, _ := components.Enemy.First(h.ecs.World)
	enemy := components.Enemy.Get(entry)
	playerPos := bodyOf(h.player()).Position()
	start := bodyOf(entry).Position().Sub(playerPos).Length()

	h.run(20)
	now := bodyOf(entry).Position().Sub(playerPos).Length()
	if start-now < 30 {
		t.Fatalf("enemy only closed %.1f units in one second", start-now)
	}
	if enemy.Nav.Replans() < 2 {
		t.Fatalf("expected periodic destination refreshes, got %d", enemy.Nav.Replans())
	}
}

func TestPlayerShootsEnemyForPoints(t *testing.T) {
	h := newHarness(t, func(d *config.Designer) {
		d.Player.FireRange = 200
	})
	StartMatch(h.ecs)
	h.run(1)

	agent := h.enemies()[0].Agent
	if h.lc.Listeners() != 3 {
		t.Fatalf("expected recorder plus two agent subscriptions, got %d", h.lc.Listeners())
	}

	h.runUntil(40, func() bool { return h.match().Kills == 1 })

	if h.match().Score != config.Enemy.Points {
		t.Fatalf("score = %d, want %d", h.match().Score, config.Enemy.Points)
	}
	if agent.Alive() {
		t.Fatal("agent still alive after its entity died")
	}
	if len(h.enemies()) != 0 {
		t.Fatal("dead enemy still in the world")
	}
	if h.lc.Listeners() != 1 {
		t.Fatalf("dead agent kept %d lifecycle subscriptions", h.lc.Listeners()-1)
	}
	if n := donburi.NewQuery(filter.Contains(tags.Effect)).Count(h.ecs.World); n != 1 {
		t.Fatalf("expected one death effect, got %d", n)
	}

	h.run(int(config.Effect.DeathEffectLifetime.Duration()/tick) + 1)
	if n := donburi.NewQuery(filter.Contains(tags.Effect)).Count(h.ecs.World); n != 0 {
		t.Fatalf("death effect outlived its lifetime: %d left", n)
	}
}

func TestReachingWinScoreEndsMatch(t *testing.T) {
	h := newHarness(t, func(d *config.Designer) {
		d.Player.FireRange = 200
		d.Wave.WinScore = 1
	})
	StartMatch(h.ecs)
	h.runUntil(40, func() bool { return !h.match().State.Active() })

	m := h.match()
	if m.State != config.MatchStateWon {
		t.Fatalf("state = %s, want won", m.State)
	}
	if m.Best != m.Score {
		t.Fatalf("best = %d, want %d", m.Best, m.Score)
	}
	n := len(h.events)
	if n < 2 || h.events[n-2] != lifecycle.GameWon || h.events[n-1] != lifecycle.GameEnd {
		t.Fatalf("events = %v, want GameWon then GameEnd last", h.events)
	}
}

func TestContactDamagesOnEntryOnly(t *testing.T) {
	h := newHarness(t, func(d *config.Designer) {
		d.Player.InvulnTime = 0
		d.Enemy.Damage = 2
	})
	player := h.player()
	health := components.Health.Get(player)

	entry, err := factory.CreateEnemy(h.ecs, 170, 96)
	if err != nil {
		t.Fatalf("CreateEnemy: %v", err)
	}
	body := bodyOf(entry)

	contact := func() {
		UpdateContacts(h.ecs)
		UpdateCombat(h.ecs)
	}
	contact()
	contact()
	if health.Current != health.Max-2 {
		t.Fatalf("health = %d after staying in contact, want %d", health.Current, health.Max-2)
	}

	body.SetPosition(gamemath.Vec2{X: 100, Y: 96})
	contact()
	body.SetPosition(gamemath.Vec2{X: 165, Y: 96})
	contact()
	if health.Current != health.Max-4 {
		t.Fatalf("health = %d after re-entering, want %d", health.Current, health.Max-4)
	}
}

func TestReloadKeepsSpawnedContactDamage(t *testing.T) {
	h := newHarness(t, func(d *config.Designer) {
		d.Player.InvulnTime = 0
		d.Enemy.Damage = 1
	})
	health := components.Health.Get(h.player())

	early, err := factory.CreateEnemy(h.ecs, 100, 96)
	if err != nil {
		t.Fatalf("CreateEnemy: %v", err)
	}

	reloaded := config.Current()
	reloaded.Enemy.Damage = 5
	config.Apply(reloaded)

	late, err := factory.CreateEnemy(h.ecs, 220, 96)
	if err != nil {
		t.Fatalf("CreateEnemy: %v", err)
	}

	bodyOf(early).SetPosition(gamemath.Vec2{X: 170, Y: 96})
	UpdateContacts(h.ecs)
	UpdateCombat(h.ecs)
	if health.Current != health.Max-1 {
		t.Fatalf("health = %d, want %d from the enemy spawned before the reload", health.Current, health.Max-1)
	}

	bodyOf(early).SetPosition(gamemath.Vec2{X: 100, Y: 96})
	bodyOf(late).SetPosition(gamemath.Vec2{X: 150, Y: 96})
	UpdateContacts(h.ecs)
	UpdateCombat(h.ecs)
	if health.Current != health.Max-6 {
		t.Fatalf("health = %d, want %d after the enemy spawned with reloaded damage", health.Current, health.Max-6)
	}
}

func TestInvulnerabilityAbsorbsFollowUpHits(t *testing.T) {
	h := newHarness(t, func(d *config.Designer) {
		d.Player.InvulnTime = 1
	})
	player := h.player()
	health := components.Health.Get(player)

	QueueDamage(player, combat.Hit{Amount: 1})
	QueueDamage(player, combat.Hit{Amount: 1})
	UpdateCombat(h.ecs)
	if health.Current != health.Max-1 {
		t.Fatalf("health = %d, want one hit through", health.Current)
	}
	if components.Player.Get(player).Invuln != time.Second {
		t.Fatalf("invulnerability not started: %v", components.Player.Get(player).Invuln)
	}
}

func TestPlayerDeathLosesMatchAndIdlesEnemies(t *testing.T) {
	h := newHarness(t, func(d *config.Designer) {
		d.Player.Health = 1
		d.Player.FireRange = 0
	})
	StartMatch(h.ecs)
	h.run(1)
	agent := h.enemies()[0].Agent

	h.runUntil(200, func() bool { return !h.match().State.Active() })

	if h.match().State != config.MatchStateLost {
		t.Fatalf("state = %s, want lost", h.match().State)
	}
	if _, ok := tags.Player.First(h.ecs.World); ok {
		t.Fatal("dead player still in the world")
	}
	if agent.State() != config.Idle {
		t.Fatalf("agent state = %s after target death, want Idle", agent.State())
	}
	if agent.Pursuit.SteeringEnabled() {
		t.Fatal("steering still enabled after target death")
	}
	n := len(h.events)
	if n < 2 || h.events[n-2] != lifecycle.GameLose || h.events[n-1] != lifecycle.GameEnd {
		t.Fatalf("events = %v, want GameLose then GameEnd last", h.events)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	h := newHarness(t, func(d *config.Designer) {
		d.Player.FireRange = 0
	})
	StartMatch(h.ecs)
	h.run(5)

	sim, _ := GetSim(h.ecs)
	enemy := h.enemies()[0]
	entry, _ := components.Enemy.First(h.ecs.World)
	before, now := bodyOf(entry).Position(), sim.Scheduler.Now()

	if !PauseMatch(h.ecs) || PauseMatch(h.ecs) {
		t.Fatal("PauseMatch should only succeed while playing")
	}
	h.run(10)
	if sim.Scheduler.Now() != now || bodyOf(entry).Position() != before {
		t.Fatal("simulation advanced while paused")
	}
	if enemy.Agent.Behavior.Enabled() {
		t.Fatal("agent still enabled while paused")
	}

	if !ResumeMatch(h.ecs) {
		t.Fatal("ResumeMatch failed")
	}
	h.run(5)
	if sim.Scheduler.Now() != now+5*tick {
		t.Fatalf("clock = %v after resume, want %v", sim.Scheduler.Now(), now+5*tick)
	}
	if bodyOf(entry).Position() == before {
		t.Fatal("enemy did not move after resume")
	}
}

func TestQuitClosesMatch(t *testing.T) {
	h := newHarness(t, nil)
	StartMatch(h.ecs)
	h.run(1)
	agent := h.enemies()[0].Agent

	QuitMatch(h.ecs)
	if h.match().State != config.MatchStateFinished {
		t.Fatalf("state = %s, want finished", h.match().State)
	}
	if agent.Behavior.Enabled() {
		t.Fatal("agent still enabled after quit")
	}
	if h.events[len(h.events)-1] != lifecycle.GameQuit {
		t.Fatalf("events = %v", h.events)
	}
}
