package systems

import (
	"log"

	"github.com/automoto/doomerang-horde/components"
	cfg "github.com/automoto/doomerang-horde/config"
	"github.com/automoto/doomerang-horde/lifecycle"
	"github.com/automoto/doomerang-horde/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch tracks elapsed play time and ends the match when the score
// target is reached or the player is gone.
func UpdateMatch(e *ecs.ECS) {
	match, ok := GetMatch(e)
	if !ok || match.State != cfg.MatchStatePlaying {
		return
	}
	if sim, ok := GetSim(e); ok {
		match.Elapsed += sim.Frame
	}

	if player, ok := tags.Player.First(e.World); !ok || components.Health.Get(player).Dead() {
		EndMatch(e, cfg.MatchStateLost)
		return
	}
	if cfg.Wave.WinScore > 0 && match.Score >= cfg.Wave.WinScore {
		EndMatch(e, cfg.MatchStateWon)
	}
}

// UpdateScore credits enemy deaths published during the frame.
func UpdateScore(e *ecs.ECS) {
	components.AgentDied.ProcessEvents(e.World)
}

// RegisterScoreEvents subscribes the match to enemy deaths. Call once per world.
func RegisterScoreEvents(w donburi.World) {
	components.AgentDied.Subscribe(w, func(w donburi.World, event components.AgentDiedEvent) {
		entry, ok := components.Match.First(w)
		if !ok {
			return
		}
		components.Match.Get(entry).AddKill(event.Points)
	})
}

// StartMatch moves a waiting match into play and announces GameStart.
func StartMatch(e *ecs.ECS) bool {
	match, ok := GetMatch(e)
	if !ok || match.State != cfg.MatchStateWaiting {
		return false
	}
	match.State = cfg.MatchStatePlaying
	publish(e, lifecycle.GameStart)
	return true
}

func PauseMatch(e *ecs.ECS) bool {
	match, ok := GetMatch(e)
	if !ok || match.State != cfg.MatchStatePlaying {
		return false
	}
	match.State = cfg.MatchStatePaused
	publish(e, lifecycle.GamePause)
	return true
}

func ResumeMatch(e *ecs.ECS) bool {
	match, ok := GetMatch(e)
	if !ok || match.State != cfg.MatchStatePaused {
		return false
	}
	match.State = cfg.MatchStatePlaying
	publish(e, lifecycle.GameResume)
	return true
}

// EndMatch finishes an active match with the given outcome. A win or loss is
// announced before GameEnd. The best score is saved when beaten.
func EndMatch(e *ecs.ECS, outcome cfg.MatchStateID) bool {
	match, ok := GetMatch(e)
	if !ok || !match.State.Active() {
		return false
	}
	match.State = outcome
	switch outcome {
	case cfg.MatchStateWon:
		publish(e, lifecycle.GameWon)
	case cfg.MatchStateLost:
		publish(e, lifecycle.GameLose)
	}
	publish(e, lifecycle.GameEnd)

	log.Printf("[arena] match over: %s, score %d, kills %d", outcome, match.Score, match.Kills)
	if match.Score > match.Best {
		match.Best = match.Score
		_ = SaveBestScore(levelName(e), match.Score)
	}
	return true
}

// QuitMatch announces GameQuit. An active match is closed as Finished.
func QuitMatch(e *ecs.ECS) {
	if match, ok := GetMatch(e); ok && match.State.Active() {
		match.State = cfg.MatchStateFinished
	}
	publish(e, lifecycle.GameQuit)
}

func publish(e *ecs.ECS, event lifecycle.Event) {
	sim, ok := GetSim(e)
	if !ok || sim.Lifecycle == nil {
		return
	}
	log.Printf("[arena] %s", event)
	sim.Lifecycle.Publish(event)
}

func levelName(e *ecs.ECS) string {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return ""
	}
	return components.Level.Get(entry).Name
}
