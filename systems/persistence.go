package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedRecord is the best score stored on disk for one arena.
type SavedRecord struct {
	BestScore int `json:"bestScore"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for score storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[persistence] warning: could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func recordKey(arena string) string {
	if arena == "" {
		return "best"
	}
	return "best_" + arena
}

// LoadBestScore returns the saved best score for arena, or 0 when nothing is
// stored or persistence is unavailable.
func LoadBestScore(arena string) int {
	if !gdataInitialized || gdataManager == nil {
		return 0
	}

	data, err := gdataManager.LoadItem(recordKey(arena))
	if err != nil {
		log.Printf("[persistence] warning: could not load best score: %v", err)
		return 0
	}
	if len(data) == 0 {
		return 0
	}

	var record SavedRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("[persistence] warning: could not parse best score: %v", err)
		return 0
	}
	return record.BestScore
}

// SaveBestScore saves score as the best for arena
func SaveBestScore(arena string, score int) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(SavedRecord{BestScore: score})
	if err != nil {
		log.Printf("[persistence] warning: could not serialize best score: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(recordKey(arena), data); err != nil {
		log.Printf("[persistence] warning: could not save best score: %v", err)
		return err
	}
	return nil
}
