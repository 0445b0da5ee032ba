// Package leveldata provides TMX arena parsing. It has no dependencies on
// donburi or resolv, pure data only.
package leveldata

// ArenaData holds everything the simulation needs from a TMX arena file.
type ArenaData struct {
	Name         string
	SolidRects   []SolidRect
	PlayerSpawns []SpawnPoint
	EnemySpawns  []SpawnPoint
	MapWidth     int // Pixels
	MapHeight    int
	TileWidth    int
	TileHeight   int
}

// SolidRect represents a solid wall tile.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint is a spawn location in world pixels.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
