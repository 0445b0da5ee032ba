package protocol

import (
	"github.com/automoto/doomerang-horde/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPlayer    uint = 10
	SyncIDNetEnemy     uint = 14
	SyncIDNetGameState uint = 15
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPlayer uint8 = 10
	InterpIDNetEnemy  uint8 = 14
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and spectators before any network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetPlayer,
		netcomponents.NetPlayerData{},
		netcomponents.NetPlayer,
		esync.WithInterpFn(InterpIDNetPlayer, netcomponents.LerpNetPlayer),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetEnemy,
		netcomponents.NetEnemyData{},
		netcomponents.NetEnemy,
		esync.WithInterpFn(InterpIDNetEnemy, netcomponents.LerpNetEnemy),
	); err != nil {
		return err
	}

	// GameState: no interpolation (discrete state)
	if err := esync.RegisterComponent(
		SyncIDNetGameState,
		netcomponents.NetGameStateData{},
		netcomponents.NetGameState,
	); err != nil {
		return err
	}

	return nil
}
