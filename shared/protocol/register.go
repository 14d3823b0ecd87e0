package protocol

import (
	"github.com/automoto/wavebreak/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPlayer     uint = 10
	SyncIDNetEnemy      uint = 11
	SyncIDNetProjectile uint = 12
	SyncIDNetPickup     uint = 13
	SyncIDNetWaveState  uint = 14
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPlayer     uint8 = 10
	InterpIDNetEnemy      uint8 = 11
	InterpIDNetProjectile uint8 = 12
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
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

	if err := esync.RegisterComponent(
		SyncIDNetProjectile,
		netcomponents.NetProjectileData{},
		netcomponents.NetProjectile,
		esync.WithInterpFn(InterpIDNetProjectile, netcomponents.LerpNetProjectile),
	); err != nil {
		return err
	}

	// Pickups don't move
	if err := esync.RegisterComponent(
		SyncIDNetPickup,
		netcomponents.NetPickupData{},
		netcomponents.NetPickup,
	); err != nil {
		return err
	}

	// WaveState: no interpolation (discrete state)
	if err := esync.RegisterComponent(
		SyncIDNetWaveState,
		netcomponents.NetWaveStateData{},
		netcomponents.NetWaveState,
	); err != nil {
		return err
	}

	return nil
}
