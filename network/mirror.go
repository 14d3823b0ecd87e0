package network

import (
	"github.com/automoto/wavebreak/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// Mirror is the client-side copy of the replicated world.
type Mirror struct {
	world      donburi.World
	presentIDs map[esync.NetworkId]bool
}

func NewMirror() *Mirror {
	return &Mirror{
		world:      donburi.NewWorld(),
		presentIDs: make(map[esync.NetworkId]bool),
	}
}

func (m *Mirror) World() donburi.World {
	return m.world
}

// Apply replaces the mirrored state with a server snapshot. Entities missing
// from the snapshot are removed.
func (m *Mirror) Apply(snapshot esync.WorldSnapshot) {
	clear(m.presentIDs)

	for _, ent := range snapshot {
		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}
		m.applyEntity(ent.Id, compData)
	}

	m.prune()
}

func (m *Mirror) applyEntity(id esync.NetworkId, compData []any) {
	m.presentIDs[id] = true

	entity := esync.FindByNetworkId(m.world, id)
	if !m.world.Valid(entity) {
		entity = m.world.Create(componentTypesFromInstances(compData)...)
		entry := m.world.Entry(entity)
		entry.AddComponent(esync.NetworkIdComponent)
		esync.NetworkIdComponent.SetValue(entry, id)
	}

	entry := m.world.Entry(entity)
	for _, data := range compData {
		applyComponentToEntry(entry, data)
	}
}

func (m *Mirror) prune() {
	var toRemove []*donburi.Entry
	esync.NetworkEntityQuery.Each(m.world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !m.presentIDs[*id] {
			toRemove = append(toRemove, entry)
		}
	})
	for _, entry := range toRemove {
		entry.Remove()
	}
}

// Player returns the replicated player, if any.
func (m *Mirror) Player() (netcomponents.NetPlayerData, bool) {
	e, ok := netcomponents.NetPlayer.First(m.world)
	if !ok {
		return netcomponents.NetPlayerData{}, false
	}
	return *netcomponents.NetPlayer.Get(e), true
}

// Wave returns the replicated run state, if any.
func (m *Mirror) Wave() (netcomponents.NetWaveStateData, bool) {
	e, ok := netcomponents.NetWaveState.First(m.world)
	if !ok {
		return netcomponents.NetWaveStateData{}, false
	}
	return *netcomponents.NetWaveState.Get(e), true
}

// Enemies returns the replicated enemies that are not dying.
func (m *Mirror) Enemies() []netcomponents.NetEnemyData {
	var out []netcomponents.NetEnemyData
	netcomponents.NetEnemy.Each(m.world, func(e *donburi.Entry) {
		if data := netcomponents.NetEnemy.Get(e); !data.Dying {
			out = append(out, *data)
		}
	})
	return out
}

func componentTypesFromInstances(components []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range components {
		switch data.(type) {
		case netcomponents.NetPlayerData:
			ctypes = append(ctypes, netcomponents.NetPlayer)
		case netcomponents.NetEnemyData:
			ctypes = append(ctypes, netcomponents.NetEnemy)
		case netcomponents.NetProjectileData:
			ctypes = append(ctypes, netcomponents.NetProjectile)
		case netcomponents.NetPickupData:
			ctypes = append(ctypes, netcomponents.NetPickup)
		case netcomponents.NetWaveStateData:
			ctypes = append(ctypes, netcomponents.NetWaveState)
		}
	}
	return ctypes
}

func applyComponentToEntry(entry *donburi.Entry, data any) {
	switch v := data.(type) {
	case netcomponents.NetPlayerData:
		setComponent(entry, netcomponents.NetPlayer, v)
	case netcomponents.NetEnemyData:
		setComponent(entry, netcomponents.NetEnemy, v)
	case netcomponents.NetProjectileData:
		setComponent(entry, netcomponents.NetProjectile, v)
	case netcomponents.NetPickupData:
		setComponent(entry, netcomponents.NetPickup, v)
	case netcomponents.NetWaveStateData:
		setComponent(entry, netcomponents.NetWaveState, v)
	}
}

func setComponent[T any](entry *donburi.Entry, c *donburi.ComponentType[T], v T) {
	if !entry.HasComponent(c) {
		entry.AddComponent(c)
	}
	c.SetValue(entry, v)
}
