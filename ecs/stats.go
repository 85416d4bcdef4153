package ecs

import "reflect"

// ComponentTypeStats describes one registered component type.
type ComponentTypeStats struct {
	Name        string
	ID          ComponentTypeID
	EntityCount int
}

// SystemMatchStats describes one registered system's matched-entity set.
type SystemMatchStats struct {
	Name         string
	EntityCount  int
	SignatureSet bool
}

// CoordinatorStats is a point-in-time snapshot of the runtime's bookkeeping,
// consumed by the debug overlay and the stress reporter.
type CoordinatorStats struct {
	LiveEntities       int
	Capacity           int
	ComponentTypeCount int
	SystemCount        int
	Components         []ComponentTypeStats
	Systems            []SystemMatchStats
}

// CollectStats walks the registries and returns a snapshot.
func (c *Coordinator) CollectStats() CoordinatorStats {
	stats := CoordinatorStats{
		LiveEntities:       c.entities.liveCount(),
		Capacity:           c.entities.capacity(),
		ComponentTypeCount: c.components.types.count(),
		SystemCount:        len(c.systems.order),
	}

	for id, store := range c.components.stores {
		stats.Components = append(stats.Components, ComponentTypeStats{
			Name:        store.componentType().String(),
			ID:          ComponentTypeID(id),
			EntityCount: store.count(),
		})
	}

	for _, entry := range c.systems.order {
		stats.Systems = append(stats.Systems, SystemMatchStats{
			Name:         systemKey(reflect.TypeOf(entry.system)).Name(),
			EntityCount:  entry.matched.size(),
			SignatureSet: entry.hasRequired,
		})
	}
	return stats
}
