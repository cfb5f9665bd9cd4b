package entity

import (
	"fmt"

	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
	"github.com/milk9111/waveshooter/prefabs"
)

func NewSession(w *ecs.World) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.SessionComponent.Kind(), &component.Session{State: component.SessionPlaying}); err != nil {
		return 0, fmt.Errorf("session: add session: %w", err)
	}
	return entity, nil
}

func NewSpawner(w *ecs.World, spec prefabs.SpawnerSpec) (ecs.Entity, error) {
	if spec.MaxY < spec.MinY {
		return 0, fmt.Errorf("spawner: max_y %d below min_y %d", spec.MaxY, spec.MinY)
	}
	interval := spec.Interval()
	if interval <= 0 {
		return 0, fmt.Errorf("spawner: interval must be positive, got %v", interval)
	}

	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.SpawnerComponent.Kind(), &component.Spawner{
		Interval: interval,
		NextAt:   interval,
		X:        spec.X,
		MinY:     spec.MinY,
		MaxY:     spec.MaxY,
	}); err != nil {
		return 0, fmt.Errorf("spawner: add spawner: %w", err)
	}
	return entity, nil
}
