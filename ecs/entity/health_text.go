package entity

import (
	"fmt"

	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
	"github.com/milk9111/waveshooter/prefabs"
)

// NewHealthText creates the screen-space health readout for the player.
func NewHealthText(w *ecs.World, spec prefabs.HUDSpec) (ecs.Entity, error) {
	current := 0
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if health, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
			current = health.Current
		}
	}

	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.HealthTextComponent.Kind(), &component.HealthText{
		Text:     component.FormatHealth(current),
		Shown:    current,
		FontSize: spec.FontSize,
	}); err != nil {
		return 0, fmt.Errorf("health text: add text: %w", err)
	}
	if err := ecs.Add(w, entity, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("health text: add screen-space: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("health text: add transform: %w", err)
	}
	return entity, nil
}
