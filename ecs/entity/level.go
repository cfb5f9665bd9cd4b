package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/waveshooter/assets"
	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
	"github.com/milk9111/waveshooter/prefabs"
)

// NewLevelBounds creates the entity the physics system builds walls from.
func NewLevelBounds(w *ecs.World, width, height float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("level: add bounds: %w", err)
	}
	return entity, nil
}

// NewPlatform creates a static solid centered at the spec position.
func NewPlatform(w *ecs.World, spec prefabs.PlatformSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlatformTagComponent.Kind(), &component.PlatformTag{}); err != nil {
		return 0, fmt.Errorf("platform: add tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("platform: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    spec.Width,
		Height:   spec.Height,
		Friction: 0.8,
		Static:   true,
	}); err != nil {
		return 0, fmt.Errorf("platform: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: component.LayerSolid}); err != nil {
		return 0, fmt.Errorf("platform: add collision layer: %w", err)
	}

	img := assets.Rect(int(spec.Width), int(spec.Height), spec.Color.Or(color.Gray{Y: 0x80}))
	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Image:   img,
		OriginX: spec.Width / 2,
		OriginY: spec.Height / 2,
	}); err != nil {
		return 0, fmt.Errorf("platform: add sprite: %w", err)
	}

	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{}); err != nil {
		return 0, fmt.Errorf("platform: add render layer: %w", err)
	}

	return entity, nil
}
