package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
	"github.com/milk9111/waveshooter/prefabs"
)

// NewEnemy spawns an enemy centered at (x, y) walking left.
func NewEnemy(w *ecs.World, spec *prefabs.EnemySpec, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("enemy: nil spec")
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.AIComponent.Kind(), &component.AI{
		MoveSpeed: spec.MoveSpeed,
		Script:    spec.Script,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add ai: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{X: -spec.MoveSpeed}); err != nil {
		return 0, fmt.Errorf("enemy: add velocity: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    spec.Collider.Width,
		Height:   spec.Collider.Height,
		Mass:     spec.Collider.Mass,
		Friction: spec.Collider.Friction,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.LayerEnemy,
		Mask:     component.LayerSolid | component.LayerPlayer | component.LayerBullet,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add collision layer: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), buildSprite(spec.Sprite, spec.Collider.Width, spec.Collider.Height, color.RGBA{R: 0xff, A: 0xff})); err != nil {
		return 0, fmt.Errorf("enemy: add sprite: %w", err)
	}

	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("enemy: add render layer: %w", err)
	}

	return entity, nil
}
