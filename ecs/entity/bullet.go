package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
	"github.com/milk9111/waveshooter/prefabs"
)

// NewBulletPool creates size inactive bullet slots.
func NewBulletPool(w *ecs.World, spec *prefabs.BulletSpec, size int) ([]ecs.Entity, error) {
	if spec == nil {
		return nil, fmt.Errorf("bullet: nil spec")
	}

	slots := make([]ecs.Entity, 0, size)
	for i := 0; i < size; i++ {
		e, err := newBulletSlot(w, spec)
		if err != nil {
			return nil, fmt.Errorf("bullet: slot %d: %w", i, err)
		}
		slots = append(slots, e)
	}
	return slots, nil
}

func newBulletSlot(w *ecs.World, spec *prefabs.BulletSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.BulletComponent.Kind(), &component.Bullet{
		Speed:  spec.Speed,
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
	}); err != nil {
		return 0, fmt.Errorf("add bullet: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("add velocity: %w", err)
	}

	if err := ecs.Add(w, entity, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.LayerBullet,
		Mask:     component.LayerEnemy,
	}); err != nil {
		return 0, fmt.Errorf("add collision layer: %w", err)
	}

	sprite := buildSprite(spec.Sprite, spec.Collider.Width, spec.Collider.Height, color.White)
	sprite.Hidden = true
	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), sprite); err != nil {
		return 0, fmt.Errorf("add sprite: %w", err)
	}

	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("add render layer: %w", err)
	}

	return entity, nil
}
