package system

import (
	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
)

// BulletCleanupSystem returns bullets that left the level to the pool.
type BulletCleanupSystem struct{}

func NewBulletCleanupSystem() *BulletCleanupSystem {
	return &BulletCleanupSystem{}
}

func (s *BulletCleanupSystem) Update(w *ecs.World) {
	if !simulating(w) {
		return
	}
	boundsEntity, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, _ := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())

	ecs.ForEach2(w, component.BulletComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Bullet, t *component.Transform) {
		if !b.Active || bounds.Contains(t.X, t.Y, b.Width) {
			return
		}
		ReleaseBullet(w, e)
	})
}
