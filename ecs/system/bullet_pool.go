package system

import (
	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
)

// AcquireBullet activates a free pool slot at (x, y) moving right at the
// slot's speed. It reports false when every slot is live.
func AcquireBullet(w *ecs.World, x, y float64) (ecs.Entity, bool) {
	var slot ecs.Entity
	var bullet *component.Bullet
	ecs.ForEach(w, component.BulletComponent.Kind(), func(e ecs.Entity, b *component.Bullet) {
		if bullet != nil || b.Active {
			return
		}
		slot, bullet = e, b
	})
	if bullet == nil {
		return 0, false
	}

	if err := ecs.Add(w, slot, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:          bullet.Width,
		Height:         bullet.Height,
		Sensor:         true,
		DisableGravity: true,
	}); err != nil {
		return 0, false
	}

	bullet.Active = true
	bullet.Shots++

	if t, ok := ecs.Get(w, slot, component.TransformComponent.Kind()); ok {
		t.X, t.Y = x, y
	}
	if v, ok := ecs.Get(w, slot, component.VelocityComponent.Kind()); ok {
		v.X, v.Y = bullet.Speed, 0
	}
	if s, ok := ecs.Get(w, slot, component.SpriteComponent.Kind()); ok {
		s.Hidden = false
	}
	return slot, true
}

// ReleaseBullet returns a live slot to the pool. It reports false if e is
// not a live bullet, which makes repeated releases harmless.
func ReleaseBullet(w *ecs.World, e ecs.Entity) bool {
	bullet, ok := ecs.Get(w, e, component.BulletComponent.Kind())
	if !ok || !bullet.Active {
		return false
	}
	bullet.Active = false
	ecs.Remove(w, e, component.PhysicsBodyComponent.Kind())
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.X, v.Y = 0, 0
	}
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		s.Hidden = true
	}
	return true
}

// ActiveBullets counts live pool slots.
func ActiveBullets(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.BulletComponent.Kind(), func(_ ecs.Entity, b *component.Bullet) {
		if b.Active {
			n++
		}
	})
	return n
}
