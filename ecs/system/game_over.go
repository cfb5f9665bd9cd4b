package system

import (
	"image/color"

	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
)

var deadTint = color.RGBA{R: 0xff, A: 0xff}

// GameOverSystem applies a pending GameOverRequest: the player stops and
// turns red, then onGameOver is called so the game can show its overlay.
type GameOverSystem struct {
	onGameOver func()
}

func NewGameOverSystem(onGameOver func()) *GameOverSystem {
	return &GameOverSystem{onGameOver: onGameOver}
}

func (s *GameOverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	requested := false
	ecs.ForEach(w, component.GameOverRequestComponent.Kind(), func(e ecs.Entity, _ *component.GameOverRequest) {
		requested = true
		ecs.DestroyEntity(w, e)
	})
	if !requested {
		return
	}

	ecs.ForEach(w, component.PlayerTagComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag) {
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vel.X, vel.Y = 0, 0
		}
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
			body.Body.SetVelocity(0, 0)
		}
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Tint = deadTint
		}
	})

	if s.onGameOver != nil {
		s.onGameOver()
	}
}
