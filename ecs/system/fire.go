package system

import (
	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
)

const shootSound = "shoot"

// FireSystem spawns a bullet from the pool on a fire press once the
// cooldown has elapsed. An exhausted pool drops the shot silently, but the
// cooldown still restarts.
type FireSystem struct{}

func NewFireSystem() *FireSystem {
	return &FireSystem{}
}

func (s *FireSystem) Update(w *ecs.World) {
	session, ok := sessionOf(w)
	if !ok || session.Terminal() {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, player *component.Player, input *component.Input, t *component.Transform) {
		if !input.FirePressed {
			return
		}
		input.FirePressed = false

		if session.Now <= session.LastFired {
			return
		}
		session.LastFired = session.Now + player.FireCooldown

		if _, ok := AcquireBullet(w, t.X+player.MuzzleOffsetX, t.Y+player.MuzzleOffsetY); !ok {
			return
		}
		if a, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
			a.Request(shootSound)
		}
	})
}
