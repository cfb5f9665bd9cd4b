package system

import (
	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
)

// PlayerControllerSystem turns input into player velocity: a fixed walk
// speed while a direction is held, and a jump impulse only from the floor.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if !simulating(w) {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, player *component.Player, input *component.Input, vel *component.Velocity) {
		vel.X = 0
		switch {
		case input.MoveX < 0:
			vel.X = -player.MoveSpeed
		case input.MoveX > 0:
			vel.X = player.MoveSpeed
		}

		if !input.Jump {
			return
		}
		pc, ok := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())
		if !ok || !pc.OnFloor() {
			return
		}
		vel.Y = -player.JumpSpeed
		pc.Grounded = false
		pc.GroundGrace = 0
	})
}
