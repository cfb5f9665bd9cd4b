package component

import "time"

type Player struct {
	MoveSpeed     float64
	JumpSpeed     float64
	MuzzleOffsetX float64
	MuzzleOffsetY float64
	FireCooldown  time.Duration
}

var PlayerComponent = NewComponent[Player]()
