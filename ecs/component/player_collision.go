package component

// PlayerCollision stores per-player collision state derived from physics contacts.
type PlayerCollision struct {
	Grounded    bool
	GroundGrace int
}

// OnFloor reports whether the player may start a jump this tick.
func (pc *PlayerCollision) OnFloor() bool {
	return pc != nil && (pc.Grounded || pc.GroundGrace > 0)
}

var PlayerCollisionComponent = NewComponent[PlayerCollision]()
