package component

// Velocity in world units per second. Gameplay systems write it before the
// physics step and the physics system writes the solved value back after.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
