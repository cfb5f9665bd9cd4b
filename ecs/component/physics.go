package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are owned by the physics system and stay nil until the
// entity has been synced into the space.
type PhysicsBody struct {
	Body           *cp.Body
	Shape          *cp.Shape
	Width          float64
	Height         float64
	Mass           float64
	Friction       float64
	Static         bool
	Sensor         bool
	DisableGravity bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
