package component

// Bullet marks a projectile pool slot. A slot is live while Active; inactive
// slots carry no physics body or visible sprite and may be reused.
type Bullet struct {
	Speed  float64
	Width  float64
	Height float64
	Active bool
	// Shots counts how many times the slot has been fired.
	Shots int
}

var BulletComponent = NewComponent[Bullet]()
