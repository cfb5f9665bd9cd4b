package component

// Collision categories used by CollisionLayer.
const (
	LayerSolid uint32 = 1 << iota
	LayerPlayer
	LayerEnemy
	LayerBullet
)

// CollisionLayer declares a collision category and mask so the physics
// system can selectively enable collisions between groups of objects. Two
// shapes interact only when each one's category is in the other's mask.
type CollisionLayer struct {
	// Category is a bitmask of this entity's collision category. If zero,
	// the physics system will treat it as LayerSolid.
	Category uint32 `yaml:"category,omitempty"`
	// Mask is a bitmask of categories this entity should collide with. If
	// zero, the physics system will treat it as all-bits set.
	Mask uint32 `yaml:"mask,omitempty"`
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
