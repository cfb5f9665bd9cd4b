package component

type ContactKind int

const (
	ContactBulletEnemy ContactKind = iota + 1
	ContactPlayerEnemy
)

// Contact is a transient record of a collision pair detected during the
// physics step. Source is the bullet or player and Target the enemy. The
// combat system consumes and destroys contact entities each tick.
type Contact struct {
	Kind   ContactKind
	Source uint64
	Target uint64
}

var ContactComponent = NewComponent[Contact]()
