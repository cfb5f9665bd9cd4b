package component

// AI drives an enemy's horizontal velocity through a steering script.
// Script names a file under prefabs/scripts.
type AI struct {
	MoveSpeed float64
	Script    string
}

var AIComponent = NewComponent[AI]()
