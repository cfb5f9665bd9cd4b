package component

import "time"

// Spawner emits one enemy every Interval of session time at X and a random
// height in [MinY, MaxY].
type Spawner struct {
	Interval time.Duration
	NextAt   time.Duration
	X        float64
	MinY     int
	MaxY     int
	Spawned  int
}

var SpawnerComponent = NewComponent[Spawner]()
