package system

import (
	"log"
	"math/rand/v2"

	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
	"github.com/milk9111/waveshooter/ecs/entity"
	"github.com/milk9111/waveshooter/prefabs"
)

// SpawnSystem emits enemies on each spawner's interval while the session is
// playing. Concurrent enemies are not capped.
type SpawnSystem struct {
	enemy *prefabs.EnemySpec
	rng   *rand.Rand
}

func NewSpawnSystem(enemy *prefabs.EnemySpec, rng *rand.Rand) *SpawnSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &SpawnSystem{enemy: enemy, rng: rng}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	session, ok := sessionOf(w)
	if !ok || session.Terminal() || s.enemy == nil {
		return
	}

	ecs.ForEach(w, component.SpawnerComponent.Kind(), func(_ ecs.Entity, sp *component.Spawner) {
		if sp.Interval <= 0 {
			return
		}
		for session.Now >= sp.NextAt {
			sp.NextAt += sp.Interval
			y := sp.MinY
			if sp.MaxY > sp.MinY {
				y += s.rng.IntN(sp.MaxY - sp.MinY + 1)
			}
			if _, err := entity.NewEnemy(w, s.enemy, sp.X, float64(y)); err != nil {
				log.Printf("spawn: %v", err)
				continue
			}
			sp.Spawned++
		}
	})
}
