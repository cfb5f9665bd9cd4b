package entity

import (
	"fmt"

	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/prefabs"
)

// Specs bundles the prefab specs one scene is built from.
type Specs struct {
	Scene  *prefabs.SceneSpec
	Player *prefabs.PlayerSpec
	Enemy  *prefabs.EnemySpec
	Bullet *prefabs.BulletSpec
}

// LoadSpecs reads every prefab spec a scene needs.
func LoadSpecs() (*Specs, error) {
	scene, err := prefabs.LoadSceneSpec()
	if err != nil {
		return nil, err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	enemy, err := prefabs.LoadEnemySpec()
	if err != nil {
		return nil, err
	}
	bullet, err := prefabs.LoadBulletSpec()
	if err != nil {
		return nil, err
	}
	return &Specs{Scene: scene, Player: player, Enemy: enemy, Bullet: bullet}, nil
}

// Scene holds the singleton entities of one play session.
type Scene struct {
	Specs   *Specs
	Bounds  ecs.Entity
	Player  ecs.Entity
	Session ecs.Entity
	Spawner ecs.Entity
	HUD     ecs.Entity
	Bullets []ecs.Entity
}

type SceneOptions struct {
	// Audio attaches sound clips; tests leave it off to avoid opening a device.
	Audio bool
}

// NewScene populates w with the level, player, bullet pool, spawner,
// session and HUD.
func NewScene(w *ecs.World, specs *Specs, opts SceneOptions) (*Scene, error) {
	if specs == nil || specs.Scene == nil {
		return nil, fmt.Errorf("scene: missing specs")
	}

	s := &Scene{Specs: specs}
	var err error

	if s.Bounds, err = NewLevelBounds(w, specs.Scene.Width, specs.Scene.Height); err != nil {
		return nil, err
	}
	for i, p := range specs.Scene.Platforms {
		if _, err := NewPlatform(w, p); err != nil {
			return nil, fmt.Errorf("scene: platform %d: %w", i, err)
		}
	}

	if s.Player, err = NewPlayer(w, specs.Player); err != nil {
		return nil, err
	}
	if opts.Audio {
		if err := AttachAudio(w, s.Player, specs.Player.Audio); err != nil {
			return nil, fmt.Errorf("scene: player audio: %w", err)
		}
	}

	if s.Bullets, err = NewBulletPool(w, specs.Bullet, specs.Scene.Bullets.PoolSize); err != nil {
		return nil, err
	}
	if s.Session, err = NewSession(w); err != nil {
		return nil, err
	}
	if s.Spawner, err = NewSpawner(w, specs.Scene.Spawner); err != nil {
		return nil, err
	}
	if s.HUD, err = NewHealthText(w, specs.Scene.HUD); err != nil {
		return nil, err
	}

	return s, nil
}
