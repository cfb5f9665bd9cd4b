package entity

import (
	"testing"

	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
	"github.com/milk9111/waveshooter/prefabs"
)

func newTestScene(t *testing.T) (*ecs.World, *Scene) {
	t.Helper()
	specs, err := LoadSpecs()
	if err != nil {
		t.Fatalf("load specs: %v", err)
	}
	w := ecs.NewWorld()
	scene, err := NewScene(w, specs, SceneOptions{})
	if err != nil {
		t.Fatalf("new scene: %v", err)
	}
	return w, scene
}

func TestNewScene(t *testing.T) {
	w, scene := newTestScene(t)

	t.Run("player", func(t *testing.T) {
		health, ok := ecs.Get(w, scene.Player, component.HealthComponent.Kind())
		if !ok || health.Current != 3 || health.Initial != 3 {
			t.Fatalf("player health = %+v, want 3/3", health)
		}
		tr, ok := ecs.Get(w, scene.Player, component.TransformComponent.Kind())
		if !ok || tr.X != 100 || tr.Y != 450 {
			t.Fatalf("player transform = %+v, want (100,450)", tr)
		}
		if ecs.Has(w, scene.Player, component.AudioComponent.Kind()) {
			t.Fatalf("audio should only be attached when requested")
		}
	})

	t.Run("bullet_pool", func(t *testing.T) {
		if len(scene.Bullets) != 10 {
			t.Fatalf("pool size = %d, want 10", len(scene.Bullets))
		}
		for _, b := range scene.Bullets {
			bullet, ok := ecs.Get(w, b, component.BulletComponent.Kind())
			if !ok || bullet.Active {
				t.Fatalf("slot %v should start inactive", b)
			}
			if ecs.Has(w, b, component.PhysicsBodyComponent.Kind()) {
				t.Fatalf("inactive slot %v should not carry a body", b)
			}
		}
	})

	t.Run("session", func(t *testing.T) {
		session, ok := ecs.Get(w, scene.Session, component.SessionComponent.Kind())
		if !ok || session.Terminal() || session.GameOverCount != 0 {
			t.Fatalf("session = %+v, want fresh playing session", session)
		}
	})

	t.Run("hud", func(t *testing.T) {
		text, ok := ecs.Get(w, scene.HUD, component.HealthTextComponent.Kind())
		if !ok || text.Text != "Health: 3 ❤️" {
			t.Fatalf("hud text = %+v", text)
		}
	})

	t.Run("platforms", func(t *testing.T) {
		if n := ecs.Count(w, component.PlatformTagComponent.Kind()); n != len(scene.Specs.Scene.Platforms) {
			t.Fatalf("platforms = %d, want %d", n, len(scene.Specs.Scene.Platforms))
		}
	})
}

func TestNewEnemyWalksLeft(t *testing.T) {
	specs, err := LoadSpecs()
	if err != nil {
		t.Fatalf("load specs: %v", err)
	}
	w := ecs.NewWorld()

	e, err := NewEnemy(w, specs.Enemy, 800, 420)
	if err != nil {
		t.Fatalf("new enemy: %v", err)
	}
	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok || vel.X != -100 || vel.Y != 0 {
		t.Fatalf("enemy velocity = %+v, want (-100, 0)", vel)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X != 800 || tr.Y != 420 {
		t.Fatalf("enemy transform = %+v, want (800, 420)", tr)
	}
}

func TestNewSpawnerRejectsBadRange(t *testing.T) {
	w := ecs.NewWorld()
	cases := []struct {
		name string
		spec prefabs.SpawnerSpec
	}{
		{"inverted_range", prefabs.SpawnerSpec{IntervalMS: 2000, MinY: 500, MaxY: 300}},
		{"zero_interval", prefabs.SpawnerSpec{MinY: 300, MaxY: 500}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewSpawner(w, c.spec); err == nil {
				t.Fatalf("expected error for %+v", c.spec)
			}
		})
	}
}
