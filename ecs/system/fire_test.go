package system

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
)

func TestFireCooldown(t *testing.T) {
	cases := []struct {
		name   string
		second time.Duration
		want   int
	}{
		{"within_cooldown", 200 * time.Millisecond, 1},
		{"at_cooldown_edge", 316 * time.Millisecond, 1},
		{"after_cooldown", 317 * time.Millisecond, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, scene := newTestScene(t)
			pressFire(t, w, scene, 16*time.Millisecond)
			pressFire(t, w, scene, c.second)
			if n := ActiveBullets(w); n != c.want {
				t.Fatalf("active bullets = %d, want %d", n, c.want)
			}
		})
	}
}

func TestFireSpawnsAtMuzzle(t *testing.T) {
	w, scene := newTestScene(t)
	pressFire(t, w, scene, time.Second)

	for _, b := range scene.Bullets {
		bullet, _ := ecs.Get(w, b, component.BulletComponent.Kind())
		if !bullet.Active {
			continue
		}
		tr, _ := ecs.Get(w, b, component.TransformComponent.Kind())
		if tr.X != 130 || tr.Y != 450 {
			t.Fatalf("bullet at (%v,%v), want (130,450)", tr.X, tr.Y)
		}
		vel, _ := ecs.Get(w, b, component.VelocityComponent.Kind())
		if vel.X != 300 || vel.Y != 0 {
			t.Fatalf("bullet velocity = %+v, want (300,0)", vel)
		}
		body, ok := ecs.Get(w, b, component.PhysicsBodyComponent.Kind())
		if !ok || !body.DisableGravity || !body.Sensor {
			t.Fatalf("bullet body = %+v, want gravity-free sensor", body)
		}
		sprite, _ := ecs.Get(w, b, component.SpriteComponent.Kind())
		if sprite.Hidden {
			t.Fatalf("live bullet sprite is hidden")
		}
		return
	}
	t.Fatalf("no live bullet")
}

func TestFirePoolCap(t *testing.T) {
	w, scene := newTestScene(t)
	for i := 1; i <= 30; i++ {
		pressFire(t, w, scene, time.Duration(i)*time.Second)
		if n := ActiveBullets(w); n > 10 {
			t.Fatalf("shot %d: active bullets = %d, want <= 10", i, n)
		}
	}
	if n := ActiveBullets(w); n != 10 {
		t.Fatalf("active bullets = %d, want 10", n)
	}

	// an exhausted pool still restarts the cooldown
	session := mustSession(t, w)
	if session.LastFired != 30*time.Second+300*time.Millisecond {
		t.Fatalf("last fired = %v", session.LastFired)
	}
}

func TestFireRequiresPress(t *testing.T) {
	w, _ := newTestScene(t)
	mustSession(t, w).Now = time.Second
	NewFireSystem().Update(w)
	if n := ActiveBullets(w); n != 0 {
		t.Fatalf("active bullets = %d without a press", n)
	}
}

func TestFireQueuesShotSound(t *testing.T) {
	w, scene := newTestScene(t)
	clip := &component.Audio{
		Names:   []string{shootSound},
		Players: []*audio.Player{nil},
		Volume:  []float64{1},
		Play:    []bool{false},
		Stop:    []bool{false},
	}
	if err := ecs.Add(w, scene.Player, component.AudioComponent.Kind(), clip); err != nil {
		t.Fatalf("add audio: %v", err)
	}

	pressFire(t, w, scene, 100*time.Millisecond)
	if !clip.Play[0] {
		t.Fatalf("shot sound not queued")
	}

	NewAudioSystem().Update(w)
	if clip.Play[0] {
		t.Fatalf("audio system did not consume the request")
	}
}

func TestReleaseBulletTwice(t *testing.T) {
	w, _ := newTestScene(t)
	b, ok := AcquireBullet(w, 10, 10)
	if !ok {
		t.Fatalf("acquire failed")
	}
	if !ReleaseBullet(w, b) {
		t.Fatalf("first release failed")
	}
	if ReleaseBullet(w, b) {
		t.Fatalf("second release should report false")
	}
	if ecs.Has(w, b, component.PhysicsBodyComponent.Kind()) {
		t.Fatalf("released bullet keeps its body")
	}
}
