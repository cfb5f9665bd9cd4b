package system

import (
	"testing"

	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
)

func TestPlayerController(t *testing.T) {
	cases := []struct {
		name     string
		moveX    float64
		jump     bool
		grounded bool
		wantX    float64
		wantY    float64
	}{
		{"idle", 0, false, true, 0, 0},
		{"left", -1, false, true, -160, 0},
		{"right", 1, false, true, 160, 0},
		{"jump_grounded", 0, true, true, 0, -400},
		{"jump_airborne", 1, true, false, 160, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, scene := newTestScene(t)
			input, _ := ecs.Get(w, scene.Player, component.InputComponent.Kind())
			input.MoveX, input.Jump = c.moveX, c.jump
			pc, _ := ecs.Get(w, scene.Player, component.PlayerCollisionComponent.Kind())
			pc.Grounded = c.grounded

			NewPlayerControllerSystem().Update(w)

			vel, _ := ecs.Get(w, scene.Player, component.VelocityComponent.Kind())
			if vel.X != c.wantX || vel.Y != c.wantY {
				t.Fatalf("velocity = (%v,%v), want (%v,%v)", vel.X, vel.Y, c.wantX, c.wantY)
			}
		})
	}
}

func TestHealthTextFollowsHealth(t *testing.T) {
	w, scene := newTestScene(t)
	hud := NewHealthTextSystem()
	health, _ := ecs.Get(w, scene.Player, component.HealthComponent.Kind())
	text, _ := ecs.Get(w, scene.HUD, component.HealthTextComponent.Kind())

	for _, want := range []string{"Health: 2 ❤️", "Health: 1 ❤️", "Health: 0 ❤️", "Health: 0 ❤️"} {
		health.Damage(1)
		hud.Update(w)
		if text.Text != want {
			t.Fatalf("hud = %q, want %q", text.Text, want)
		}
	}
}

func TestBulletCleanupRecyclesOffscreen(t *testing.T) {
	w, _ := newTestScene(t)
	inside, _ := AcquireBullet(w, 400, 300)
	outside, _ := AcquireBullet(w, 900, 300)

	NewBulletCleanupSystem().Update(w)

	if b, _ := ecs.Get(w, inside, component.BulletComponent.Kind()); !b.Active {
		t.Fatalf("on-screen bullet was recycled")
	}
	if b, _ := ecs.Get(w, outside, component.BulletComponent.Kind()); b.Active {
		t.Fatalf("off-screen bullet still active")
	}
	if n := ActiveBullets(w); n != 1 {
		t.Fatalf("active bullets = %d, want 1", n)
	}
}
