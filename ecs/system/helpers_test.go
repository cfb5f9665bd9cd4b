package system

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
	"github.com/milk9111/waveshooter/ecs/entity"
)

func newTestScene(t *testing.T) (*ecs.World, *entity.Scene) {
	t.Helper()
	specs, err := entity.LoadSpecs()
	if err != nil {
		t.Fatalf("load specs: %v", err)
	}
	w := ecs.NewWorld()
	scene, err := entity.NewScene(w, specs, entity.SceneOptions{})
	if err != nil {
		t.Fatalf("new scene: %v", err)
	}
	return w, scene
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func mustSession(t *testing.T, w *ecs.World) *component.Session {
	t.Helper()
	session, ok := sessionOf(w)
	if !ok {
		t.Fatalf("no session entity")
	}
	return session
}

func mustEnemy(t *testing.T, w *ecs.World, scene *entity.Scene, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemy(w, scene.Specs.Enemy, x, y)
	if err != nil {
		t.Fatalf("new enemy: %v", err)
	}
	return e
}

func addContact(t *testing.T, w *ecs.World, kind component.ContactKind, source, target ecs.Entity) {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ContactComponent.Kind(), &component.Contact{Kind: kind, Source: uint64(source), Target: uint64(target)}); err != nil {
		t.Fatalf("add contact: %v", err)
	}
}

func pressFire(t *testing.T, w *ecs.World, scene *entity.Scene, now time.Duration) {
	t.Helper()
	mustSession(t, w).Now = now
	input, ok := ecs.Get(w, scene.Player, component.InputComponent.Kind())
	if !ok {
		t.Fatalf("player has no input")
	}
	input.FirePressed = true
	NewFireSystem().Update(w)
}
