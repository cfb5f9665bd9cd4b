package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
	"github.com/milk9111/waveshooter/prefabs"
)

// AISystem steers enemies with a tengo script. Each script receives x,
// player_x and speed and must define velocity_x.
type AISystem struct {
	scriptCache map[string]*tengo.Compiled
	failed      map[string]bool
}

func NewAISystem() *AISystem {
	return &AISystem{
		scriptCache: map[string]*tengo.Compiled{},
		failed:      map[string]bool{},
	}
}

// Invalidate drops compiled scripts so edited sources are picked up.
func (s *AISystem) Invalidate() {
	s.scriptCache = map[string]*tengo.Compiled{}
	s.failed = map[string]bool{}
}

func (s *AISystem) Update(w *ecs.World) {
	if !simulating(w) {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	playerTransform, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach3(w, component.AIComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, ai *component.AI, t *component.Transform, vel *component.Velocity) {
		vx, err := s.steer(ai, t.X, playerTransform.X)
		if err != nil {
			log.Printf("ai: entity=%s: %v", e, err)
			return
		}
		vel.X = vx
	})
}

func (s *AISystem) steer(ai *component.AI, x, playerX float64) (float64, error) {
	compiled, err := s.compiled(ai.Script)
	if err != nil {
		return 0, err
	}

	if err := compiled.Set("x", x); err != nil {
		return 0, err
	}
	if err := compiled.Set("player_x", playerX); err != nil {
		return 0, err
	}
	if err := compiled.Set("speed", ai.MoveSpeed); err != nil {
		return 0, err
	}
	if err := compiled.Run(); err != nil {
		return 0, err
	}

	out := compiled.Get("velocity_x")
	if out.IsUndefined() {
		return 0, fmt.Errorf("script %q did not set velocity_x", ai.Script)
	}
	return out.Float(), nil
}

func (s *AISystem) compiled(path string) (*tengo.Compiled, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("no steering script")
	}
	if c, ok := s.scriptCache[path]; ok {
		return c, nil
	}
	if s.failed[path] {
		return nil, fmt.Errorf("script %q failed to compile", path)
	}

	src, err := prefabs.LoadScript(path)
	if err != nil {
		s.failed[path] = true
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("x", 0.0)
	_ = script.Add("player_x", 0.0)
	_ = script.Add("speed", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		s.failed[path] = true
		return nil, fmt.Errorf("compile %q: %w", path, err)
	}

	s.scriptCache[path] = compiled
	return compiled, nil
}
