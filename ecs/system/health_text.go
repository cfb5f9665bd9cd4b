package system

import (
	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
)

// HealthTextSystem rewrites the HUD readout whenever player health changes.
type HealthTextSystem struct{}

func NewHealthTextSystem() *HealthTextSystem {
	return &HealthTextSystem{}
}

func (s *HealthTextSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach(w, component.HealthTextComponent.Kind(), func(_ ecs.Entity, hud *component.HealthText) {
		if hud.Shown == health.Current && hud.Text != "" {
			return
		}
		hud.Shown = health.Current
		hud.Text = component.FormatHealth(health.Current)
	})
}
