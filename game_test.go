package main

import (
	"testing"
	"time"

	"github.com/milk9111/waveshooter/config"
	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
	"github.com/milk9111/waveshooter/ecs/entity"
	"github.com/milk9111/waveshooter/ecs/system"
)

func newTestGame(t *testing.T, cfg config.Config) (*Game, *int) {
	t.Helper()
	if cfg.ExitMode == "" {
		cfg.ExitMode = config.ExitReload
	}
	g, err := newGame(cfg, false)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	relaunches := 0
	g.relaunch = func() error {
		relaunches++
		return nil
	}
	return g, &relaunches
}

// killPlayer drives the session to game over through three enemy contacts.
func killPlayer(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 3; i++ {
		enemy, err := entity.NewEnemy(g.world, g.specs.Enemy, 120, 450)
		if err != nil {
			t.Fatalf("new enemy: %v", err)
		}
		c := ecs.CreateEntity(g.world)
		if err := ecs.Add(g.world, c, component.ContactComponent.Kind(), &component.Contact{
			Kind:   component.ContactPlayerEnemy,
			Source: uint64(g.scene.Player),
			Target: uint64(enemy),
		}); err != nil {
			t.Fatalf("add contact: %v", err)
		}
		system.NewCombatSystem().Update(g.world)
		system.NewGameOverSystem(g.onGameOver).Update(g.world)
	}
}

func TestGameOverThenRestart(t *testing.T) {
	g, _ := newTestGame(t, config.Config{Seed: 9})
	killPlayer(t, g)

	if !g.gameOver || !g.Session().Terminal() {
		t.Fatalf("expected game over, session = %+v", g.Session())
	}
	if g.Session().GameOverCount != 1 {
		t.Fatalf("game over count = %d, want 1", g.Session().GameOverCount)
	}

	g.Session().Now = 10 * time.Second
	g.Restart()

	session := g.Session()
	if g.gameOver || session.Terminal() || session.Now != 0 || session.GameOverCount != 0 {
		t.Fatalf("session after restart = %+v", session)
	}
	health, _ := ecs.Get(g.world, g.scene.Player, component.HealthComponent.Kind())
	if health.Current != 3 {
		t.Fatalf("health after restart = %d, want 3", health.Current)
	}
	if n := ecs.Count(g.world, component.EnemyTagComponent.Kind()); n != 0 {
		t.Fatalf("enemies after restart = %d, want 0", n)
	}
	text, _ := ecs.Get(g.world, g.scene.HUD, component.HealthTextComponent.Kind())
	if text.Text != "Health: 3 ❤️" {
		t.Fatalf("hud after restart = %q", text.Text)
	}
}

func TestExit(t *testing.T) {
	cases := []struct {
		name           string
		mode           string
		wantRelaunches int
	}{
		{"reload", config.ExitReload, 1},
		{"quit", config.ExitQuit, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, relaunches := newTestGame(t, config.Config{ExitMode: c.mode})
			killPlayer(t, g)
			g.Exit()

			if *relaunches != c.wantRelaunches {
				t.Fatalf("relaunches = %d, want %d", *relaunches, c.wantRelaunches)
			}
			if !g.quit {
				t.Fatalf("exit did not stop the game")
			}
		})
	}
}
