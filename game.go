package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/waveshooter/common"
	"github.com/milk9111/waveshooter/config"
	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
	"github.com/milk9111/waveshooter/ecs/entity"
	"github.com/milk9111/waveshooter/ecs/system"
	"github.com/milk9111/waveshooter/prefabs"
)

type Game struct {
	cfg   config.Config
	audio bool

	specs     *entity.Specs
	world     *ecs.World
	scene     *entity.Scene
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	ai        *system.AISystem
	render    *system.RenderSystem

	gameOver   bool
	gameOverUI *ebitenui.UI
	quit       bool
	relaunch   func() error

	watcher *prefabs.Watcher
}

func NewGame(cfg config.Config) (*Game, error) {
	g, err := newGame(cfg, true)
	if err != nil {
		return nil, err
	}

	if cfg.Debug {
		watcher, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func newGame(cfg config.Config, withAudio bool) (*Game, error) {
	specs, err := entity.LoadSpecs()
	if err != nil {
		return nil, fmt.Errorf("game: load prefabs: %w", err)
	}

	g := &Game{cfg: cfg, audio: withAudio, specs: specs, relaunch: relaunchProcess}
	if err := g.reset(); err != nil {
		return nil, err
	}
	g.gameOverUI = NewGameOverUI(g)
	return g, nil
}

// reset discards the world and builds a fresh session from the current specs.
func (g *Game) reset() error {
	w := ecs.NewWorld()
	scene, err := entity.NewScene(w, g.specs, entity.SceneOptions{Audio: g.audio})
	if err != nil {
		return fmt.Errorf("game: build scene: %w", err)
	}

	g.world = w
	g.scene = scene
	g.gameOver = false
	g.physics = system.NewPhysicsSystem(g.specs.Scene.Gravity, common.TicksPerSecond)
	g.ai = system.NewAISystem()
	g.render = system.NewRenderSystem(g.specs.Scene.Background.Or(nil))
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewClockSystem(common.TicksPerSecond),
		system.NewPlayerControllerSystem(),
		system.NewFireSystem(),
		system.NewSpawnSystem(g.specs.Enemy, g.newRand()),
		g.ai,
		g.physics,
		system.NewCombatSystem(),
		system.NewBulletCleanupSystem(),
		system.NewHealthTextSystem(),
		system.NewGameOverSystem(g.onGameOver),
		system.NewAudioSystem(),
	)
	return nil
}

// newRand seeds the spawner. A fixed seed replays the same waves after
// every restart.
func (g *Game) newRand() *rand.Rand {
	seed := g.cfg.Seed
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func (g *Game) onGameOver() {
	g.gameOver = true
}

// Restart rebuilds the scene: full health, empty enemy set, fresh pool.
func (g *Game) Restart() {
	if err := g.reset(); err != nil {
		log.Printf("game: restart: %v", err)
	}
}

// Exit relaunches the binary (unless configured to quit) and stops this
// process on the next tick.
func (g *Game) Exit() {
	if g.cfg.ExitMode == config.ExitReload && g.relaunch != nil {
		if err := g.relaunch(); err != nil {
			log.Printf("game: %v", err)
		}
	}
	g.quit = true
}

func relaunchProcess() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("relaunch: %w", err)
	}
	cmd := exec.Command(exe, os.Args[1:]...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	cmd.Env = os.Environ()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("relaunch: %w", err)
	}
	return cmd.Process.Release()
}

func (g *Game) Session() *component.Session {
	session, _ := ecs.Get(g.world, g.scene.Session, component.SessionComponent.Kind())
	return session
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.reloadPrefabs()

	if g.gameOver {
		g.gameOverUI.Update()
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			g.Restart()
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			g.Exit()
		}
		if g.quit {
			return ebiten.Termination
		}
		return nil
	}

	g.scheduler.Update(g.world)
	return nil
}

// reloadPrefabs applies on-disk prefab edits in debug mode. Spec changes
// rebuild the scene; script changes only recompile the steering scripts.
func (g *Game) reloadPrefabs() {
	if err := g.watcher.PollError(); err != nil {
		log.Printf("prefabs: watch: %v", err)
	}

	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}

	rebuild := false
	for _, name := range changed {
		if filepath.Ext(name) == ".tengo" {
			g.ai.Invalidate()
			continue
		}
		rebuild = true
	}
	if !rebuild {
		return
	}

	specs, err := entity.LoadSpecs()
	if err != nil {
		log.Printf("prefabs: reload: %v", err)
		return
	}
	g.specs = specs
	g.Restart()
	log.Printf("prefabs: reloaded %d file(s)", len(changed))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.cfg.Debug {
		system.DrawPhysicsDebug(g.physics.Space(), screen)
		system.DrawSessionDebug(g.world, screen)
	}

	if g.gameOver {
		g.gameOverUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
