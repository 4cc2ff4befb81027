package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/twocars/drive"
	"github.com/milk9111/twocars/ecs"
	"github.com/milk9111/twocars/ecs/entity"
	"github.com/milk9111/twocars/ecs/system"
	"github.com/milk9111/twocars/prefabs"
	"go.uber.org/zap"
)

// Host keys. They are only seen when the updater does not claim them.
var (
	keyToggleHUD = system.KeyName(ebiten.KeyF1)
	keyQuit      = system.KeyName(ebiten.KeyEscape)
)

type Game struct {
	frames int

	world     *ecs.World
	scheduler *ecs.Scheduler
	updater   *drive.Updater
	project   *system.ProjectSystem
	hud       *HUD

	scene   *prefabs.SceneSpec
	cars    map[string]ecs.Entity
	watcher *prefabs.Watcher
	logger  *zap.Logger

	debug   bool
	showHUD bool
	quit    bool
}

func NewGame(sceneName string, debug bool, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	scene, err := prefabs.LoadSceneSpec(sceneName)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	world := ecs.NewWorld()
	cars, err := buildCars(world, scene.Cars, entity.NewCar)
	if err != nil {
		return nil, fmt.Errorf("game: scene %s: %w", sceneName, err)
	}

	updater := drive.NewUpdater()
	g := &Game{
		world:   world,
		updater: updater,
		project: system.NewProjectSystem(updater, logger),
		hud:     NewHUD(),
		scene:   scene,
		cars:    cars,
		logger:  logger,
		debug:   debug,
		showHUD: true,
	}
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(nil),
		system.NewDriveSystem(updater, logger, g.hotkey),
		g.project,
		system.NewRenderSystem(),
	)

	if debug {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			logger.Warn("prefab hot reload disabled", zap.String("dir", prefabs.Dir), zap.Error(err))
		} else {
			g.watcher = watcher
		}
	}

	logger.Info("scene loaded",
		zap.String("scene", sceneName),
		zap.Strings("cars", scene.Cars),
		zap.Int("width", scene.Width),
		zap.Int("height", scene.Height),
	)
	return g, nil
}

// buildCars builds one car per prefab name. A name listed twice is an error,
// and so is a prefab whose slot is already driven by an earlier car.
func buildCars(w *ecs.World, names []string, build func(*ecs.World, string) (ecs.Entity, error)) (map[string]ecs.Entity, error) {
	cars := make(map[string]ecs.Entity, len(names))
	for _, name := range names {
		if _, ok := cars[name]; ok {
			return nil, fmt.Errorf("car prefab %q listed twice", name)
		}
		e, err := build(w, name)
		if err != nil {
			return nil, err
		}
		cars[name] = e
	}
	return cars, nil
}

func (g *Game) hotkey(k drive.Key) {
	switch k {
	case keyToggleHUD:
		g.showHUD = !g.showHUD
	case keyQuit:
		g.quit = true
	}
}

func (g *Game) Update() error {
	g.frames++

	g.reloadChanged()
	g.scheduler.Update(g.world)

	if g.showHUD {
		g.hud.Sync(g.world)
		g.hud.Update()
	}

	if g.quit {
		g.logger.Info("quit", zap.Int("frames", g.frames))
		return ebiten.Termination
	}
	return nil
}

func (g *Game) reloadChanged() {
	for g.watcher != nil {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(prefabs.Name(path))
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("prefab watcher", zap.Error(err))
		default:
			return
		}
	}
}

// reload rebuilds a car's visuals from its prefab. Drive state is untouched.
func (g *Game) reload(name string) {
	old, ok := g.cars[name]
	if !ok {
		g.logger.Debug("ignoring prefab change", zap.String("prefab", name))
		return
	}
	e, err := entity.ReplaceCar(g.world, old, name)
	if err != nil {
		g.logger.Warn("prefab reload failed", zap.String("prefab", name), zap.Error(err))
		return
	}
	g.cars[name] = e
	g.logger.Info("prefab reloaded", zap.String("prefab", name))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.scene.Background)
	g.scheduler.Draw(g.world, screen)

	if g.showHUD {
		g.hud.Draw(screen)
	}

	if g.debug {
		msg := fmt.Sprintf("FPS: %.2f  held: %v  renders: %d", ebiten.ActualFPS(), g.updater.Held().Keys(), g.project.Renders())
		ebitenutil.DebugPrintAt(screen, msg, 4, g.scene.Height-20)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.scene.Width), float64(g.scene.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the prefab watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	return err
}
