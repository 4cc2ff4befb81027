package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/twocars/prefabs"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (verbose logs, prefab hot reload)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	sceneName := flag.String("scene", prefabs.DefaultScene, "scene prefab name in prefabs/")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "twocars: build logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(*sceneName, *debug, *baseMonitor, logger); err != nil {
		logger.Fatal("twocars", zap.Error(err))
	}
	_ = logger.Sync()
}

func run(sceneName string, debug, baseMonitor bool, logger *zap.Logger) error {
	if baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(sceneName, debug, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := game.Close(); err != nil {
			logger.Warn("close game", zap.Error(err))
		}
	}()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.scene.Width, game.scene.Height)
	ebiten.SetWindowTitle(game.scene.Title)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
