package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/game"
)

func main() {
	debug := flag.Bool("debug", false, "draw probes, shapes and state; log locomotion transitions")
	levelName := flag.String("level", "arena", "level name in levels/ (basename, .json optional, .tmx for Tiled maps)")
	configName := flag.String("config", "player.yaml", "movement config in config/ (.yaml or .toml)")
	watch := flag.Bool("watch", false, "reload movement config when files in config/ change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("platformer playground")

	g, err := game.New(game.Options{
		Level:  *levelName,
		Config: *configName,
		Debug:  *debug,
		Watch:  *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
