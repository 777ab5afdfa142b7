package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/animgroup/common"
	"github.com/milk9111/animgroup/logging"
)

func main() {
	startScreen := flag.String("screen", "", "prefab screen to open at startup (basename in prefabs/, e.g. pause_menu)")
	debug := flag.Bool("debug", false, "enable debug logging")
	watch := flag.Bool("watch", false, "reload prefabs from prefabs/ when they change on disk")
	flag.Parse()

	log := logging.NewConsole("host", *debug)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("animgroup")

	game, err := NewGame(log, *startScreen, *watch)
	if err != nil {
		log.Fatal().Err(err).Msg("init game")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
