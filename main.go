package main

import (
	"flag"
	"log"
	"time"

	"github.com/WaterFace/wizards-spiral/common"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay")
	seed := flag.Uint64("seed", 0, "rng seed (0 picks one from the clock)")
	roomName := flag.String("room", "", "start room name, overriding config.yaml")
	newGame := flag.Bool("new", false, "ignore the save slot and start a new game")
	lang := flag.String("lang", "en", "UI language (en, fr)")
	watch := flag.Bool("watch", false, "reload edited files under content/ while running")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Wizard's Spiral")

	game, err := NewGame(Options{
		Debug:   *debug,
		Seed:    *seed,
		Room:    *roomName,
		NewGame: *newGame,
		Lang:    *lang,
		Watch:   *watch,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
