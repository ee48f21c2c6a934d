package main

import (
	"log"

	"github.com/Garsondee/Cyber-Pursuit/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowTitle("Cyber Pursuit")
	ebiten.SetWindowSize(1200, 900)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
