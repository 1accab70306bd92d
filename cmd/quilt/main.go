package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"chosenoffset.com/quilt/internal/cli"
	ebitenrender "chosenoffset.com/quilt/internal/render/ebiten"
)

func main() {
	// Initialize the renderer backend (ebiten)
	engine := ebitenrender.NewEngine()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := cli.Run(os.Args[1:], os.Stdout, engine, rng); err != nil {
		log.Fatal(err)
	}
}
