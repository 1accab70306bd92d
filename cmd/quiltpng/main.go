package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"time"

	"chosenoffset.com/quilt/internal/cli"
	"chosenoffset.com/quilt/internal/render/raster"
)

func main() {
	// Command-line flags
	mode := flag.String("mode", "quilt", "Pattern to draw: HH, TH, HT, TT or quilt")
	n := flag.Int("n", 2, "Patches per row and column")
	width := flag.Int("width", 300, "Quilt width in pixels (patch width for HH/TH/HT/TT)")
	height := flag.Int("height", 200, "Quilt height in pixels (patch height for HH/TH/HT/TT)")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	out := flag.String("o", "quilt.png", "Output PNG path")
	verbose := flag.Bool("v", false, "Log renderer diagnostics")
	flag.Parse()

	if *verbose {
		raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	opts, err := cli.Parse([]string{"-" + *mode, strconv.Itoa(*n), strconv.Itoa(*width), strconv.Itoa(*height)})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine := raster.NewEngine(*out)
	win, err := cli.Draw(opts, engine, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := win.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w, h := opts.WindowSize()
	log.Printf("Wrote %s (%dx%d, seed %d)", *out, w, h, *seed)
}
