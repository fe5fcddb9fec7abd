package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"parlife/internal/core"
	"parlife/internal/engine"
	"parlife/internal/world"
)

type sweepResult struct {
	workers int
	elapsed time.Duration
	final   *core.Grid
}

func main() {
	width := flag.Int("width", 256, "grid width")
	height := flag.Int("height", 256, "grid height")
	density := flag.Float64("density", 0.3, "live-cell probability for the soup")
	seed := flag.Int64("seed", 1337, "seed for the starting soup")
	turns := flag.Int("turns", 100, "turns to simulate per worker count")
	counts := flag.String("workers", "1,2,4,8", "comma-separated worker counts to sweep")
	flag.Parse()

	workerCounts, err := parseCounts(*counts)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Sweeping %dx%d soup, density %.2f, seed %d, %d turns\n",
		*width, *height, *density, *seed, *turns)

	results := make([]sweepResult, 0, len(workerCounts))
	for _, workers := range workerCounts {
		grid, err := world.Random(*width, *height, *density, *seed)
		if err != nil {
			log.Fatal(err)
		}
		eng, err := engine.New(grid, engine.Config{Turns: *turns, Workers: workers})
		if err != nil {
			log.Fatal(err)
		}
		start := time.Now()
		eng.Run()
		results = append(results, sweepResult{workers: workers, elapsed: time.Since(start), final: grid})
	}

	base := results[0]
	diverged := false
	for _, res := range results {
		status := "ok"
		if !res.final.Equal(base.final) {
			status = "MISMATCH"
			diverged = true
		}
		perTurn := res.elapsed / time.Duration(max(*turns, 1))
		speedup := float64(base.elapsed) / float64(res.elapsed)
		fmt.Printf("workers %3d: %12v total  %10v/turn  %5.2fx vs workers=%d  alive=%d  %s\n",
			res.workers, res.elapsed.Round(time.Microsecond), perTurn.Round(time.Microsecond),
			speedup, base.workers, res.final.Population(), status)
	}
	if diverged {
		log.Fatal("final grids diverged across worker counts")
	}
}

func parseCounts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	counts := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("lifebench: bad worker count %q", part)
		}
		counts = append(counts, n)
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("lifebench: no worker counts given")
	}
	return counts, nil
}
