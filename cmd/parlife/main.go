package main

import (
	"flag"
	"log"
	"os"

	"parlife/internal/app"
	"parlife/internal/engine"
	"parlife/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	log.Print(cfg.Summary())

	grid, err := cfg.World()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.GUI {
		if err := app.Run(cfg, grid); err != nil {
			log.Fatal(err)
		}
		return
	}

	ecfg := cfg.EngineConfig()
	printer := term.NewPrinter(os.Stdout)
	if cfg.Plain {
		printer = term.NewPlainPrinter(os.Stdout)
	}
	ecfg.OnFrame = printer.Frame

	eng, err := engine.New(grid, ecfg)
	if err != nil {
		log.Fatal(err)
	}
	eng.Run()
	log.Printf("simulation complete: %d turns, %d cells alive", cfg.Turns, grid.Population())
}
