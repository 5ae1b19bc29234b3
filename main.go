package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/integrii/flaggy"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/view"
)

func main() {
	config := initOptions(os.Getenv(configEnv))

	session, err := game.NewSession(config, nil, nil)
	if err != nil {
		log.Fatalf("failed to start simulation: %v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Interactive {
		ui, err := view.NewConsoleUI(session)
		if err != nil {
			log.Fatalf("failed to start console: %v", err)
		}
		if err = ui.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("console stopped: %v", err)
		}
		return
	}

	renderer := view.NewTerminalRenderer(os.Stdout, true)
	displayGameInfo(renderer, session)
	if err = runHeadless(ctx, session, renderer); err != nil {
		log.Fatalf("simulation stopped: %v", err)
	}
}

func initOptions(configPath string) utils.Config {
	if configPath == "" {
		configPath = defaultConfigPath
	}
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("bad configuration: %v", err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", configPath)
		config = utils.DefaultConfig()
	}

	flaggy.SetName("go-life")
	flaggy.SetDescription("Conway's Game of Life on a bounded grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&config.Width, "x", "width", "Width of the grid in cells")
	flaggy.Int(&config.Height, "y", "height", "Height of the grid in cells")
	flaggy.Duration(&config.TimeStep, "t", "timeStep", "Minimum interval between generations, for example 150ms")
	flaggy.Float64(&config.RandomDensity, "d", "density", "Probability of a cell starting alive, in [0,1]")
	flaggy.String(&config.Pattern, "p", "pattern", "Start from a centered pattern [block|blinker|glider] instead of random cells")
	flaggy.Int64(&config.Seed, "s", "seed", "Random seed, 0 seeds from the clock")
	flaggy.Bool(&config.LegacyEdges, "l", "legacyEdges", "Never update the last row and column")
	flaggy.Bool(&config.Interactive, "n", "interactive", "Start interactive mode")
	flaggy.Int(&config.MaxGenerations, "g", "maxGenerations", "Stop after this many generations, 0 runs forever")
	flaggy.Bool(&config.AutoRestart, "a", "autoRestart", "Reseed when the grid dies out or stagnates")
	flaggy.Parse()

	if err = config.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	return config
}
