package main

import (
	"context"
	"time"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/view"
)

const (
	configEnv         = "GOLIFE_CONFIG"
	defaultConfigPath = "config.json"
)

// displayGameInfo shows the initial game information
func displayGameInfo(r *view.TerminalRenderer, s *game.Session) {
	config := s.Config()
	edges := "full grid"
	if config.LegacyEdges {
		edges = "legacy (last row and column frozen dead)"
	}
	r.Printf("Grid: %dx%d | Initial living cells: %d\n", config.Width, config.Height, s.Status().Population)
	r.Printf("Time step: %v | Edges: %s | Auto restart: %v\n", config.TimeStep, edges, config.AutoRestart)
	r.Printf("Press Ctrl+C to exit gracefully\n\n")
}

// runHeadless polls the session every frame until ctx is done or the
// generation limit is reached, redrawing whenever a generation is computed.
func runHeadless(ctx context.Context, s *game.Session, r *view.TerminalRenderer) error {
	ticker := time.NewTicker(s.Config().FrameRate)
	defer ticker.Stop()

	stagnantCount := 0
	for {
		select {
		case <-ctx.Done():
			st := s.Status()
			r.Printf("\nShutting down gracefully...\n")
			r.Printf("Final stats: %d generations in %.1f seconds\n", st.Generation, st.Stats.Runtime().Seconds())
			r.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				st.Stats.GenerationsPerSecond, st.Stats.AveragePopulation)
			return nil
		case <-ticker.C:
		}

		if !s.Tick() {
			continue
		}

		var (
			done bool
			err  error
		)
		if stagnantCount, done, err = playGeneration(s, r, stagnantCount); err != nil || done {
			return err
		}
	}
}

// playGeneration draws the generation just computed and applies the restart
// and stop rules. It returns the updated stagnation counter and whether the
// run is over.
func playGeneration(s *game.Session, r *view.TerminalRenderer, stagnantCount int) (int, bool, error) {
	st := s.Status()
	if st.Stagnant {
		stagnantCount++
	} else {
		stagnantCount = 0
	}

	if err := r.Clear(); err != nil {
		return stagnantCount, true, err
	}
	if err := r.Display(s.Grid(), st); err != nil {
		return stagnantCount, true, err
	}

	config := s.Config()
	if config.MaxGenerations > 0 && st.Generation >= config.MaxGenerations {
		r.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
		return stagnantCount, true, nil
	}

	if restart, reason := checkRestartConditions(st.Population, stagnantCount, config); restart && config.AutoRestart {
		r.Printf("Restarting due to %s...\n", reason)
		s.Randomize()
		stagnantCount = 0
	}
	return stagnantCount, false, nil
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}
