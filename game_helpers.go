package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// game bundles the state the main loop carries between frames
type game struct {
	config   utils.Config
	boundary model.Boundary
	rng      *rand.Rand

	initial  *model.Universe // seed pattern, reused on restart when loaded from a file
	universe *model.Universe
	history  *model.History
	renderer *model.TerminalRenderer
	stats    *utils.Stats

	generation     int
	stagnantCount  int
	lastRestartGen int
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*game, error) {
	boundary, err := config.BoundaryPolicy()
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] invalid boundary")
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &game{
		config:   config,
		boundary: boundary,
		rng:      rand.New(rand.NewSource(seed)),
		history:  model.NewHistory(model.DefaultHistorySize),
		renderer: model.NewTerminalRenderer(nil, config.Colors),
		stats:    utils.NewStats(),
	}

	if config.PatternFile != "" {
		if g.initial, err = utils.LoadPattern(config.PatternFile, boundary); err != nil {
			return nil, err
		}
	}
	g.universe = g.seedUniverse()
	return g, nil
}

// seedUniverse returns the starting generation, the pattern file wins over random data
func (g *game) seedUniverse() *model.Universe {
	if g.initial != nil {
		return g.initial
	}
	return model.NewRandom(g.config.Width, g.config.Height, g.boundary, g.rng)
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	source := "random"
	if g.config.PatternFile != "" {
		source = g.config.PatternFile
	}
	fmt.Printf("Boundary: %s | Workers: %d | Seed: %s\n", g.boundary, g.config.Workers, source)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		g.universe.Columns(), g.universe.Rows(), g.universe.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState records the current generation and reports whether it is stagnant
func (g *game) updateGameState(frame time.Duration) (status string, stagnant bool) {
	population := g.universe.Population()
	g.stats.Update(g.generation, population, g.universe.Columns()*g.universe.Rows(), frame)

	stagnant = g.history.IsStagnant(g.universe)
	g.history.Record(g.universe)

	if stagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	switch {
	case population == 0:
		return "Extinct", stagnant
	case stagnant:
		return fmt.Sprintf("Stagnant (%d)", g.stagnantCount), stagnant
	default:
		return "Active", stagnant
	}
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(status string) {
	g.renderer.Status("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
		g.generation, g.stats.Population, g.stats.Density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs | Restarts: %d\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds(), g.stats.Restarts)

	if g.generation > g.lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", g.generation-g.lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(population, stagnantCount int, config utils.Config) (bool, string) {
	if !config.AutoRestart {
		return false, ""
	}
	if population == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame drops the current generation and starts again from a new seed
func (g *game) restartGame(reason string) {
	fmt.Printf("🔄 Restarting due to %s...\n", reason)

	g.universe = g.seedUniverse()
	g.history.Reset()
	g.stagnantCount = 0
	g.lastRestartGen = g.generation
	g.stats.Restarts++
}

// replaceUniverse swaps in a universe reloaded from the pattern file
func (g *game) replaceUniverse(u *model.Universe) {
	g.initial = u
	g.universe = u
	g.history.Reset()
	g.stagnantCount = 0
	g.lastRestartGen = g.generation
}

// nextGeneration advances the universe, in parallel when more than one worker is configured
func (g *game) nextGeneration(ctx context.Context) error {
	if g.config.Workers <= 1 {
		g.universe = g.universe.Step()
		g.generation++
		return nil
	}

	next, err := g.universe.StepParallel(ctx, g.config.Workers)
	if err != nil {
		return err
	}
	g.universe = next
	g.generation++
	return nil
}
