package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "config.json"

// cliOptions holds flag values, zero values leave the config file untouched
type cliOptions struct {
	configFile     string
	width          int
	height         int
	frameRate      time.Duration
	boundary       string
	maxGenerations int
	seed           int64
	patternFile    string
	workers        int
	watch          bool
	noRestart      bool
	noColor        bool
	once           bool
}

func parseFlags() cliOptions {
	opts := cliOptions{configFile: defaultConfigFile, workers: -1}

	flaggy.SetName("go-life")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&opts.configFile, "c", "config", "Configuration file (.json, .yaml or .yml)")
	flaggy.Int(&opts.width, "x", "width", "Width of the universe")
	flaggy.Int(&opts.height, "y", "height", "Height of the universe")
	flaggy.Duration(&opts.frameRate, "i", "interval", "Interval between generations, for example 150ms")
	flaggy.String(&opts.boundary, "b", "boundary", "Boundary policy [bounded|toroidal]")
	flaggy.Int(&opts.maxGenerations, "g", "generations", "Stop after this many generations")
	flaggy.Int64(&opts.seed, "s", "seed", "Seed for random universes")
	flaggy.String(&opts.patternFile, "p", "pattern", "Pattern file of '.' and '#' rows")
	flaggy.Int(&opts.workers, "w", "workers", "Workers per generation, 0 for one per CPU (default from config)")
	flaggy.Bool(&opts.watch, "", "watch", "Reload the pattern file when it changes")
	flaggy.Bool(&opts.noRestart, "", "no-restart", "Do not restart on extinction or stagnation")
	flaggy.Bool(&opts.noColor, "", "no-color", "Disable colored output")
	flaggy.Bool(&opts.once, "o", "once", "Print the next generation as text and exit")
	flaggy.Parse()

	return opts
}

// buildConfig loads the config file and applies flag overrides on top
func buildConfig(opts cliOptions) (utils.Config, error) {
	config, err := utils.LoadConfig(opts.configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) || opts.configFile != defaultConfigFile {
			return config, err
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	if opts.width > 0 {
		config.Width = opts.width
	}
	if opts.height > 0 {
		config.Height = opts.height
	}
	if opts.frameRate > 0 {
		config.FrameRate = opts.frameRate
	}
	if opts.boundary != "" {
		config.Boundary = opts.boundary
	}
	if opts.maxGenerations > 0 {
		config.MaxGenerations = opts.maxGenerations
	}
	if opts.seed != 0 {
		config.Seed = opts.seed
	}
	if opts.patternFile != "" {
		config.PatternFile = opts.patternFile
	}
	if opts.workers >= 0 {
		config.Workers = opts.workers
	}
	if opts.watch {
		config.WatchPattern = true
	}
	if opts.noRestart {
		config.AutoRestart = false
	}
	if opts.noColor {
		config.Colors = false
	}

	return config, config.Validate()
}

func main() {
	opts := parseFlags()

	config, err := buildConfig(opts)
	if err != nil {
		log.Fatalf("Invalid configuration: %+v", err)
	}

	g, err := initializeGame(config)
	if err != nil {
		log.Fatalf("Failed to initialize game: %+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.once {
		if err = g.nextGeneration(ctx); err != nil {
			log.Fatalf("Failed to step universe: %+v", err)
		}
		fmt.Print(g.universe.Render())
		return
	}

	var reloads <-chan *model.Universe
	if config.WatchPattern {
		watcher, err := utils.NewPatternWatcher(config.PatternFile, g.boundary)
		if err != nil {
			log.Fatalf("Failed to watch pattern: %+v", err)
		}
		if err = watcher.Start(ctx); err != nil {
			log.Fatalf("Failed to watch pattern: %+v", err)
		}
		defer watcher.Stop()
		reloads = watcher.Updates()
	}

	g.displayGameInfo()
	run(ctx, g, reloads)
}

// run is the main game loop, it returns on cancellation or when the generation limit is reached
func run(ctx context.Context, g *game, reloads <-chan *model.Universe) {
	lastFrameTime := time.Now()
	ticker := time.NewTicker(max(g.config.FrameRate, time.Millisecond))
	defer ticker.Stop()

	for {
		frameStart := time.Now()
		g.renderer.Clear()

		status, _ := g.updateGameState(frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		g.displayGameStatus(status)
		if err := g.renderer.Display(g.universe); err != nil {
			log.Printf("Failed to render universe: %v", err)
		}

		if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", g.config.MaxGenerations)
			return
		}

		if restart, reason := checkRestartConditions(g.stats.Population, g.stagnantCount, g.config); restart {
			g.restartGame(reason)
		} else if err := g.nextGeneration(ctx); err != nil {
			if ctx.Err() == nil {
				log.Printf("Failed to step universe: %+v", err)
			}
		}

		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				g.generation, g.stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
			return
		case u := <-reloads:
			fmt.Println("📄 Pattern file changed, reloading...")
			g.replaceUniverse(u)
		case <-ticker.C:
		}
	}
}
