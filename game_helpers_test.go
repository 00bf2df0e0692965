package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()

	tests := []struct {
		name          string
		population    int
		stagnantCount int
		autoRestart   bool
		wantRestart   bool
		wantReason    string
	}{
		{"active", 10, 0, true, false, ""},
		{"extinct", 0, 0, true, true, "extinction"},
		{"stagnant", 10, config.StagnationThreshold, true, true, "stagnation detected"},
		{"below threshold", 10, config.StagnationThreshold - 1, true, false, ""},
		{"auto restart off", 0, 100, false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config
			c.AutoRestart = tt.autoRestart
			restart, reason := checkRestartConditions(tt.population, tt.stagnantCount, c)
			if restart != tt.wantRestart || reason != tt.wantReason {
				t.Errorf("got (%v, %q), want (%v, %q)", restart, reason, tt.wantRestart, tt.wantReason)
			}
		})
	}
}

func TestBuildConfigOverrides(t *testing.T) {
	path := writeTemp(t, "config.yaml", "width: 8\nheight: 6\nboundary: bounded\nworkers: 2\n")

	config, err := buildConfig(cliOptions{configFile: path, width: 12, boundary: "toroidal", workers: -1, noColor: true})
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if config.Width != 12 || config.Height != 6 {
		t.Errorf("got %dx%d, want 12x6", config.Width, config.Height)
	}
	if config.Boundary != "toroidal" {
		t.Errorf("boundary = %q, want the flag value", config.Boundary)
	}
	if config.Workers != 2 {
		t.Errorf("workers = %d, want the file value", config.Workers)
	}
	if config.Colors {
		t.Errorf("colors should be disabled by the flag")
	}
}

func TestBuildConfigMissingExplicitFile(t *testing.T) {
	_, err := buildConfig(cliOptions{configFile: filepath.Join(t.TempDir(), "nope.json"), workers: -1})
	if err == nil {
		t.Errorf("an explicitly named config file must exist")
	}
}

func TestInitializeGameFromPattern(t *testing.T) {
	config := utils.DefaultConfig()
	config.PatternFile = writeTemp(t, "blinker.txt", "...\n###\n...\n")
	config.Boundary = "bounded"

	g, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	if g.universe.Render() != "...\n###\n...\n" {
		t.Errorf("unexpected seed universe %q", g.universe.Render())
	}
	if g.boundary != model.Bounded {
		t.Errorf("boundary = %s, want bounded", g.boundary)
	}

	if err = g.nextGeneration(context.Background()); err != nil {
		t.Fatalf("nextGeneration: %v", err)
	}
	if g.generation != 1 || g.universe.Render() != ".#.\n.#.\n.#.\n" {
		t.Errorf("generation %d: %q", g.generation, g.universe.Render())
	}

	g.restartGame("test")
	if g.universe.Render() != "...\n###\n...\n" || g.stats.Restarts != 1 {
		t.Errorf("restart did not return to the pattern")
	}
}

func TestInitializeGameRandomIsSeeded(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed = 99

	a, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	b, _ := initializeGame(config)
	if !a.universe.Equal(b.universe) {
		t.Errorf("the same seed produced different universes")
	}
	if a.universe.Columns() != config.Width || a.universe.Rows() != config.Height {
		t.Errorf("got %dx%d", a.universe.Columns(), a.universe.Rows())
	}
}

func TestNextGenerationParallel(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed = 5
	config.Workers = 4

	g, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	want := g.universe.Step()
	if err = g.nextGeneration(context.Background()); err != nil {
		t.Fatalf("nextGeneration: %v", err)
	}
	if !g.universe.Equal(want) {
		t.Errorf("parallel generation differs from Step")
	}
}

func TestUpdateGameStateDetectsStagnation(t *testing.T) {
	config := utils.DefaultConfig()
	config.PatternFile = writeTemp(t, "block.txt", "....\n.##.\n.##.\n....\n")

	g, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}

	var status string
	for range 5 {
		status, _ = g.updateGameState(0)
		if err = g.nextGeneration(context.Background()); err != nil {
			t.Fatalf("nextGeneration: %v", err)
		}
	}
	if g.stagnantCount != 2 || status != "Stagnant (2)" {
		t.Errorf("stagnantCount = %d, status = %q", g.stagnantCount, status)
	}
}
