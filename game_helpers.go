package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/sheikhrachel/go-gol-unbounded/model"
	"github.com/sheikhrachel/go-gol-unbounded/pattern"
	"github.com/sheikhrachel/go-gol-unbounded/rules"
	"github.com/sheikhrachel/go-gol-unbounded/utils"
)

// frame is one rendered generation handed from the simulation to the display
type frame struct {
	generation int
	snapshot   string
	status     string
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.World,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	rule, err := rules.ParseRule(config.Rule)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] bad rule")
	}

	var spinner *wow.Wow
	if config.ShowSpinner {
		spinner = wow.New(os.Stderr, spin.Get(spin.Dots), " Loading pattern")
		spinner.Start()
	}

	world := model.NewWorld(model.WithRule(rule))
	rows, err := loadRows(config)
	if err == nil {
		err = world.Load(rows)
	}
	if spinner != nil {
		if err != nil {
			spinner.Stop()
		} else {
			spinner.PersistWith(spin.Spinner{Frames: []string{"✔"}}, " Pattern loaded")
		}
	}
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to load pattern")
	}

	alive, dead := config.GlyphPair()
	renderer := model.NewTerminalRenderer(model.Glyphs{
		Alive: string(alive) + " ",
		Dead:  string(dead) + " ",
	})

	return world, renderer, utils.NewStats(), nil
}

// loadRows reads the configured pattern file, falling back to a builtin pattern
func loadRows(config utils.Config) ([]string, error) {
	if config.PatternFile != "" {
		klog.Infof("loading pattern file %s", config.PatternFile)
		return pattern.ParseFile(config.PatternFile, config.AliveRunes)
	}
	name := config.Builtin
	if name == "" {
		name = pattern.DefaultBuiltin
	}
	klog.Infof("loading builtin pattern %q", name)
	return pattern.Builtin(name)
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, world *model.World) {
	width, height := world.Extent()
	klog.Infof("Rule: %s | Generations: %d | Pause: %s | Headless: %v",
		config.Rule, config.Generations, config.FrameRate, config.Headless)
	klog.Infof("Grid: %dx%d | Initial living cells: %d", width, height, world.Population())
}

// updateGameState records the generation and returns its status line
func updateGameState(
	world *model.World,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (string, bool) {
	width, height := world.Extent()
	stats.Update(generation, world.Population(), width, height, world.NodeCount(), time.Since(lastFrameTime))

	// Check before recording so the current state is compared with earlier ones
	isStagnant := world.IsStagnant()
	world.UpdateHistory()

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if stats.Population == 0 {
		status = "Extinct"
	}

	return formatStatus(stats, status), isStagnant
}

// formatStatus renders the status line shown under each frame
func formatStatus(stats *utils.Stats, status string) string {
	return fmt.Sprintf("Gen: %d | Living: %d | Grid: %dx%d (%d nodes) | Density: %.1f%% | Status: %s\n",
		stats.TotalGenerations, stats.Population, stats.Width, stats.Height, stats.Nodes, stats.Density(), status)
}

// checkStopConditions determines if the run should end early
func checkStopConditions(population, stagnantCount int, config utils.Config) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if config.StopOnStagnation && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}
