package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-unbounded/model"
	"github.com/sheikhrachel/go-gol-unbounded/utils"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fset := flag.NewFlagSet("life", flag.ContinueOnError)
	klog.InitFlags(fset)
	if err := fset.Set("logtostderr", "true"); err != nil {
		klog.Warningf("failed to route logs to stderr: %v", err)
	}

	var (
		configPath = fset.String("config", "config.json", "JSON configuration file")
		iterations = fset.Int("i", 0, "number of generations to run")
		pause      = fset.Duration("t", 0, "pause between generations")
		glyphs     = fset.String("c", "", "alive and dead glyphs, e.g. \"#.\"")
		builtin    = fset.String("builtin", "", "builtin pattern to load when no file is given")
		rule       = fset.String("rule", "", "rule in B/S notation, e.g. B3/S23")
		headless   = fset.Bool("headless", false, "advance without rendering every frame")
	)
	if err := fset.Parse(args); err != nil {
		return 2
	}
	defer klog.Flush()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		klog.Warningf("using default configuration: %v", err)
		config = utils.DefaultConfig()
	}

	// Flags given on the command line win over the file
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			config.Generations = *iterations
		case "t":
			config.FrameRate = *pause
		case "c":
			config.Glyphs = *glyphs
		case "builtin":
			config.Builtin = *builtin
		case "rule":
			config.Rule = *rule
		case "headless":
			config.Headless = *headless
		}
	})
	if path := fset.Arg(0); path != "" {
		config.PatternFile = path
	}

	if err = config.Validate(); err != nil {
		klog.Errorf("%v", err)
		return 2
	}

	world, renderer, stats, err := initializeGame(config)
	if err != nil {
		klog.Errorf("%v", err)
		return 1
	}
	displayGameInfo(config, world)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Headless {
		err = runHeadless(ctx, world, renderer, stats, config)
	} else {
		err = runInteractive(ctx, world, renderer, stats, config)
	}

	switch {
	case errors.Is(err, context.Canceled):
		klog.Infof("shutting down: %d generations in %.1f seconds",
			stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	case err != nil:
		klog.Errorf("%v", err)
		return 1
	}
	return 0
}

// runInteractive renders, pauses and advances for the configured number of
// generations. The simulation goroutine owns the world; the display goroutine
// only ever sees rendered frames.
func runInteractive(
	ctx context.Context,
	world *model.World,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	config utils.Config,
) error {
	eg, ctx := errgroup.WithContext(ctx)
	frames := make(chan frame)

	eg.Go(func() error {
		defer close(frames)
		return simulate(ctx, world, renderer.Glyphs, stats, config, frames)
	})
	eg.Go(func() error {
		for f := range frames {
			if config.ClearScreen {
				if err := renderer.Clear(); err != nil {
					klog.Warningf("%v", err)
				}
			}
			renderer.Print(f.snapshot)
			renderer.Print(f.status)
			renderer.Print("\n")
			klog.V(2).Infof("displayed generation %d", f.generation)
		}
		return nil
	})

	return eg.Wait()
}

func simulate(
	ctx context.Context,
	world *model.World,
	glyphs model.Glyphs,
	stats *utils.Stats,
	config utils.Config,
	frames chan<- frame,
) error {
	var (
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for generation := 0; generation < config.Generations; generation++ {
		frameStart := time.Now()
		status, isStagnant := updateGameState(world, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		select {
		case frames <- frame{generation: generation, snapshot: world.Render(glyphs), status: status}:
		case <-ctx.Done():
			return ctx.Err()
		}

		if stop, reason := checkStopConditions(stats.Population, stagnantCount, config); stop {
			klog.Infof("stopping after generation %d: %s", generation, reason)
			return nil
		}

		select {
		case <-time.After(config.FrameRate):
		case <-ctx.Done():
			return ctx.Err()
		}

		world.Advance()
	}
	return nil
}

// runHeadless advances without rendering intermediate frames and prints the final one
func runHeadless(
	ctx context.Context,
	world *model.World,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	config utils.Config,
) error {
	var bar *pb.ProgressBar
	if config.ShowProgress {
		bar = pb.StartNew(config.Generations)
	}

	lastFrameTime := time.Now()
	for generation := 1; generation <= config.Generations; generation++ {
		if err := ctx.Err(); err != nil {
			if bar != nil {
				bar.Finish()
			}
			return err
		}
		world.Advance()

		width, height := world.Extent()
		stats.Update(generation, world.Population(), width, height, world.NodeCount(), time.Since(lastFrameTime))
		lastFrameTime = time.Now()
		klog.V(2).Infof("generation %d: %d alive in %dx%d", generation, stats.Population, width, height)

		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	renderer.Display(world)
	renderer.Print(formatStatus(stats, "Done"))
	fmt.Fprintf(renderer.Out, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
	return nil
}
