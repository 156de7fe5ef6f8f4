package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol-unbounded/model"
	"github.com/sheikhrachel/go-gol-unbounded/pattern"
	"github.com/sheikhrachel/go-gol-unbounded/rules"
	"github.com/sheikhrachel/go-gol-unbounded/utils"
)

func testConfig(builtin string, generations int) utils.Config {
	config := utils.DefaultConfig()
	config.Builtin = builtin
	config.Generations = generations
	config.FrameRate = 0
	config.ShowProgress = false
	return config
}

func TestInitializeGame(t *testing.T) {
	config := testConfig("glider", 1)
	config.Glyphs = "#."

	world, renderer, stats, err := initializeGame(config)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 5, world.Population())
	assert.Equal(t, model.Glyphs{Alive: "# ", Dead: ". "}, renderer.Glyphs)
}

func TestInitializeGame_Errors(t *testing.T) {
	config := testConfig("glider", 1)
	config.Rule = "B3"
	_, _, _, err := initializeGame(config)
	require.ErrorIs(t, err, rules.ErrInvalidRule)

	config = testConfig("gosper", 1)
	_, _, _, err = initializeGame(config)
	require.ErrorIs(t, err, pattern.ErrUnknownBuiltin)
}

func TestCheckStopConditions(t *testing.T) {
	config := utils.DefaultConfig()

	stop, reason := checkStopConditions(0, 0, config)
	assert.True(t, stop)
	assert.Equal(t, "extinction", reason)

	stop, _ = checkStopConditions(4, 10, config)
	assert.False(t, stop, "stagnation is ignored unless enabled")

	config.StopOnStagnation = true
	stop, _ = checkStopConditions(4, 2, config)
	assert.False(t, stop)
	stop, reason = checkStopConditions(4, 3, config)
	assert.True(t, stop)
	assert.Equal(t, "stagnation detected", reason)
}

// runSimulation collects every frame the simulation produces.
func runSimulation(t *testing.T, world *model.World, config utils.Config) []frame {
	t.Helper()
	frames := make(chan frame)
	errc := make(chan error, 1)
	go func() {
		defer close(frames)
		errc <- simulate(context.Background(), world, model.DefaultGlyphs, utils.NewStats(), config, frames)
	}()

	var got []frame
	for f := range frames {
		got = append(got, f)
	}
	require.NoError(t, <-errc)
	return got
}

func TestSimulate_RunsAllGenerations(t *testing.T) {
	world := model.NewWorld()
	require.NoError(t, world.Load([]string{"010", "001", "111"}))

	frames := runSimulation(t, world, testConfig("glider", 3))
	require.Len(t, frames, 3)
	for i, f := range frames {
		assert.Equal(t, i, f.generation)
		assert.Contains(t, f.status, "Living: 5")
		assert.Contains(t, f.status, "Status: Active")
	}
	assert.Equal(t, "0 1 0 \n0 0 1 \n1 1 1 \n", frames[0].snapshot)
}

func TestSimulate_StopsOnExtinction(t *testing.T) {
	world := model.NewWorld()
	require.NoError(t, world.Load([]string{"1"}))

	frames := runSimulation(t, world, testConfig("", 5))
	require.Len(t, frames, 2)
	assert.Contains(t, frames[1].status, "Status: Extinct")
}

func TestSimulate_StopsOnStagnation(t *testing.T) {
	world := model.NewWorld()
	require.NoError(t, world.Load([]string{"11", "11"}))

	config := testConfig("", 10)
	config.StopOnStagnation = true
	config.StagnationThreshold = 1

	frames := runSimulation(t, world, config)
	require.Len(t, frames, 4)
	assert.Contains(t, frames[3].status, "Status: Stagnant")
}

func TestSimulate_Cancelled(t *testing.T) {
	world := model.NewWorld()
	require.NoError(t, world.Load([]string{"111"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := simulate(ctx, world, model.DefaultGlyphs, utils.NewStats(), testConfig("", 5), make(chan frame))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunHeadless(t *testing.T) {
	world := model.NewWorld()
	require.NoError(t, world.Load([]string{"010", "001", "111"}))

	var out bytes.Buffer
	renderer := model.NewTerminalRenderer(model.DefaultGlyphs)
	renderer.Out = &out
	stats := utils.NewStats()

	require.NoError(t, runHeadless(context.Background(), world, renderer, stats, testConfig("", 4)))
	assert.Equal(t, 4, stats.TotalGenerations)
	assert.True(t, strings.HasPrefix(out.String(), "0 0 0 0 \n0 0 1 0 \n0 0 0 1 \n0 1 1 1 \n"))
	assert.Contains(t, out.String(), "Gen: 4 | Living: 5 | Grid: 4x4")
	assert.Contains(t, out.String(), "Status: Done")
}

func TestRun(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")

	code := run([]string{"-config", missing, "-builtin", "blinker", "-i", "2", "-t", "0", "-headless"})
	assert.Equal(t, 0, code)

	code = run([]string{"-config", missing, "-i", "0"})
	assert.Equal(t, 2, code, "non-positive generations fail validation")

	code = run([]string{"-config", missing, "-builtin", "gosper", "-i", "1", "-headless"})
	assert.Equal(t, 1, code, "unknown builtin fails to load")
}
