package utils

import (
	"encoding/json"
	"os"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for settings the driver cannot run with.
var ErrInvalidConfig = errors.New("utils: invalid configuration")

// Config holds the configuration for the game
type Config struct {
	PatternFile         string        `json:"pattern_file"`
	Builtin             string        `json:"builtin"`
	AliveRunes          string        `json:"alive_runes"`
	Rule                string        `json:"rule"`
	Generations         int           `json:"generations"`
	FrameRate           time.Duration `json:"frame_rate"`
	Glyphs              string        `json:"glyphs"`
	ClearScreen         bool          `json:"clear_screen"`
	Headless            bool          `json:"headless"`
	ShowProgress        bool          `json:"show_progress"`
	ShowSpinner         bool          `json:"show_spinner"`
	StopOnStagnation    bool          `json:"stop_on_stagnation"`
	StagnationThreshold int           `json:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Builtin:             "pulsar",
		AliveRunes:          "1",
		Rule:                "B3/S23",
		Generations:         10,
		FrameRate:           3 * time.Second,
		Glyphs:              "10",
		ClearScreen:         false,
		Headless:            false,
		ShowProgress:        true,
		ShowSpinner:         false,
		StopOnStagnation:    false,
		StagnationThreshold: 3,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the driver cannot run with
func (c Config) Validate() error {
	if c.Generations <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] generations must be positive, got %d", c.Generations)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must not be negative, got %s", c.FrameRate)
	}
	if utf8.RuneCountInString(c.Glyphs) != 2 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] glyphs must be an alive and a dead rune, got %q", c.Glyphs)
	}
	if c.StopOnStagnation && c.StagnationThreshold <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation threshold must be positive, got %d", c.StagnationThreshold)
	}
	return nil
}

// GlyphPair splits Glyphs into the alive and dead runes
func (c Config) GlyphPair() (alive, dead rune) {
	alive, size := utf8.DecodeRuneInString(c.Glyphs)
	dead, _ = utf8.DecodeRuneInString(c.Glyphs[size:])
	return alive, dead
}
