// Package config loads game configuration from YAML, layered over
// compiled-in defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bcingle/wormgo/geom"
)

// Board describes the playable canvas. Width and Height are pixels; the
// grid is Width/Scale × Height/Scale cells. Immutable once the controller
// is constructed.
type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
}

// Cells returns the board size in grid units.
func (b Board) Cells() (w, h int) {
	return b.Width / b.Scale, b.Height / b.Scale
}

// Worm is the canonical reset pose of the player.
type Worm struct {
	StartX    int    `yaml:"start_x"`
	StartY    int    `yaml:"start_y"`
	Length    int    `yaml:"length"`
	Direction string `yaml:"direction"`
}

// StartDirection parses the configured facing. Defaults to right.
func (w Worm) StartDirection() geom.Direction {
	switch strings.ToLower(w.Direction) {
	case "up":
		return geom.DirUp
	case "down":
		return geom.DirDown
	case "left":
		return geom.DirLeft
	default:
		return geom.DirRight
	}
}

// Tick configures the logic cadence.
type Tick struct {
	// BaseRate is the logic ticks per second a fresh game runs at.
	BaseRate float64 `yaml:"base_rate"`
	// RateStep is added to the rate on every apple eaten.
	RateStep float64 `yaml:"rate_step"`
}

// Render configures the presentation loop.
type Render struct {
	// RefreshRate is the terminal backend's pulse rate. The windowed
	// backend uses the display's own refresh instead.
	RefreshRate float64 `yaml:"refresh_rate"`
}

// Audio configures the sound collaborator.
type Audio struct {
	Enabled bool `yaml:"enabled"`
}

// Log configures the diagnostic sink.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the full game configuration.
type Config struct {
	Board  Board  `yaml:"board"`
	Worm   Worm   `yaml:"worm"`
	Tick   Tick   `yaml:"tick"`
	Render Render `yaml:"render"`
	Audio  Audio  `yaml:"audio"`
	Log    Log    `yaml:"log"`
}

// Default returns the compiled-in configuration: a 20×20 cell board at
// scale 10, a length-3 worm facing right from the center, 4 ticks per
// second baseline with the quarter-step difficulty ramp.
func Default() Config {
	return Config{
		Board:  Board{Width: 200, Height: 200, Scale: 10},
		Worm:   Worm{StartX: 10, StartY: 10, Length: 3, Direction: "right"},
		Tick:   Tick{BaseRate: 4, RateStep: 0.25},
		Render: Render{RefreshRate: 60},
		Audio:  Audio{Enabled: true},
		Log:    Log{Level: "info"},
	}
}

// Load reads path and overlays it on the defaults. A missing file is not
// an error; the defaults apply unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the controller cannot run with.
func (c Config) Validate() error {
	if c.Board.Scale <= 0 {
		return fmt.Errorf("board scale must be positive, got %d", c.Board.Scale)
	}
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("board size must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Board.Width%c.Board.Scale != 0 || c.Board.Height%c.Board.Scale != 0 {
		return fmt.Errorf("board %dx%d not divisible by scale %d", c.Board.Width, c.Board.Height, c.Board.Scale)
	}
	gw, gh := c.Board.Cells()
	if !geom.P(c.Worm.StartX, c.Worm.StartY).In(gw, gh) {
		return fmt.Errorf("worm start (%d,%d) outside %dx%d board", c.Worm.StartX, c.Worm.StartY, gw, gh)
	}
	if c.Worm.Length < 1 {
		return fmt.Errorf("worm length must be at least 1, got %d", c.Worm.Length)
	}
	// The worm must leave at least one cell for the apple.
	if c.Worm.Length >= gw*gh {
		return fmt.Errorf("worm length %d does not fit a %dx%d board", c.Worm.Length, gw, gh)
	}
	if c.Tick.BaseRate <= 0 {
		return fmt.Errorf("base tick rate must be positive, got %v", c.Tick.BaseRate)
	}
	if c.Tick.RateStep < 0 {
		return fmt.Errorf("tick rate step must not be negative, got %v", c.Tick.RateStep)
	}
	if c.Render.RefreshRate <= 0 {
		return fmt.Errorf("refresh rate must be positive, got %v", c.Render.RefreshRate)
	}
	return nil
}
