// Package config provides YAML-based game configuration loading and
// difficulty presets for the dash game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DashConfig contains all configuration for the dash game.
type DashConfig struct {
	Grid     DashGrid     `yaml:"grid"`
	Timing   DashTiming   `yaml:"timing"`
	Pursuers DashPursuers `yaml:"pursuers"`
	Layout   DashLayout   `yaml:"layout"`
}

// DashGrid defines the playfield size used by the classic layout.
type DashGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DashTiming defines how often the platform polls for input.
type DashTiming struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// DashPursuers defines spawning and movement of pursuer enemies.
type DashPursuers struct {
	SpawnInterval  int `yaml:"spawn_interval"`  // Player moves between spawn attempts
	MoveInterval   int `yaml:"move_interval"`   // Pursuers act every N player moves
	DetectionRange int `yaml:"detection_range"` // Manhattan distance that loses the game
}

// DashLayout optionally replaces the classic layout with an ASCII map.
// Rows use '#' wall, '@' player, 'E' roamer, 'Q' pursuer, 'G' goal.
type DashLayout struct {
	Rows []string `yaml:"rows"`
}

// Smallest grid that holds every classic board placement.
// Only checked when no layout rows are configured.
const (
	MinGridWidth  = 26
	MinGridHeight = 3
)

// Validate checks that the configuration describes a playable game.
func (c DashConfig) Validate() error {
	var errs []error

	if len(c.Layout.Rows) == 0 {
		if c.Grid.Width < MinGridWidth || c.Grid.Height < MinGridHeight {
			errs = append(errs, fmt.Errorf("grid: size %dx%d is smaller than the classic board minimum %dx%d",
				c.Grid.Width, c.Grid.Height, MinGridWidth, MinGridHeight))
		}
	}
	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing: tick_interval %v must be positive", c.Timing.TickInterval))
	}
	if c.Pursuers.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("pursuers: spawn_interval %d must be positive", c.Pursuers.SpawnInterval))
	}
	if c.Pursuers.MoveInterval <= 0 {
		errs = append(errs, fmt.Errorf("pursuers: move_interval %d must be positive", c.Pursuers.MoveInterval))
	}
	if c.Pursuers.DetectionRange < 0 {
		errs = append(errs, fmt.Errorf("pursuers: detection_range %d must not be negative", c.Pursuers.DetectionRange))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid dash config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a flag value into a preset.
// An empty string selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (expected easy, normal or hard)", s)
	}
}
