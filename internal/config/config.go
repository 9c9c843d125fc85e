// Package config provides YAML-based configuration loading and board
// presets for the mines game.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-mines/internal/minesweeper"
)

// MinesConfig contains all configuration for the mines game.
type MinesConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Presets []BoardPreset `yaml:"presets"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the board played when no preset is chosen.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// BoardPreset is a named board size. Presets only choose width, height and
// mine count.
type BoardPreset struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Mines  int    `yaml:"mines"`
}

// Board returns the preset as a BoardConfig.
func (p BoardPreset) Board() BoardConfig {
	return BoardConfig{Width: p.Width, Height: p.Height, Mines: p.Mines}
}

// UIConfig defines presentation parameters for the terminal front end.
type UIConfig struct {
	CellWidth int           `yaml:"cell_width"` // Characters per cell, 2 or 3
	ShowHelp  bool          `yaml:"show_help"`
	Wrap      bool          `yaml:"wrap"` // Cursor wraps around board edges
	Symbols   SymbolsConfig `yaml:"symbols"`
}

// SymbolsConfig defines the glyphs used for cells.
type SymbolsConfig struct {
	Hidden string `yaml:"hidden"`
	Flag   string `yaml:"flag"`
	Mine   string `yaml:"mine"`
	Empty  string `yaml:"empty"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty discards logs while the TUI runs
}

// Validate checks that the default board and every preset can be played.
func (c MinesConfig) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.Name == "" {
			return errors.New("preset without a name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate preset %q", p.Name)
		}
		seen[p.Name] = true
		if err := p.Board().Validate(); err != nil {
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return nil
}

// Validate checks that the board can be played.
func (b BoardConfig) Validate() error {
	return minesweeper.Validate(b.Width, b.Height, b.Mines)
}

// Marshal encodes the configuration as YAML.
func (c MinesConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
