package config

import (
	"fmt"
	"strings"
)

// PresetName names a built-in board preset.
type PresetName string

const (
	PresetBeginner     PresetName = "beginner"
	PresetIntermediate PresetName = "intermediate"
	PresetExpert       PresetName = "expert"
	PresetCustom       PresetName = "custom"
)

// Preset looks up a preset by name, case-insensitively.
func (c MinesConfig) Preset(name string) (BoardPreset, bool) {
	for _, p := range c.Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return BoardPreset{}, false
}

// PresetNames returns the configured preset names in file order.
func (c MinesConfig) PresetNames() []string {
	names := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		names[i] = p.Name
	}
	return names
}

// ApplyPreset replaces the board with the named preset.
// "custom" keeps the current board.
func ApplyPreset(cfg *MinesConfig, name string) error {
	if name == "" || strings.EqualFold(name, string(PresetCustom)) {
		return nil
	}
	p, ok := cfg.Preset(name)
	if !ok {
		return fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(cfg.PresetNames(), ", "))
	}
	cfg.Board = p.Board()
	return nil
}

// ApplyOverrides replaces board fields that are set (positive, or
// non-negative for mines) and validates the result.
func ApplyOverrides(cfg *MinesConfig, width, height, mines int) error {
	if width > 0 {
		cfg.Board.Width = width
	}
	if height > 0 {
		cfg.Board.Height = height
	}
	if mines >= 0 {
		cfg.Board.Mines = mines
	}
	if err := cfg.Board.Validate(); err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}
	return nil
}
