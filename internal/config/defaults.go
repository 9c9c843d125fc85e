package config

import (
	_ "embed"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// DefaultMinesConfig returns the default configuration.
// The board matches the classic 16x16 game with 40 mines.
func DefaultMinesConfig() MinesConfig {
	return MinesConfig{
		Board: BoardConfig{
			Width:  16,
			Height: 16,
			Mines:  40,
		},
		Presets: []BoardPreset{
			{Name: string(PresetBeginner), Width: 9, Height: 9, Mines: 10},
			{Name: string(PresetIntermediate), Width: 16, Height: 16, Mines: 40},
			{Name: string(PresetExpert), Width: 30, Height: 16, Mines: 99},
		},
		UI: UIConfig{
			CellWidth: 3,
			ShowHelp:  true,
			Wrap:      false,
			Symbols: SymbolsConfig{
				Hidden: "■",
				Flag:   "⚑",
				Mine:   "✹",
				Empty:  "·",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMinesYAML
}
