package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
)

var (
	flagPreset string
	flagWidth  int
	flagHeight int
	flagMines  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one board",
	Long: `Start playing a board.

The board comes from the config file unless a preset or explicit size is
given. Explicit --width/--height/--mines override the preset.

Controls:
  Arrows/hjkl     - Move cursor
  Space/Enter     - Reveal (left click)
  F               - Flag (right click)
  R               - New board
  ?               - More keys
  Esc/B           - Preset menu
  Q/Ctrl+C        - Quit

Examples:
  mines play
  mines play --preset beginner
  mines play --width 20 --height 10 --mines 30
  mines play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset: beginner, intermediate, expert, custom")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (overrides preset)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (overrides preset)")
	playCmd.Flags().IntVar(&flagMines, "mines", -1, "Mine count (overrides preset)")
}

// boardFromFlags applies --preset and the explicit size flags to cfg.Board.
func boardFromFlags(cfg *config.MinesConfig) error {
	if err := config.ApplyPreset(cfg, flagPreset); err != nil {
		return err
	}
	return config.ApplyOverrides(cfg, flagWidth, flagHeight, flagMines)
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := boardFromFlags(&cfg); err != nil {
		return err
	}

	logger, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	back, err := playBoard(cfg, cfg.Board, logger)
	if err != nil {
		logger.Error("play failed", "err", err)
		return err
	}
	if back {
		return menuLoop(cfg, logger)
	}
	return nil
}
