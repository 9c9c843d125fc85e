package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board preset interactively",
	Long: `Start with a preset picker.

Use arrow keys or j/k to navigate, Enter to pick a board.
Press Esc during a game to come back to the menu.

The "custom" row plays the board from the config file.

Examples:
  mines menu
  mines menu --config ./my-mines.yaml`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := menuLoop(cfg, logger); err != nil {
		logger.Error("menu failed", "err", err)
		return err
	}
	return nil
}
