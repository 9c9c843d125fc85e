package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List board presets",
	Long:  `Shows the board presets from the configuration and the default board.`,
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func runPresets(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	// Calculate column widths
	maxNameLen := len("Name")
	for _, p := range cfg.Presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Fprintln(out, "Board presets:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxNameLen, "Name", "Size", "Mines")
	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxNameLen, "----", "----", "-----")
	for _, p := range cfg.Presets {
		size := fmt.Sprintf("%dx%d", p.Width, p.Height)
		fmt.Fprintf(out, "  %-*s  %-7s  %d\n", maxNameLen, p.Name, size, p.Mines)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Default board: %dx%d with %d mines\n", cfg.Board.Width, cfg.Board.Height, cfg.Board.Mines)
	fmt.Fprintln(out, "Run 'mines play --preset <name>' to play one.")
	return nil
}
