// mines is a terminal mine-finding game.
//
// Usage:
//
//	mines play               - Play one board
//	mines menu               - Pick a board preset interactively
//	mines presets            - List board presets
//	mines config             - Print the effective configuration
//	mines peek               - Reveal a cell headlessly and print the board
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.mines/config.yaml, ./configs/mines.yaml)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Mines - find the mines without stepping on one",
	Long: `Mines is the classic mine-finding puzzle in your terminal.

Reveal cells to find the safe ones; numbers count the mines around a cell.
The first reveal is always safe.

Available commands:
  play     - Play one board
  menu     - Interactive preset picker
  presets  - Show board presets
  config   - Print the effective configuration
  peek     - Reveal a cell headlessly and print the board

Examples:
  mines play
  mines play --preset expert
  mines play --width 20 --height 10 --mines 30
  mines menu
  mines peek --seed 42 --row 3 --col 3`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(peekCmd)
}
