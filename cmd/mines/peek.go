package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/logging"
)

var (
	flagReveals []string
	flagFlags   []string
)

var peekCmd = &cobra.Command{
	Use:   "peek",
	Short: "Reveal cells headlessly and print the board",
	Long: `Builds a board, applies reveals and flags in order, and prints the
board as text. Without --reveal the center cell is revealed.

Cells are given as row,col (zero based). Hidden cells stay hidden in the
output, so peek shows exactly what a player would see.

Glyphs:
  #  hidden    F  flag    *  mine    .  empty    1-8  adjacent mines

Examples:
  mines peek --seed 42
  mines peek --seed 42 --preset beginner --reveal 0,0 --flag 2,3
  mines peek --width 8 --height 8 --mines 10 --reveal 4,4 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPeek,
}

func init() {
	peekCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset: beginner, intermediate, expert, custom")
	peekCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (overrides preset)")
	peekCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (overrides preset)")
	peekCmd.Flags().IntVar(&flagMines, "mines", -1, "Mine count (overrides preset)")
	peekCmd.Flags().StringArrayVar(&flagReveals, "reveal", nil, "Cell to reveal as row,col (repeatable)")
	peekCmd.Flags().StringArrayVar(&flagFlags, "flag", nil, "Cell to flag as row,col (repeatable, applied before reveals)")
}

// parseCell parses "row,col".
func parseCell(s string) (core.Coord, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return core.Coord{}, fmt.Errorf("cell %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return core.Coord{}, fmt.Errorf("cell %q: bad row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return core.Coord{}, fmt.Errorf("cell %q: bad col: %w", s, err)
	}
	return core.C(row, col), nil
}

// parseCells parses and bounds-checks a list of cells.
func parseCells(list []string, board config.BoardConfig) ([]core.Coord, error) {
	cells := make([]core.Coord, 0, len(list))
	for _, s := range list {
		c, err := parseCell(s)
		if err != nil {
			return nil, err
		}
		if !c.In(board.Height, board.Width) {
			return nil, fmt.Errorf("cell %s is outside the %dx%d board", c, board.Width, board.Height)
		}
		cells = append(cells, c)
	}
	return cells, nil
}

func runPeek(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := boardFromFlags(&cfg); err != nil {
		return err
	}

	flags, err := parseCells(flagFlags, cfg.Board)
	if err != nil {
		return err
	}
	reveals, err := parseCells(flagReveals, cfg.Board)
	if err != nil {
		return err
	}
	if len(reveals) == 0 {
		reveals = []core.Coord{core.C(cfg.Board.Height/2, cfg.Board.Width/2)}
	}

	// Peek does not own the terminal, so logs go to stderr
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
	if err != nil {
		return err
	}

	game := newGame(cfg.Board, logger)
	for _, c := range flags {
		game.ToggleFlag(c.Row, c.Col)
	}
	for _, c := range reveals {
		game.Reveal(c.Row, c.Col)
	}

	fmt.Fprint(cmd.OutOrStdout(), game.Snapshot().String())
	return nil
}
