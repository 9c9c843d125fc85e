package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/logging"
	"github.com/vovakirdan/tui-mines/internal/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

// loadConfig loads the config file and applies the global log flags.
func loadConfig() (config.MinesConfig, error) {
	cfg, err := config.LoadMines(flagConfig)
	if err != nil {
		return config.MinesConfig{}, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg, nil
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// newGame creates a board honoring --seed.
func newGame(board config.BoardConfig, logger *log.Logger) *minesweeper.Game {
	opts := []minesweeper.Option{minesweeper.WithLogger(logger)}
	if flagSeed != 0 {
		opts = append(opts, minesweeper.WithSeed(flagSeed))
	}
	return minesweeper.New(board.Width, board.Height, board.Mines, opts...)
}

// checkFits reports an error when the terminal cannot show the board.
func checkFits(board config.BoardConfig, ui config.UIConfig, rc core.RuntimeConfig) error {
	needW, needH := tui.BoardSize(board.Width, board.Height, ui)
	if ui.ShowHelp {
		needH++
	}
	if rc.ScreenW < needW || rc.ScreenH < needH {
		return fmt.Errorf("terminal is %dx%d but a %dx%d board needs %dx%d",
			rc.ScreenW, rc.ScreenH, board.Width, board.Height, needW, needH)
	}
	return nil
}

// openLogger opens the session logger described by cfg.Log.
func openLogger(cfg config.MinesConfig) (*log.Logger, io.Closer, error) {
	logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return logger, closer, nil
}

// playBoard runs one board and reports whether the player asked for the menu.
func playBoard(cfg config.MinesConfig, board config.BoardConfig, logger *log.Logger) (bool, error) {
	rc := runtimeConfig()
	if err := checkFits(board, cfg.UI, rc); err != nil {
		return false, err
	}

	game := newGame(board, logger)
	logger.Info("starting board", "width", board.Width, "height", board.Height, "mines", board.Mines, "seed", flagSeed)

	res, err := tui.Run(game, cfg.UI, rc, logger)
	if err != nil {
		return false, fmt.Errorf("error running game: %w", err)
	}
	logger.Info("board closed", "status", res.Status.String())
	return res.BackToMenu, nil
}

// menuLoop shows the preset menu and plays picked boards until the player quits.
func menuLoop(cfg config.MinesConfig, logger *log.Logger) error {
	for {
		rc := runtimeConfig()
		sel, err := tui.RunMenu(cfg, rc.ScreenW, rc.ScreenH)
		if err != nil {
			return fmt.Errorf("error running menu: %w", err)
		}
		if sel.Quit {
			return nil
		}

		logger.Debug("preset picked", "name", sel.Preset.Name)
		back, err := playBoard(cfg, sel.Preset.Board(), logger)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
