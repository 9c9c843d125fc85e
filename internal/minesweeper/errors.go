package minesweeper

import (
	"errors"
	"fmt"
)

// Contract violations. The engine panics with these (wrapped) when a caller
// breaks a precondition; game-rule no-ops are never errors.
var (
	ErrInvalidSize   = errors.New("minesweeper: width and height must be positive")
	ErrNegativeMines = errors.New("minesweeper: mine count must not be negative")
	ErrTooManyMines  = errors.New("minesweeper: mine count must be less than width*height")
	ErrOutOfBounds   = errors.New("minesweeper: coordinate out of bounds")
)

// Validate reports whether a board with the given parameters can be played.
func Validate(width, height, mines int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	if mines < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeMines, mines)
	}
	if mines >= width*height {
		return fmt.Errorf("%w: %d mines on %dx%d", ErrTooManyMines, mines, width, height)
	}
	return nil
}
