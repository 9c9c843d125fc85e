// Package minesweeper implements the rules engine of the mines game: board
// state, lazy mine placement, adjacency counting, revealing with flood fill,
// flagging and win/loss detection.
//
// The engine is single-threaded and performs no locking; callers serialize
// Reveal, ToggleFlag and Reset calls.
package minesweeper

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Status is the aggregate state of a game.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

// String returns the status text shown to players.
func (s Status) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Won:
		return "You Won!"
	case Lost:
		return "Game Over"
	default:
		return "Unknown"
	}
}

// Game owns one board and the aggregate game status.
type Game struct {
	width  int
	height int
	mines  int
	cells  []cell // row-major, index = row*width + col

	status         Status
	flagsRemaining int
	firstClick     bool
	revealedSafe   int // non-mine cells revealed; drives the win check

	rng    *rand.Rand
	logger *log.Logger
}

// Option configures a Game at construction.
type Option func(*Game)

// WithSeed makes mine placement reproducible.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source used for mine placement.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithLogger routes engine debug events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a game on a height x width board with the given mine count.
// Mines are not placed until the first reveal, so the first revealed cell is
// never a mine. New panics if Validate rejects the parameters.
func New(width, height, mines int, opts ...Option) *Game {
	if err := Validate(width, height, mines); err != nil {
		panic(err)
	}

	g := &Game{
		width:  width,
		height: height,
		mines:  mines,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.clear()
	return g
}

// clear installs a fresh, mine-free, all-hidden grid.
func (g *Game) clear() {
	g.cells = make([]cell, g.width*g.height)
	g.status = Playing
	g.flagsRemaining = g.mines
	g.firstClick = true
	g.revealedSafe = 0
}

// Reset starts a new game with the same dimensions and mine count.
// Mines are re-randomized on the next first reveal.
func (g *Game) Reset() {
	g.clear()
	g.logger.Debug("board reset", "width", g.width, "height", g.height, "mines", g.mines)
}

// Width returns the number of columns.
func (g *Game) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Game) Height() int {
	return g.height
}

// Mines returns the configured mine count.
func (g *Game) Mines() int {
	return g.mines
}

// Status returns the current game status.
func (g *Game) Status() Status {
	return g.status
}

// FlagsRemaining returns the number of flags the player may still place.
func (g *Game) FlagsRemaining() int {
	return g.flagsRemaining
}

// FirstClick reports whether mines are still waiting to be placed.
func (g *Game) FirstClick() bool {
	return g.firstClick
}

// RevealedCount returns the number of non-mine cells revealed so far.
func (g *Game) RevealedCount() int {
	return g.revealedSafe
}

// InBounds reports whether (row, col) addresses a cell of this board.
func (g *Game) InBounds(row, col int) bool {
	return core.C(row, col).In(g.height, g.width)
}

// Cell returns the player-visible view of the cell at (row, col).
func (g *Game) Cell(row, col int) CellView {
	return g.cells[g.index(core.C(row, col))].view()
}

// index converts a coordinate to a flat array index, panicking on
// out-of-range access.
func (g *Game) index(c core.Coord) int {
	if !c.In(g.height, g.width) {
		panic(fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, c, g.width, g.height))
	}
	return c.Row*g.width + c.Col
}

// at returns a pointer to the cell at c.
func (g *Game) at(c core.Coord) *cell {
	return &g.cells[g.index(c)]
}
