package minesweeper

import "github.com/vovakirdan/tui-mines/internal/core"

// Reveal uncovers the cell at (row, col).
//
// It does nothing when the game is over or the cell is flagged or already
// revealed. The first reveal of a game places the mines, avoiding this cell.
// Revealing a mine loses the game and exposes every mine. Revealing a cell
// with no adjacent mines flood-fills its zero region and the numbered
// border around it.
func (g *Game) Reveal(row, col int) {
	start := core.C(row, col)
	target := g.at(start)
	if g.status != Playing || target.state != Hidden {
		return
	}

	if g.firstClick {
		g.placeMines(start)
		g.firstClick = false
	}

	if target.mine {
		target.state = Revealed
		g.status = Lost
		g.revealAllMines()
		g.logger.Debug("mine revealed", "at", start.String())
		return
	}

	g.floodReveal(start)
	g.checkWin()
}

// floodReveal reveals start and, through zero-adjacency cells, every
// reachable hidden cell. Iterative over an explicit stack; the Hidden check
// visits each cell once. Flagged cells stop the fill.
func (g *Game) floodReveal(start core.Coord) {
	stack := []core.Coord{start}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cl := g.at(c)
		if cl.state != Hidden || cl.mine {
			continue
		}
		cl.state = Revealed
		g.revealedSafe++

		if cl.adjacent != 0 {
			continue
		}
		c.Neighbors(g.height, g.width, func(n core.Coord) {
			if g.at(n).state == Hidden {
				stack = append(stack, n)
			}
		})
	}
}

// revealAllMines exposes every mine for display after a loss. It does not
// touch revealedSafe.
func (g *Game) revealAllMines() {
	for i := range g.cells {
		if g.cells[i].mine {
			g.cells[i].state = Revealed
		}
	}
}

// checkWin declares a win once every non-mine cell is revealed.
// Flags play no part.
func (g *Game) checkWin() {
	if g.status != Playing {
		return
	}
	if g.revealedSafe == g.width*g.height-g.mines {
		g.status = Won
		g.logger.Debug("board cleared", "revealed", g.revealedSafe)
	}
}

// ToggleFlag flags a hidden cell or unflags a flagged one.
//
// It does nothing when the game is over, the cell is revealed, or no flags
// remain for a hidden cell. Flags have no effect on mine placement or on
// winning.
func (g *Game) ToggleFlag(row, col int) {
	cl := g.at(core.C(row, col))
	if g.status != Playing {
		return
	}

	switch cl.state {
	case Hidden:
		if g.flagsRemaining > 0 {
			cl.state = Flagged
			g.flagsRemaining--
		}
	case Flagged:
		cl.state = Hidden
		g.flagsRemaining++
	}
}
