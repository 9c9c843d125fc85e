package minesweeper

import (
	"fmt"
	"strings"
)

// Snapshot is an immutable copy of everything a player may know about a
// game. It never exposes mines or counts of unrevealed cells.
type Snapshot struct {
	Width          int
	Height         int
	Mines          int
	Status         Status
	FlagsRemaining int
	FirstClick     bool
	Revealed       int
	Cells          [][]CellView // [row][col]
}

// Snapshot returns the current player-visible game state.
func (g *Game) Snapshot() Snapshot {
	rows := make([][]CellView, g.height)
	for row := range rows {
		rows[row] = make([]CellView, g.width)
		for col := range rows[row] {
			rows[row][col] = g.cells[row*g.width+col].view()
		}
	}

	return Snapshot{
		Width:          g.width,
		Height:         g.height,
		Mines:          g.mines,
		Status:         g.status,
		FlagsRemaining: g.flagsRemaining,
		FirstClick:     g.firstClick,
		Revealed:       g.revealedSafe,
		Cells:          rows,
	}
}

// Glyph returns the ASCII character for a cell view:
// '#' hidden, 'F' flagged, '*' mine, '.' empty, '1'-'8' counts.
func (v CellView) Glyph() rune {
	switch v.State {
	case Flagged:
		return 'F'
	case Revealed:
		if v.Mine {
			return '*'
		}
		if v.Adjacent == 0 {
			return '.'
		}
		return rune('0' + v.Adjacent)
	default:
		return '#'
	}
}

// String renders the snapshot as ASCII, for debugging and golden tests.
//
// Format:
//
//	Status: Playing | Flags: 10 | Revealed: 0/71
//	#########
//	...
func (s Snapshot) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Status: %s | Flags: %d | Revealed: %d/%d\n",
		s.Status, s.FlagsRemaining, s.Revealed, s.Width*s.Height-s.Mines)
	for _, row := range s.Cells {
		for _, v := range row {
			sb.WriteRune(v.Glyph())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Grid renders only the cell rows of the snapshot, one line per row.
func (s Snapshot) Grid() string {
	lines := make([]string, len(s.Cells))
	for i, row := range s.Cells {
		var sb strings.Builder
		for _, v := range row {
			sb.WriteRune(v.Glyph())
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}
