package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/minesweeper"
)

// Board layout constants
const (
	headerLines  = 2 // Counter/status line plus a blank line
	boardTop     = headerLines + 1
	minCellWidth = 2
	maxCellWidth = 3
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorNavy:        lipgloss.NewStyle().Foreground(lipgloss.Color("19")),
	core.ColorMaroon:      lipgloss.NewStyle().Foreground(lipgloss.Color("88")),
	core.ColorTeal:        lipgloss.NewStyle().Foreground(lipgloss.Color("30")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// cellWidth returns the configured characters per cell, clamped to what the
// board drawing supports.
func cellWidth(ui config.UIConfig) int {
	return core.Clamp(ui.CellWidth, minCellWidth, maxCellWidth)
}

// BoardSize returns the screen size needed to draw a width x height board.
func BoardSize(width, height int, ui config.UIConfig) (w, h int) {
	w = width*cellWidth(ui) + 2
	if header := len(headerText(999, minesweeper.Lost)); header > w {
		w = header
	}
	return w, boardTop + height + 1
}

// headerText is the counter, status and reset hint line above the board.
func headerText(flagsRemaining int, status minesweeper.Status) string {
	return fmt.Sprintf("Mines: %-3d  %-9s  r: reset", flagsRemaining, status)
}

func statusColor(status minesweeper.Status) core.Color {
	switch status {
	case minesweeper.Won:
		return core.ColorGreen
	case minesweeper.Lost:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// symbol returns the first rune of a configured glyph, or fallback if unset.
func symbol(s string, fallback rune) rune {
	if s == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// cellGlyph picks the rune and color for one cell view.
func cellGlyph(v minesweeper.CellView, sym config.SymbolsConfig) (rune, core.Color) {
	switch v.State {
	case minesweeper.Flagged:
		return symbol(sym.Flag, 'F'), core.ColorBrightRed
	case minesweeper.Hidden:
		return symbol(sym.Hidden, '#'), core.ColorGray
	}
	if v.Mine {
		return symbol(sym.Mine, '*'), core.ColorRed
	}
	if v.Adjacent == 0 {
		return symbol(sym.Empty, '.'), core.ColorDarkGray
	}
	return rune('0' + v.Adjacent), core.NumberColor(v.Adjacent)
}

// DrawBoard draws the header, the framed grid and the cursor into s.
// The screen must be at least BoardSize.
func DrawBoard(s *core.Screen, g *minesweeper.Game, cursor core.Coord, ui config.UIConfig) {
	s.Clear()
	cw := cellWidth(ui)

	s.DrawText(0, 0, headerText(g.FlagsRemaining(), g.Status()), statusColor(g.Status()))

	// Frame
	right := g.Width()*cw + 1
	bottom := boardTop + g.Height()
	for x := 1; x < right; x++ {
		s.SetColored(x, boardTop-1, '─', core.ColorWhite)
		s.SetColored(x, bottom, '─', core.ColorWhite)
	}
	for y := boardTop; y < bottom; y++ {
		s.SetColored(0, y, '│', core.ColorWhite)
		s.SetColored(right, y, '│', core.ColorWhite)
	}
	s.SetColored(0, boardTop-1, '┌', core.ColorWhite)
	s.SetColored(right, boardTop-1, '┐', core.ColorWhite)
	s.SetColored(0, bottom, '└', core.ColorWhite)
	s.SetColored(right, bottom, '┘', core.ColorWhite)

	for row := range g.Height() {
		for col := range g.Width() {
			x := 1 + col*cw
			y := boardTop + row
			r, c := cellGlyph(g.Cell(row, col), ui.Symbols)
			s.SetColored(x+1, y, r, c)
		}
	}

	// Cursor brackets sit in the padding around the glyph
	if g.Status() == minesweeper.Playing && cursor.In(g.Height(), g.Width()) {
		x := 1 + cursor.Col*cw
		y := boardTop + cursor.Row
		s.SetColored(x, y, '[', core.ColorYellow)
		if cw >= maxCellWidth {
			s.SetColored(x+2, y, ']', core.ColorYellow)
		}
	}
}

// CellAt maps a screen position to a board cell.
// Returns false when the position is outside the grid.
func CellAt(x, y, width, height int, ui config.UIConfig) (core.Coord, bool) {
	if x < 1 || y < boardTop {
		return core.Coord{}, false
	}
	c := core.C(y-boardTop, (x-1)/cellWidth(ui))
	return c, c.In(height, width)
}
