package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/minesweeper"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testUI() config.UIConfig {
	ui := config.DefaultMinesConfig().UI
	ui.ShowHelp = false
	return ui
}

func newTestModel(width, height, mines int) Model {
	game := minesweeper.New(width, height, mines, minesweeper.WithSeed(7))
	return NewModel(game, testUI(), core.RuntimeConfig{}, nil)
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		next, ok := updated.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", updated)
		}
		m = next
	}
	return m
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"vim down", runeKey('j'), core.ActionDown},
		{"vim left", runeKey('h'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"space reveals", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionReveal},
		{"enter reveals", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionReveal},
		{"flag", runeKey('f'), core.ActionFlag},
		{"reset", runeKey('r'), core.ActionReset},
		{"help", runeKey('?'), core.ActionHelp},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Action
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionReveal},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.ActionFlag},
		{"left release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ActionNone},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, core.ActionNone},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapMouse(tt.msg); got != tt.want {
				t.Errorf("MapMouse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCursorStartsCenteredAndClamps(t *testing.T) {
	m := newTestModel(5, 3, 1)
	if m.Cursor() != core.C(1, 2) {
		t.Fatalf("initial cursor = %v, want (1,2)", m.Cursor())
	}

	m = send(t, m, runeKey('k'), runeKey('k'), runeKey('k'))
	if m.Cursor() != core.C(0, 2) {
		t.Errorf("cursor after moving up past the edge = %v, want (0,2)", m.Cursor())
	}

	m = send(t, m, runeKey('l'), runeKey('l'), runeKey('l'))
	if m.Cursor() != core.C(0, 4) {
		t.Errorf("cursor after moving right past the edge = %v, want (0,4)", m.Cursor())
	}
}

func TestCursorWraps(t *testing.T) {
	game := minesweeper.New(4, 4, 1, minesweeper.WithSeed(1))
	ui := testUI()
	ui.Wrap = true
	m := NewModel(game, ui, core.RuntimeConfig{}, nil)

	m = send(t, m, runeKey('j'), runeKey('j'))
	if m.Cursor() != core.C(0, 2) {
		t.Errorf("cursor = %v, want wrapped to (0,2)", m.Cursor())
	}
}

func TestRevealKeyWinsZeroMineBoard(t *testing.T) {
	m := newTestModel(3, 3, 0)
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	if m.game.Status() != minesweeper.Won {
		t.Errorf("Status = %v, want Won", m.game.Status())
	}
	if !strings.Contains(m.View(), "You Won!") {
		t.Errorf("View should show the win:\n%s", m.View())
	}
}

func TestFlagKeyTogglesAndCounts(t *testing.T) {
	m := newTestModel(4, 4, 3)
	m = send(t, m, runeKey('f'))

	c := m.Cursor()
	if got := m.game.Cell(c.Row, c.Col).State; got != minesweeper.Flagged {
		t.Fatalf("cell under cursor = %v, want flagged", got)
	}
	if m.game.FlagsRemaining() != 2 {
		t.Errorf("FlagsRemaining = %d, want 2", m.game.FlagsRemaining())
	}
	if !strings.Contains(m.View(), "Mines: 2") {
		t.Errorf("header should show the counter:\n%s", m.View())
	}

	m = send(t, m, runeKey('f'))
	if got := m.game.Cell(c.Row, c.Col).State; got != minesweeper.Hidden {
		t.Errorf("second flag should unflag, got %v", got)
	}
}

func TestMouseClicksMapToCells(t *testing.T) {
	m := newTestModel(4, 3, 2)
	cw := cellWidth(m.ui)

	// Right click on row 2, col 3
	x, y := 1+3*cw+1, boardTop+2
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	if m.Cursor() != core.C(2, 3) {
		t.Fatalf("cursor = %v, want (2,3)", m.Cursor())
	}
	if m.game.Cell(2, 3).State != minesweeper.Flagged {
		t.Errorf("right click should flag (2,3)")
	}

	// Left click on the flagged cell is refused by the engine
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.game.FirstClick() {
		t.Errorf("reveal on a flag should not place mines")
	}

	// Clicks on the frame are ignored
	m = send(t, m, tea.MouseMsg{X: 0, Y: boardTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Cursor() != core.C(2, 3) {
		t.Errorf("frame click moved cursor to %v", m.Cursor())
	}
}

func TestMouseRevealWins(t *testing.T) {
	m := newTestModel(3, 2, 0)
	m = send(t, m, tea.MouseMsg{X: 2, Y: boardTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if m.game.Status() != minesweeper.Won {
		t.Errorf("Status = %v, want Won", m.game.Status())
	}
}

func TestResetKey(t *testing.T) {
	m := newTestModel(3, 3, 0)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runeKey('r'))

	if m.game.Status() != minesweeper.Playing || m.game.RevealedCount() != 0 || !m.game.FirstClick() {
		t.Errorf("reset should start a fresh board: status %v, revealed %d", m.game.Status(), m.game.RevealedCount())
	}
}

func TestGameEndLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	game := minesweeper.New(2, 2, 0)
	m := NewModel(game, testUI(), core.RuntimeConfig{}, logger)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter}, runeKey('f'))

	if n := strings.Count(buf.String(), "game over"); n != 1 {
		t.Errorf("game over logged %d times, want 1:\n%s", n, buf.String())
	}
}

func TestQuitAndBack(t *testing.T) {
	m := newTestModel(3, 3, 1)

	updated, cmd := m.Update(runeKey('q'))
	if cmd == nil || !updated.(Model).IsQuitting() {
		t.Error("q should quit")
	}

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	back := updated.(Model)
	if cmd == nil || !back.WantsMenu() || back.IsQuitting() {
		t.Error("esc should go back to the menu without quitting")
	}
	if back.View() != "" {
		t.Error("View should be empty after leaving")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(16, 16, 40)
	m = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})

	if !strings.Contains(m.View(), "Terminal too small") {
		t.Errorf("View should ask for a bigger terminal:\n%s", m.View())
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if strings.Contains(m.View(), "Terminal too small") {
		t.Error("View should draw the board once the terminal fits")
	}
}

func TestDrawBoard(t *testing.T) {
	game := minesweeper.New(3, 2, 1)
	ui := testUI()
	ui.Symbols = config.SymbolsConfig{Hidden: "#", Flag: "F", Mine: "*", Empty: "."}
	w, h := BoardSize(3, 2, ui)
	s := core.NewScreen(w, h)

	DrawBoard(s, game, core.C(0, 0), ui)
	if got := s.Row(boardTop); !strings.HasPrefix(got, "│[#] #  # │") {
		t.Errorf("row 0 = %q", got)
	}

	game.ToggleFlag(1, 2)
	DrawBoard(s, game, core.C(0, 0), ui)
	if got := s.Row(boardTop + 1); !strings.HasPrefix(got, "│ #  #  F │") {
		t.Errorf("row 1 = %q", got)
	}
	if got := s.Row(0); !strings.HasPrefix(got, "Mines: 0 ") {
		t.Errorf("header = %q", got)
	}
}

func TestCellGlyphNumbersAndMines(t *testing.T) {
	sym := config.DefaultMinesConfig().UI.Symbols

	r, c := cellGlyph(minesweeper.CellView{State: minesweeper.Revealed, Adjacent: 3}, sym)
	if r != '3' || c != core.NumberColor(3) {
		t.Errorf("number glyph = %q/%v", r, c)
	}
	r, _ = cellGlyph(minesweeper.CellView{State: minesweeper.Revealed, Mine: true}, sym)
	if r != '✹' {
		t.Errorf("mine glyph = %q", r)
	}
	r, _ = cellGlyph(minesweeper.CellView{State: minesweeper.Revealed}, config.SymbolsConfig{})
	if r != '.' {
		t.Errorf("empty glyph fallback = %q", r)
	}
}
