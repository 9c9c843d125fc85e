// Package tui provides the Bubble Tea front end for the mines game: the board
// screen, the preset menu and their key maps.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/minesweeper"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one board.
// It holds no game state of its own; every View re-reads the engine.
type Model struct {
	game     *minesweeper.Game
	screen   *core.Screen
	ui       config.UIConfig
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	cursor   core.Coord
	ended    bool // Game end has been logged for the current board
	quitting bool
	back     bool // True if user asked for the menu (not quit)
}

// NewModel creates a board model for game.
// A nil logger discards log output.
func NewModel(game *minesweeper.Game, ui config.UIConfig, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := BoardSize(game.Width(), game.Height(), ui)

	hm := help.New()
	hm.ShowAll = false

	return Model{
		game:   game,
		screen: core.NewScreen(w, h),
		ui:     ui,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   hm,
		logger: logger,
		cursor: core.C(game.Height()/2, game.Width()/2),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}
	return m.apply(m.keys.MapKey(msg))
}

// handleMouse moves the cursor to the clicked cell and acts on it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action := MapMouse(msg)
	if action == core.ActionNone {
		return m, nil
	}
	c, ok := CellAt(msg.X, msg.Y, m.game.Width(), m.game.Height(), m.ui)
	if !ok {
		return m, nil
	}
	m.cursor = c
	return m.apply(action)
}

// apply performs one player intent against the engine.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.back = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionReset:
		m.game.Reset()
		m.ended = false
		m.logger.Info("new board", "width", m.game.Width(), "height", m.game.Height(), "mines", m.game.Mines())

	case core.ActionReveal:
		m.game.Reveal(m.cursor.Row, m.cursor.Col)

	case core.ActionFlag:
		m.game.ToggleFlag(m.cursor.Row, m.cursor.Col)

	default:
		if action.IsMove() {
			m.moveCursor(action.Delta())
		}
	}

	m.logEnd()
	return m, nil
}

func (m *Model) moveCursor(dr, dc int) {
	next := m.cursor.Add(dr, dc)
	if m.ui.Wrap {
		next.Row = core.Wrap(next.Row, m.game.Height())
		next.Col = core.Wrap(next.Col, m.game.Width())
	} else {
		next.Row = core.Clamp(next.Row, 0, m.game.Height()-1)
		next.Col = core.Clamp(next.Col, 0, m.game.Width()-1)
	}
	m.cursor = next
}

// logEnd records the outcome once per board.
func (m *Model) logEnd() {
	if m.ended || m.game.Status() == minesweeper.Playing {
		return
	}
	m.ended = true
	m.logger.Info("game over",
		"status", m.game.Status().String(),
		"revealed", m.game.RevealedCount(),
		"flags", m.game.FlagsRemaining())
}

// saveScreenshot saves the board as plain text to ~/.mines/screenshots.
func (m Model) saveScreenshot() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".mines", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("mines_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.game.Snapshot().String()), 0o600); err != nil {
		return fmt.Errorf("cannot write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	needW, needH := m.screen.Width(), m.screen.Height()
	if m.ui.ShowHelp {
		needH++
	}
	if m.config.ScreenW > 0 && m.config.ScreenH > 0 &&
		(m.config.ScreenW < needW || m.config.ScreenH < needH) {
		return tooSmallText(needW, needH, m.config.ScreenW)
	}

	DrawBoard(m.screen, m.game, m.cursor, m.ui)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	if m.ui.ShowHelp {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// tooSmallText asks the player to enlarge the terminal.
func tooSmallText(needW, needH, width int) string {
	return centerText(fmt.Sprintf("Terminal too small: need %dx%d", needW, needH), width)
}

// Cursor returns the board cell under the cursor.
func (m Model) Cursor() core.Coord {
	return m.cursor
}

// WantsMenu returns true if the player asked to go back to the menu.
func (m Model) WantsMenu() bool {
	return m.back
}

// IsQuitting returns true if the player requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// Result holds the outcome of running a board.
type Result struct {
	Status     minesweeper.Status
	BackToMenu bool
}

// Run starts the Bubble Tea program on game and blocks until the player
// quits or goes back to the menu.
func Run(game *minesweeper.Game, ui config.UIConfig, cfg core.RuntimeConfig, logger *log.Logger) (Result, error) {
	model := NewModel(game, ui, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click reveals, right click flags
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{Status: game.Status()}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{Status: game.Status()}, nil
	}
	return Result{Status: game.Status(), BackToMenu: m.WantsMenu()}, nil
}
