package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/config"
)

func sendMenu(t *testing.T, m MenuModel, msgs ...tea.Msg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		next, ok := updated.(MenuModel)
		if !ok {
			t.Fatalf("Update returned %T, want MenuModel", updated)
		}
		m = next
	}
	return m
}

func TestMenuListsPresetsAndCustom(t *testing.T) {
	cfg := config.DefaultMinesConfig()
	cfg.Board = config.BoardConfig{Width: 7, Height: 5, Mines: 3}
	m := NewMenuModel(cfg, 80, 24)

	if len(m.presets) != len(cfg.Presets)+1 {
		t.Fatalf("menu has %d rows, want %d", len(m.presets), len(cfg.Presets)+1)
	}
	last := m.presets[len(m.presets)-1]
	if last.Name != "custom" || last.Board() != cfg.Board {
		t.Errorf("last row = %+v, want custom %+v", last, cfg.Board)
	}
}

func TestMenuSelect(t *testing.T) {
	cfg := config.DefaultMinesConfig()
	m := NewMenuModel(cfg, 80, 24)

	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil {
		t.Fatal("Selected() = nil after enter")
	}
	if sel.Name != cfg.Presets[1].Name {
		t.Errorf("Selected() = %q, want %q", sel.Name, cfg.Presets[1].Name)
	}
	if m.View() != "" {
		t.Error("View should be empty once a preset is picked")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(config.DefaultMinesConfig(), 80, 24)
	m = sendMenu(t, m, runeKey('q'))

	if !m.IsQuitting() || m.Selected() != nil {
		t.Error("q should quit without a selection")
	}
}
