package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodger/internal/storage"
)

func newScoreStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	store.SaveScore("dodger", "ann", 10)
	store.SaveScore("dodger", "bob", 25)
	store.SaveScore("dodger_hard", "cat", 7)
	return store
}

func TestScoreboardOpensOnBoard(t *testing.T) {
	store := newScoreStore(t)

	m := NewScoreboardModel(store, "dodger_hard", 100, 30)

	if m.Board() != "dodger_hard" {
		t.Errorf("Board() = %q, expected dodger_hard", m.Board())
	}
	if len(m.Scores()) != 1 || m.Scores()[0].Player != "cat" {
		t.Errorf("Scores() = %+v, expected cat's score", m.Scores())
	}
}

func TestScoreboardAddsMissingBoard(t *testing.T) {
	store := newScoreStore(t)

	m := NewScoreboardModel(store, "dodger_easy", 100, 30)

	if m.Board() != "dodger_easy" {
		t.Errorf("Board() = %q, expected dodger_easy", m.Board())
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Errorf("empty board view:\n%s", m.View())
	}
}

func TestScoreboardSwitchBoards(t *testing.T) {
	store := newScoreStore(t)
	m := NewScoreboardModel(store, "dodger", 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Board() != "dodger_hard" {
		t.Errorf("after tab Board() = %q, expected dodger_hard", m.Board())
	}

	// Wraps around
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Board() != "dodger" {
		t.Errorf("after second tab Board() = %q, expected dodger", m.Board())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(ScoreboardModel)
	if m.Board() != "dodger_hard" {
		t.Errorf("after left Board() = %q, expected dodger_hard", m.Board())
	}
}

func TestScoreboardView(t *testing.T) {
	store := newScoreStore(t)
	m := NewScoreboardModel(store, "dodger", 100, 30)

	view := m.View()
	for _, want := range []string{"HIGH SCORES - dodger", "bob", "25", "2 games"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	// Narrow terminals drop the sidebar
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if view := next.(ScoreboardModel).View(); !strings.Contains(view, "bob") {
		t.Errorf("narrow view missing scores:\n%s", view)
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "dodger", 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(ScoreboardModel)

	if !m.IsQuitting() || cmd == nil {
		t.Error("q did not quit the scoreboard")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
