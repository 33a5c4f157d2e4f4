// ABOUTME: Tests for the home menu navigation

package home

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestMenu_CursorStopsAtEdges(t *testing.T) {
	m := New()

	m.Update(keyMsg("up"))
	if m.cursor != 0 {
		t.Errorf("cursor moved above the first entry: %d", m.cursor)
	}

	for i := 0; i < 20; i++ {
		m.Update(keyMsg("j"))
	}
	if m.cursor != len(m.entries)-1 {
		t.Errorf("cursor = %d, want last entry %d", m.cursor, len(m.entries)-1)
	}
}

func TestMenu_EnterEmitsSelection(t *testing.T) {
	m := New()
	m.Update(keyMsg("down")) // My teams

	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	msg, ok := cmd().(SelectedMsg)
	if !ok {
		t.Fatalf("expected SelectedMsg, got %T", cmd())
	}
	if msg.Dest != DestTeams {
		t.Errorf("Dest = %v, want DestTeams", msg.Dest)
	}
}

func TestMenu_BadgesAppearInView(t *testing.T) {
	m := New()
	m.SetBadges(2, 0)

	view := m.View()
	if !strings.Contains(view, "Inbox") || !strings.Contains(view, "2") {
		t.Errorf("expected inbox badge in view:\n%s", view)
	}
	// No unread messages, so no badge next to Messages
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "Messages") && strings.Contains(line, "0") {
			t.Errorf("unexpected zero badge: %q", line)
		}
	}
}

func TestMenu_NonKeyMessagesIgnored(t *testing.T) {
	m := New()
	model, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if model != m || cmd != nil {
		t.Error("expected window size messages to be ignored")
	}
}
