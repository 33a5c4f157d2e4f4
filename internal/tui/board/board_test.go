// ABOUTME: Tests for the kanban board model

package board

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testBoard() *Board {
	b := New(client.Team{ID: 7, Name: "Rocket"})
	b.SetTasks([]client.Task{
		{ID: 1, Title: "Schema", Status: client.TaskStatusTodo},
		{ID: 2, Title: "Login", Status: client.TaskStatusTodo},
		{ID: 3, Title: "Deploy", Status: client.TaskStatusInProgress},
	})
	return b
}

func TestSetTasks_BucketsUnknownStatusIntoTodo(t *testing.T) {
	b := New(client.Team{ID: 7})
	b.SetTasks([]client.Task{
		{ID: 1, Title: "Odd one", Status: "blocked"},
		{ID: 2, Title: "Normal", Status: client.TaskStatusDone},
	})

	if got := len(b.columns[client.TaskStatusTodo]); got != 1 {
		t.Errorf("todo column has %d tasks, want the unknown-status one", got)
	}
	if got := len(b.columns[client.TaskStatusDone]); got != 1 {
		t.Errorf("done column has %d tasks, want 1", got)
	}
}

func TestMoveSelected_EmitsMoveMsg(t *testing.T) {
	b := testBoard()

	_, cmd := b.Update(key("L"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(MoveTaskMsg)
	if !ok {
		t.Fatalf("expected MoveTaskMsg, got %T", cmd())
	}
	if msg.TeamID != 7 || msg.TaskID != 1 || msg.Status != client.TaskStatusInProgress {
		t.Errorf("unexpected msg %+v", msg)
	}
}

func TestMoveSelected_NoMoveOffTheBoard(t *testing.T) {
	b := testBoard()

	// First column, moving left goes nowhere
	if _, cmd := b.Update(key("H")); cmd != nil {
		t.Error("expected no command moving left from the first column")
	}
}

func TestDelete_EmitsDeleteMsg(t *testing.T) {
	b := testBoard()
	b.Update(key("j")) // select the second todo task

	_, cmd := b.Update(key("d"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(DeleteTaskMsg)
	if !ok || msg.TaskID != 2 {
		t.Errorf("expected DeleteTaskMsg for task 2, got %T %+v", cmd(), msg)
	}
}

func TestAddTask_CreatesInCurrentColumn(t *testing.T) {
	b := testBoard()
	b.Update(key("l")) // in-progress column

	b.Update(key("n"))
	if !b.adding {
		t.Fatal("expected input mode after n")
	}
	b.input.SetValue("Write docs")

	_, cmd := b.Update(key("enter"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(CreateTaskMsg)
	if !ok {
		t.Fatalf("expected CreateTaskMsg, got %T", cmd())
	}
	if msg.Input.Title != "Write docs" || msg.Input.Status != client.TaskStatusInProgress {
		t.Errorf("unexpected input %+v", msg.Input)
	}
	if msg.Input.Priority != "medium" {
		t.Errorf("priority = %q, want medium default", msg.Input.Priority)
	}
}

func TestAddTask_EmptyTitleIsDropped(t *testing.T) {
	b := testBoard()
	b.Update(key("n"))
	b.input.SetValue("   ")

	if _, cmd := b.Update(key("enter")); cmd != nil {
		t.Error("expected no command for a blank title")
	}
	if b.adding {
		t.Error("expected input mode to end")
	}
}

func TestEsc_EmitsCancelled(t *testing.T) {
	b := testBoard()

	_, cmd := b.Update(key("esc"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Errorf("expected CancelledMsg, got %T", cmd())
	}
}
