// ABOUTME: Kanban task board for a team
// ABOUTME: Three status columns with create, move, and delete actions

package board

import (
	"strings"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/icons"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/styles"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/widgets"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Column order matches the web board left to right
var columnStatuses = []string{
	client.TaskStatusTodo,
	client.TaskStatusInProgress,
	client.TaskStatusDone,
}

var columnTitles = map[string]string{
	client.TaskStatusTodo:       "To Do",
	client.TaskStatusInProgress: "In Progress",
	client.TaskStatusDone:       "Done",
}

// CreateTaskMsg asks the app to create a task in the current team
type CreateTaskMsg struct {
	TeamID int
	Input  *client.TaskInput
}

// MoveTaskMsg asks the app to change a task's status
type MoveTaskMsg struct {
	TeamID int
	TaskID int
	Status string
}

// DeleteTaskMsg asks the app to delete a task
type DeleteTaskMsg struct {
	TeamID int
	TaskID int
}

// RefreshMsg asks the app to reload the board
type RefreshMsg struct {
	TeamID int
}

// CancelledMsg is sent when the user backs out of the screen
type CancelledMsg struct{}

// Board is the kanban screen for one team
type Board struct {
	team    client.Team
	columns map[string][]client.Task
	col     int
	row     int
	width   int

	adding bool
	input  textinput.Model
	status string
}

// New creates a board for the given team
func New(team client.Team) *Board {
	ti := textinput.New()
	ti.Placeholder = "task title"
	ti.CharLimit = 120
	ti.Width = 40

	return &Board{
		team:    team,
		columns: map[string][]client.Task{},
		input:   ti,
	}
}

// Team returns the team this board belongs to
func (b *Board) Team() client.Team {
	return b.team
}

// SetTasks replaces the board contents, bucketing tasks by status.
// Unknown statuses land in the first column so nothing disappears.
func (b *Board) SetTasks(tasks []client.Task) {
	cols := map[string][]client.Task{}
	for _, t := range tasks {
		status := t.Status
		if _, ok := columnTitles[status]; !ok {
			status = client.TaskStatusTodo
		}
		cols[status] = append(cols[status], t)
	}
	b.columns = cols
	b.clampCursor()
}

// SetStatus shows a one-line action outcome
func (b *Board) SetStatus(msg string) {
	b.status = msg
}

// SetWidth sets the rendering width
func (b *Board) SetWidth(width int) {
	b.width = width
}

func (b *Board) clampCursor() {
	if b.col >= len(columnStatuses) {
		b.col = len(columnStatuses) - 1
	}
	col := b.columns[columnStatuses[b.col]]
	if b.row >= len(col) {
		b.row = len(col) - 1
	}
	if b.row < 0 {
		b.row = 0
	}
}

func (b *Board) selected() *client.Task {
	col := b.columns[columnStatuses[b.col]]
	if b.row < len(col) {
		return &col[b.row]
	}
	return nil
}

// Init implements tea.Model
func (b *Board) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if b.adding {
			var cmd tea.Cmd
			b.input, cmd = b.input.Update(msg)
			return b, cmd
		}
		return b, nil
	}

	if b.adding {
		return b.updateAdding(key)
	}

	b.status = ""

	switch key.String() {
	case "esc", "b":
		return b, func() tea.Msg { return CancelledMsg{} }
	case "r":
		teamID := b.team.ID
		return b, func() tea.Msg { return RefreshMsg{TeamID: teamID} }
	case "left", "h":
		if b.col > 0 {
			b.col--
			b.clampCursor()
		}
	case "right", "l":
		if b.col < len(columnStatuses)-1 {
			b.col++
			b.clampCursor()
		}
	case "up", "k":
		if b.row > 0 {
			b.row--
		}
	case "down", "j":
		if b.row < len(b.columns[columnStatuses[b.col]])-1 {
			b.row++
		}
	case "n":
		b.adding = true
		b.input.SetValue("")
		b.input.Focus()
		return b, textinput.Blink
	case "H":
		return b.moveSelected(-1)
	case "L":
		return b.moveSelected(1)
	case "d":
		if task := b.selected(); task != nil {
			teamID, taskID := b.team.ID, task.ID
			return b, func() tea.Msg { return DeleteTaskMsg{TeamID: teamID, TaskID: taskID} }
		}
	}

	return b, nil
}

func (b *Board) updateAdding(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		b.adding = false
		b.input.Blur()
		return b, nil
	case "enter":
		title := strings.TrimSpace(b.input.Value())
		b.adding = false
		b.input.Blur()
		if title == "" {
			return b, nil
		}
		teamID := b.team.ID
		status := columnStatuses[b.col]
		input := &client.TaskInput{Title: title, Status: status, Priority: "medium"}
		return b, func() tea.Msg { return CreateTaskMsg{TeamID: teamID, Input: input} }
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(key)
	return b, cmd
}

// moveSelected shifts the selected task one column left or right
func (b *Board) moveSelected(delta int) (tea.Model, tea.Cmd) {
	task := b.selected()
	if task == nil {
		return b, nil
	}
	target := b.col + delta
	if target < 0 || target >= len(columnStatuses) {
		return b, nil
	}

	teamID, taskID := b.team.ID, task.ID
	status := columnStatuses[target]
	return b, func() tea.Msg {
		return MoveTaskMsg{TeamID: teamID, TaskID: taskID, Status: status}
	}
}

// View implements tea.Model
func (b *Board) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.BoardIcon.String() + " " + b.team.Name + " board"))
	sb.WriteString("\n\n")

	colWidth := 30
	if b.width > 0 {
		w := (b.width - 8) / len(columnStatuses)
		if w > 20 {
			colWidth = w
		}
	}

	var panes []string
	for ci, status := range columnStatuses {
		var col strings.Builder
		col.WriteString(styles.KeyStyle.Render(columnTitles[status]))
		col.WriteString("\n\n")

		tasks := b.columns[status]
		if len(tasks) == 0 {
			col.WriteString(styles.Subtitle.Render("empty"))
			col.WriteString("\n")
		}
		for ri, t := range tasks {
			line := t.Title
			if t.Priority != "" {
				line += " " + widgets.PriorityBadge(t.Priority)
			}
			if t.AssignedToName != "" {
				line += "\n  " + styles.Subtitle.Render(t.AssignedToName)
			}
			if ci == b.col && ri == b.row {
				col.WriteString(styles.Selected.Render("> " + line))
			} else {
				col.WriteString("  " + line)
			}
			col.WriteString("\n")
		}

		style := styles.Panel
		if ci == b.col {
			style = styles.ActivePanel
		}
		panes = append(panes, style.Width(colWidth).Render(col.String()))
	}

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panes...))

	if b.adding {
		sb.WriteString("\n\n")
		sb.WriteString(styles.KeyStyle.Render("New task: "))
		sb.WriteString(b.input.View())
	}

	if b.status != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusOK.Render(b.status))
	}

	return sb.String()
}
