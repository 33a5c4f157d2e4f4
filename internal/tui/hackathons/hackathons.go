// ABOUTME: Hackathon discovery screen with filtering and registration
// ABOUTME: List of events plus a detail pane for the selected one

package hackathons

import (
	"fmt"
	"strings"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/icons"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/styles"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/widgets"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchMsg asks the app to run a hackathon search
type SearchMsg struct {
	Query string
}

// RegisterMsg asks the app to register for a hackathon
type RegisterMsg struct {
	HackathonID int
}

// CancelledMsg is sent when the user backs out of the screen
type CancelledMsg struct{}

// Hackathons is the event discovery screen
type Hackathons struct {
	events     []client.Hackathon
	registered map[int]bool
	cursor     int
	searching  bool
	input      textinput.Model
	status     string
	width      int
}

// New creates the hackathons screen
func New(events []client.Hackathon, registrations []client.Hackathon) *Hackathons {
	ti := textinput.New()
	ti.Placeholder = "search hackathons"
	ti.CharLimit = 128
	ti.Width = 40

	registered := map[int]bool{}
	for _, h := range registrations {
		registered[h.ID] = true
	}

	return &Hackathons{
		events:     events,
		registered: registered,
		input:      ti,
	}
}

// SetEvents replaces the event list
func (h *Hackathons) SetEvents(events []client.Hackathon) {
	h.events = events
	if h.cursor >= len(events) {
		h.cursor = 0
	}
}

// MarkRegistered records a confirmed registration
func (h *Hackathons) MarkRegistered(id int) {
	h.registered[id] = true
}

// SetStatus shows a one-line action outcome
func (h *Hackathons) SetStatus(msg string) {
	h.status = msg
}

// SetWidth sets the rendering width
func (h *Hackathons) SetWidth(width int) {
	h.width = width
}

// Init implements tea.Model
func (h *Hackathons) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (h *Hackathons) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if h.searching {
			var cmd tea.Cmd
			h.input, cmd = h.input.Update(msg)
			return h, cmd
		}
		return h, nil
	}

	if h.searching {
		switch key.String() {
		case "esc":
			h.searching = false
			h.input.Blur()
			return h, nil
		case "enter":
			query := strings.TrimSpace(h.input.Value())
			h.searching = false
			h.input.Blur()
			return h, func() tea.Msg { return SearchMsg{Query: query} }
		}
		var cmd tea.Cmd
		h.input, cmd = h.input.Update(key)
		return h, cmd
	}

	h.status = ""

	switch key.String() {
	case "esc", "b":
		return h, func() tea.Msg { return CancelledMsg{} }
	case "/":
		h.searching = true
		h.input.Focus()
		return h, textinput.Blink
	case "up", "k":
		if h.cursor > 0 {
			h.cursor--
		}
	case "down", "j":
		if h.cursor < len(h.events)-1 {
			h.cursor++
		}
	case "enter", "r":
		if h.cursor < len(h.events) {
			ev := h.events[h.cursor]
			if h.registered[ev.ID] {
				h.status = "Already registered for " + ev.Name
				return h, nil
			}
			id := ev.ID
			return h, func() tea.Msg { return RegisterMsg{HackathonID: id} }
		}
	}

	return h, nil
}

// View implements tea.Model
func (h *Hackathons) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.EventIcon.String() + " Hackathons"))
	sb.WriteString("\n")

	if h.searching {
		sb.WriteString(h.input.View())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if len(h.events) == 0 {
		sb.WriteString(styles.Subtitle.Render("No hackathons found. Press / to search."))
		return sb.String()
	}

	list := h.viewList()
	detail := h.viewDetail()

	listWidth := 40
	detailWidth := 44
	if h.width > 96 {
		listWidth = (h.width - 12) / 2
		detailWidth = h.width - listWidth - 12
	}

	sb.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		styles.ActivePanel.Width(listWidth).Render(list),
		styles.Panel.Width(detailWidth).Render(detail),
	))

	if h.status != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusOK.Render(h.status))
	}

	return sb.String()
}

func (h *Hackathons) viewList() string {
	var sb strings.Builder
	for i, ev := range h.events {
		line := ev.Name
		if h.registered[ev.ID] {
			line += " " + widgets.Badge("registered", widgets.StatusOK)
		} else if ev.Status != "" {
			line += " " + widgets.Badge(ev.Status, statusLevel(ev.Status))
		}

		if i == h.cursor {
			sb.WriteString(styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (h *Hackathons) viewDetail() string {
	if h.cursor >= len(h.events) {
		return ""
	}
	ev := h.events[h.cursor]

	var sb strings.Builder
	sb.WriteString(styles.ValueStyle.Render(ev.Name))
	sb.WriteString("\n\n")
	if ev.Description != "" {
		sb.WriteString(ev.Description)
		sb.WriteString("\n\n")
	}

	rows := []struct{ k, v string }{
		{"When", ev.StartDate + " to " + ev.EndDate},
		{"Where", ev.Location},
		{"Mode", ev.Mode},
		{"Category", ev.Category},
		{"Prize", ev.Prize},
	}
	for _, row := range rows {
		if row.v == "" || row.v == " to " {
			continue
		}
		sb.WriteString(styles.KeyStyle.Render(row.k+": ") + row.v + "\n")
	}

	if ev.MaxParticipants > 0 {
		sb.WriteString(styles.KeyStyle.Render("Spots: "))
		sb.WriteString(fmt.Sprintf("%d/%d\n", ev.ParticipantCount, ev.MaxParticipants))
	}

	return sb.String()
}

func statusLevel(status string) widgets.StatusLevel {
	switch status {
	case "upcoming":
		return widgets.StatusInfo
	case "ongoing":
		return widgets.StatusOK
	case "completed":
		return widgets.StatusNeutral
	default:
		return widgets.StatusNeutral
	}
}
