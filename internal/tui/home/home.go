// ABOUTME: Main navigation menu shown after sign-in
// ABOUTME: Cursor list of destinations emitting a selection message

package home

import (
	"fmt"
	"strings"

	"github.com/UtkarshAditya/BuildBuddy/internal/tui/icons"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/styles"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/widgets"
	tea "github.com/charmbracelet/bubbletea"
)

// Destination is a navigable app area
type Destination int

const (
	DestBrowse Destination = iota
	DestTeams
	DestInbox
	DestMessages
	DestHackathons
	DestLogout
)

// SelectedMsg is sent when the user picks a destination
type SelectedMsg struct {
	Dest Destination
}

type entry struct {
	icon  icons.Icon
	label string
	dest  Destination
}

// Menu is the home screen
type Menu struct {
	entries []entry
	cursor  int

	inviteBadge int
	unreadBadge int
}

// New creates the home menu
func New() *Menu {
	return &Menu{
		entries: []entry{
			{icons.SearchIcon, "Browse builders & teams", DestBrowse},
			{icons.TeamIcon, "My teams", DestTeams},
			{icons.InboxIcon, "Inbox", DestInbox},
			{icons.ChatIcon, "Messages", DestMessages},
			{icons.EventIcon, "Hackathons", DestHackathons},
			{icons.Quit, "Log out", DestLogout},
		},
	}
}

// SetBadges updates the inbox and messages counts shown beside entries
func (m *Menu) SetBadges(invites, unread int) {
	m.inviteBadge = invites
	m.unreadBadge = unread
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter":
		dest := m.entries[m.cursor].dest
		return m, func() tea.Msg { return SelectedMsg{Dest: dest} }
	}

	return m, nil
}

// View implements tea.Model
func (m *Menu) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Where to?"))
	sb.WriteString("\n\n")

	for i, e := range m.entries {
		line := fmt.Sprintf("%s %s", e.icon.String(), e.label)

		switch e.dest {
		case DestInbox:
			if badge := widgets.CountBadge(m.inviteBadge); badge != "" {
				line += " " + badge
			}
		case DestMessages:
			if badge := widgets.CountBadge(m.unreadBadge); badge != "" {
				line += " " + badge
			}
		}

		if i == m.cursor {
			sb.WriteString(styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
