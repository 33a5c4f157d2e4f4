// ABOUTME: Discovery screen for finding builders and open teams
// ABOUTME: Search input plus result list with invite, apply, and message actions

package browse

import (
	"fmt"
	"strings"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/icons"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/styles"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/widgets"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Tab selects which results are shown
type Tab int

const (
	TabPeople Tab = iota
	TabTeams
)

type state int

const (
	stateInput state = iota
	stateResults
	stateTeamPick
)

// SearchUsersMsg asks the app to run a people search
type SearchUsersMsg struct {
	Query string
}

// SearchTeamsMsg asks the app to run a team search
type SearchTeamsMsg struct {
	Query string
}

// InviteMsg asks the app to invite a user to one of the viewer's teams
type InviteMsg struct {
	UserID int
	TeamID int
}

// ApplyMsg asks the app to send a join request to a team
type ApplyMsg struct {
	TeamID int
}

// MessageUserMsg asks the app to open a direct chat with a user
type MessageUserMsg struct {
	User client.User
}

// CancelledMsg is sent when the user backs out of the screen
type CancelledMsg struct{}

// Browse is the discovery screen
type Browse struct {
	tab    Tab
	state  state
	input  textinput.Model
	cursor int
	status string

	users   []client.User
	teams   []client.Team
	myTeams []client.Team

	// Invite target while picking a team
	inviteUser *client.User
	teamCursor int
}

// New creates the browse screen
func New(myTeams []client.Team) *Browse {
	ti := textinput.New()
	ti.Placeholder = "search by name or skill"
	ti.CharLimit = 128
	ti.Width = 48
	ti.Focus()

	return &Browse{
		state:   stateInput,
		input:   ti,
		myTeams: myTeams,
	}
}

// SetUsers replaces the people results
func (b *Browse) SetUsers(users []client.User) {
	b.users = users
	b.state = stateResults
	b.cursor = 0
}

// SetTeams replaces the team results
func (b *Browse) SetTeams(teams []client.Team) {
	b.teams = teams
	b.state = stateResults
	b.cursor = 0
}

// SetStatus shows a one-line action outcome
func (b *Browse) SetStatus(msg string) {
	b.status = msg
}

// Init implements tea.Model
func (b *Browse) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (b *Browse) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		return b, cmd
	}

	b.status = ""

	switch b.state {
	case stateInput:
		return b.updateInput(key)
	case stateResults:
		return b.updateResults(key)
	case stateTeamPick:
		return b.updateTeamPick(key)
	}

	return b, nil
}

func (b *Browse) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		return b, func() tea.Msg { return CancelledMsg{} }
	case "tab":
		b.toggleTab()
		return b, nil
	case "enter":
		query := strings.TrimSpace(b.input.Value())
		b.input.Blur()
		if b.tab == TabTeams {
			return b, func() tea.Msg { return SearchTeamsMsg{Query: query} }
		}
		return b, func() tea.Msg { return SearchUsersMsg{Query: query} }
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(key)
	return b, cmd
}

func (b *Browse) updateResults(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "b":
		return b, func() tea.Msg { return CancelledMsg{} }
	case "/":
		b.state = stateInput
		b.input.Focus()
		return b, textinput.Blink
	case "tab":
		b.toggleTab()
		b.state = stateInput
		b.input.Focus()
		return b, textinput.Blink
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < b.resultCount()-1 {
			b.cursor++
		}
	case "i":
		if b.tab == TabPeople && b.cursor < len(b.users) {
			if len(b.myTeams) == 0 {
				b.status = "Create a team before inviting people"
				return b, nil
			}
			user := b.users[b.cursor]
			b.inviteUser = &user
			b.teamCursor = 0
			b.state = stateTeamPick
		}
	case "m":
		if b.tab == TabPeople && b.cursor < len(b.users) {
			user := b.users[b.cursor]
			return b, func() tea.Msg { return MessageUserMsg{User: user} }
		}
	case "a":
		if b.tab == TabTeams && b.cursor < len(b.teams) {
			teamID := b.teams[b.cursor].ID
			return b, func() tea.Msg { return ApplyMsg{TeamID: teamID} }
		}
	}

	return b, nil
}

func (b *Browse) updateTeamPick(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		b.inviteUser = nil
		b.state = stateResults
	case "up", "k":
		if b.teamCursor > 0 {
			b.teamCursor--
		}
	case "down", "j":
		if b.teamCursor < len(b.myTeams)-1 {
			b.teamCursor++
		}
	case "enter":
		if b.inviteUser != nil {
			userID := b.inviteUser.ID
			teamID := b.myTeams[b.teamCursor].ID
			b.inviteUser = nil
			b.state = stateResults
			return b, func() tea.Msg { return InviteMsg{UserID: userID, TeamID: teamID} }
		}
	}

	return b, nil
}

func (b *Browse) toggleTab() {
	if b.tab == TabPeople {
		b.tab = TabTeams
	} else {
		b.tab = TabPeople
	}
	b.cursor = 0
}

func (b *Browse) resultCount() int {
	if b.tab == TabTeams {
		return len(b.teams)
	}
	return len(b.users)
}

// View implements tea.Model
func (b *Browse) View() string {
	var sb strings.Builder

	peopleTab := "People"
	teamsTab := "Teams"
	if b.tab == TabPeople {
		peopleTab = styles.Selected.Render(peopleTab)
	} else {
		teamsTab = styles.Selected.Render(teamsTab)
	}
	sb.WriteString(styles.Title.Render(icons.SearchIcon.String() + " Browse"))
	sb.WriteString("\n")
	sb.WriteString(peopleTab + "  " + teamsTab)
	sb.WriteString("\n\n")

	sb.WriteString(b.input.View())
	sb.WriteString("\n\n")

	switch b.state {
	case stateTeamPick:
		sb.WriteString(b.viewTeamPick())
	default:
		if b.tab == TabTeams {
			sb.WriteString(b.viewTeams())
		} else {
			sb.WriteString(b.viewUsers())
		}
	}

	if b.status != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusOK.Render(b.status))
	}

	return sb.String()
}

func (b *Browse) viewUsers() string {
	if len(b.users) == 0 {
		return styles.Subtitle.Render("No builders found. Press / to search.")
	}

	var sb strings.Builder
	for i, u := range b.users {
		line := fmt.Sprintf("%s %s", icons.UserIcon.String(), u.DisplayName())
		if len(u.Skills) > 0 {
			line += "  " + styles.Subtitle.Render(strings.Join(u.Skills, ", "))
		}
		if u.Availability != "" {
			line += " " + widgets.Badge(u.Availability, availabilityLevel(u.Availability))
		}

		if i == b.cursor && b.state == stateResults {
			sb.WriteString(styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Browse) viewTeams() string {
	if len(b.teams) == 0 {
		return styles.Subtitle.Render("No open teams found. Press / to search.")
	}

	var sb strings.Builder
	for i, t := range b.teams {
		line := fmt.Sprintf("%s %s", icons.TeamIcon.String(), t.Name)
		if t.HackathonName != "" {
			line += "  " + styles.Subtitle.Render(t.HackathonName)
		}
		line += fmt.Sprintf("  %d open", t.OpenPositions)

		if i == b.cursor && b.state == stateResults {
			sb.WriteString(styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Browse) viewTeamPick() string {
	var sb strings.Builder
	name := ""
	if b.inviteUser != nil {
		name = b.inviteUser.DisplayName()
	}
	sb.WriteString(styles.Subtitle.Render("Invite " + name + " to which team?"))
	sb.WriteString("\n")
	for i, t := range b.myTeams {
		if i == b.teamCursor {
			sb.WriteString(styles.Selected.Render("> " + t.Name))
		} else {
			sb.WriteString("  " + t.Name)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func availabilityLevel(availability string) widgets.StatusLevel {
	switch availability {
	case "available":
		return widgets.StatusOK
	case "looking":
		return widgets.StatusInfo
	case "busy":
		return widgets.StatusWarning
	default:
		return widgets.StatusNeutral
	}
}
