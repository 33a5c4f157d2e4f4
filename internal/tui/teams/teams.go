// ABOUTME: My-teams screen with roster detail and team creation
// ABOUTME: List navigation plus a huh form for starting a new team

package teams

import (
	"fmt"
	"strings"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/icons"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type state int

const (
	stateList state = iota
	stateDetail
	stateCreate
)

// CreateTeamMsg asks the app to create a team
type CreateTeamMsg struct {
	Input *client.TeamInput
}

// DeleteTeamMsg asks the app to delete a team
type DeleteTeamMsg struct {
	TeamID int
}

// ViewTeamMsg asks the app to load a team's roster
type ViewTeamMsg struct {
	TeamID int
}

// OpenBoardMsg asks the app to open the task board for a team
type OpenBoardMsg struct {
	Team client.Team
}

// OpenChatMsg asks the app to open the team conversation
type OpenChatMsg struct {
	Team client.Team
}

// CancelledMsg is sent when the user backs out of the screen
type CancelledMsg struct{}

// Teams is the my-teams screen
type Teams struct {
	state  state
	teams  []client.Team
	detail *client.TeamDetail
	cursor int
	status string
	meID   int

	form *huh.Form

	// Create form fields
	name        string
	description string
	category    string
	skills      string
	positions   string
}

// New creates the teams screen
func New(myTeams []client.Team, meID int) *Teams {
	return &Teams{teams: myTeams, meID: meID}
}

// SetTeams replaces the team list
func (t *Teams) SetTeams(teams []client.Team) {
	t.teams = teams
	if t.cursor >= len(teams) {
		t.cursor = 0
	}
	t.state = stateList
}

// SetDetail shows a loaded roster
func (t *Teams) SetDetail(detail *client.TeamDetail) {
	t.detail = detail
	t.state = stateDetail
}

// SetStatus shows a one-line action outcome
func (t *Teams) SetStatus(msg string) {
	t.status = msg
}

func (t *Teams) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Team name").
				Value(&t.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Lines(3).
				Value(&t.description),
			huh.NewSelect[string]().
				Title("Category").
				Options(
					huh.NewOption("Web", "web"),
					huh.NewOption("Mobile", "mobile"),
					huh.NewOption("AI / ML", "ai-ml"),
					huh.NewOption("Blockchain", "blockchain"),
					huh.NewOption("Gaming", "gaming"),
					huh.NewOption("Other", "other"),
				).
				Value(&t.category),
			huh.NewInput().
				Title("Required skills (comma separated)").
				Placeholder("go, react, figma").
				Value(&t.skills),
			huh.NewInput().
				Title("Team size").
				Placeholder("4").
				Value(&t.positions).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					for _, r := range s {
						if r < '0' || r > '9' {
							return fmt.Errorf("enter a number")
						}
					}
					return nil
				}),
		).Title("Start a team"),
	)
}

// Init implements tea.Model
func (t *Teams) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (t *Teams) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t.state == stateCreate {
		return t.updateCreate(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	t.status = ""

	switch t.state {
	case stateList:
		return t.updateList(key)
	case stateDetail:
		return t.updateDetail(key)
	}

	return t, nil
}

func (t *Teams) updateList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "b":
		return t, func() tea.Msg { return CancelledMsg{} }
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(t.teams)-1 {
			t.cursor++
		}
	case "n":
		t.name = ""
		t.description = ""
		t.category = ""
		t.skills = ""
		t.positions = ""
		t.form = t.createForm()
		t.state = stateCreate
		return t, t.form.Init()
	case "enter":
		if t.cursor < len(t.teams) {
			id := t.teams[t.cursor].ID
			return t, func() tea.Msg { return ViewTeamMsg{TeamID: id} }
		}
	case "t":
		if t.cursor < len(t.teams) {
			team := t.teams[t.cursor]
			return t, func() tea.Msg { return OpenBoardMsg{Team: team} }
		}
	case "c":
		if t.cursor < len(t.teams) {
			team := t.teams[t.cursor]
			return t, func() tea.Msg { return OpenChatMsg{Team: team} }
		}
	case "d":
		if t.cursor < len(t.teams) {
			id := t.teams[t.cursor].ID
			return t, func() tea.Msg { return DeleteTeamMsg{TeamID: id} }
		}
	}

	return t, nil
}

func (t *Teams) updateDetail(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "b":
		t.detail = nil
		t.state = stateList
	case "t":
		if t.detail != nil {
			team := t.detail.Team
			return t, func() tea.Msg { return OpenBoardMsg{Team: team} }
		}
	case "c":
		if t.detail != nil {
			team := t.detail.Team
			return t, func() tea.Msg { return OpenChatMsg{Team: team} }
		}
	}

	return t, nil
}

func (t *Teams) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		t.state = stateList
		return t, nil
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.state = stateList
		input := t.buildInput()
		return t, func() tea.Msg { return CreateTeamMsg{Input: input} }
	}

	return t, cmd
}

func (t *Teams) buildInput() *client.TeamInput {
	var skills []string
	for _, s := range strings.Split(t.skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	size := 0
	fmt.Sscanf(strings.TrimSpace(t.positions), "%d", &size)

	return &client.TeamInput{
		Name:           strings.TrimSpace(t.name),
		Description:    strings.TrimSpace(t.description),
		Category:       t.category,
		RequiredSkills: skills,
		TeamSize:       size,
	}
}

// View implements tea.Model
func (t *Teams) View() string {
	switch t.state {
	case stateCreate:
		return t.form.View()
	case stateDetail:
		return t.viewDetail()
	default:
		return t.viewList()
	}
}

func (t *Teams) viewList() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.TeamIcon.String() + " My Teams"))
	sb.WriteString("\n\n")

	if len(t.teams) == 0 {
		sb.WriteString(styles.Subtitle.Render("You're not on a team yet. Press n to start one."))
	}

	for i, team := range t.teams {
		line := fmt.Sprintf("%s  %s", team.Name, styles.Subtitle.Render(team.HackathonName))
		line += fmt.Sprintf("  %d members", team.MemberCount)

		if i == t.cursor {
			sb.WriteString(styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	if t.status != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusOK.Render(t.status))
	}

	return sb.String()
}

func (t *Teams) viewDetail() string {
	if t.detail == nil {
		return styles.Subtitle.Render("Loading team...")
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(icons.TeamIcon.String() + " " + t.detail.Name))
	sb.WriteString("\n")
	if t.detail.Description != "" {
		sb.WriteString(styles.Subtitle.Render(t.detail.Description))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	leadMark := lipgloss.NewStyle().Foreground(styles.Warning).Render("★")
	for _, m := range t.detail.Members {
		name := m.FullName
		if name == "" {
			name = m.Username
		}
		line := fmt.Sprintf("%s %s", icons.UserIcon.String(), name)
		if m.Role != "" {
			line += "  " + styles.Subtitle.Render(m.Role)
		}
		if m.ID == t.detail.LeadID {
			line += " " + leadMark
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if len(t.detail.RequiredSkills) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.KeyStyle.Render("Looking for: "))
		sb.WriteString(strings.Join(t.detail.RequiredSkills, ", "))
		sb.WriteString("\n")
	}

	return sb.String()
}
