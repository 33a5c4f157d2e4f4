// ABOUTME: Inbox screen showing team invitations and sent join requests
// ABOUTME: Accept and reject actions are confirmed by the server before rows disappear

package inbox

import (
	"fmt"
	"strings"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/icons"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/styles"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/widgets"
	tea "github.com/charmbracelet/bubbletea"
)

// Tab selects which list is shown
type Tab int

const (
	TabInvites Tab = iota
	TabRequests
)

// AcceptMsg asks the app to accept an invitation
type AcceptMsg struct {
	InviteID int
}

// RejectMsg asks the app to reject an invitation
type RejectMsg struct {
	InviteID int
}

// RequestsViewedMsg is sent when the join-requests tab is opened, so the
// app can clear the requests badge and persist the viewed flag
type RequestsViewedMsg struct{}

// CancelledMsg is sent when the user backs out of the screen
type CancelledMsg struct{}

// Inbox is the invitations screen
type Inbox struct {
	tab      Tab
	invites  []client.Invite
	requests []client.JoinRequest
	cursor   int
	status   string
}

// New creates the inbox screen
func New(invites []client.Invite, requests []client.JoinRequest) *Inbox {
	return &Inbox{invites: invites, requests: requests}
}

// SetInvites replaces the invitation list
func (in *Inbox) SetInvites(invites []client.Invite) {
	in.invites = invites
	in.clamp()
}

// SetRequests replaces the join request list
func (in *Inbox) SetRequests(requests []client.JoinRequest) {
	in.requests = requests
	in.clamp()
}

// SetStatus shows a one-line action outcome
func (in *Inbox) SetStatus(msg string) {
	in.status = msg
}

func (in *Inbox) clamp() {
	n := in.count()
	if in.cursor >= n {
		in.cursor = n - 1
	}
	if in.cursor < 0 {
		in.cursor = 0
	}
}

func (in *Inbox) count() int {
	if in.tab == TabRequests {
		return len(in.requests)
	}
	return len(in.invites)
}

// Init implements tea.Model
func (in *Inbox) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (in *Inbox) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return in, nil
	}

	in.status = ""

	switch key.String() {
	case "esc", "b":
		return in, func() tea.Msg { return CancelledMsg{} }
	case "tab":
		if in.tab == TabInvites {
			in.tab = TabRequests
			in.cursor = 0
			return in, func() tea.Msg { return RequestsViewedMsg{} }
		}
		in.tab = TabInvites
		in.cursor = 0
	case "up", "k":
		if in.cursor > 0 {
			in.cursor--
		}
	case "down", "j":
		if in.cursor < in.count()-1 {
			in.cursor++
		}
	case "a", "enter":
		if in.tab == TabInvites && in.cursor < len(in.invites) {
			id := in.invites[in.cursor].ID
			return in, func() tea.Msg { return AcceptMsg{InviteID: id} }
		}
	case "x":
		if in.tab == TabInvites && in.cursor < len(in.invites) {
			id := in.invites[in.cursor].ID
			return in, func() tea.Msg { return RejectMsg{InviteID: id} }
		}
	}

	return in, nil
}

// View implements tea.Model
func (in *Inbox) View() string {
	var sb strings.Builder

	invitesTab := "Invitations"
	requestsTab := "My requests"
	if in.tab == TabInvites {
		invitesTab = styles.Selected.Render(invitesTab)
	} else {
		requestsTab = styles.Selected.Render(requestsTab)
	}

	sb.WriteString(styles.Title.Render(icons.InboxIcon.String() + " Inbox"))
	sb.WriteString("\n")
	sb.WriteString(invitesTab + "  " + requestsTab)
	sb.WriteString("\n\n")

	if in.tab == TabRequests {
		sb.WriteString(in.viewRequests())
	} else {
		sb.WriteString(in.viewInvites())
	}

	if in.status != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusOK.Render(in.status))
	}

	return sb.String()
}

func (in *Inbox) viewInvites() string {
	if len(in.invites) == 0 {
		return styles.Subtitle.Render("No invitations right now.")
	}

	var sb strings.Builder
	for i, inv := range in.invites {
		line := fmt.Sprintf("%s invited you to %s", inv.InviterName, styles.ValueStyle.Render(inv.TeamName))
		if inv.Role != "" {
			line += " as " + inv.Role
		}
		if inv.TimeAgo != "" {
			line += "  " + styles.Subtitle.Render(inv.TimeAgo)
		}
		if !inv.Viewed {
			line += " " + widgets.Badge("new", widgets.StatusInfo)
		}

		if i == in.cursor && in.tab == TabInvites {
			sb.WriteString(styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
		if inv.Message != "" {
			sb.WriteString("    " + styles.Subtitle.Render(inv.Message))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (in *Inbox) viewRequests() string {
	if len(in.requests) == 0 {
		return styles.Subtitle.Render("You haven't asked to join any teams.")
	}

	var sb strings.Builder
	for i, req := range in.requests {
		line := fmt.Sprintf("%s  %s", styles.ValueStyle.Render(req.TeamName), widgets.StatusBadge(req.Status))
		if req.TimeAgo != "" {
			line += "  " + styles.Subtitle.Render(req.TimeAgo)
		}

		if i == in.cursor && in.tab == TabRequests {
			sb.WriteString(styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
