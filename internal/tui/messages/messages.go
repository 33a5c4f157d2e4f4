// ABOUTME: Messaging screen with a chat sidebar, transcript, and compose box
// ABOUTME: Failed sends restore the draft so nothing the user typed is lost

package messages

import (
	"fmt"
	"strings"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/icons"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/styles"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/widgets"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Chat is one sidebar row: either a team group chat or a direct thread
type Chat struct {
	Title    string
	Team     *client.Team
	Conv     *client.Conversation
	MemberID int
	Unread   int
}

// OpenTeamChatMsg asks the app to open a team's group conversation
type OpenTeamChatMsg struct {
	Team client.Team
}

// OpenDirectMsg asks the app to open a direct conversation
type OpenDirectMsg struct {
	Conversation client.Conversation
}

// SendRequestedMsg asks the app to send the composed message
type SendRequestedMsg struct {
	Content string
}

// CancelledMsg is sent when the user backs out of the screen
type CancelledMsg struct{}

type focus int

const (
	focusSidebar focus = iota
	focusCompose
)

// Messages is the chat screen
type Messages struct {
	chats  []Chat
	cursor int
	focus  focus

	meID     int
	title    string
	msgs     []client.Message
	viewport viewport.Model
	compose  textinput.Model
	status   string
	width    int
	height   int
	open     bool
}

// New creates the messaging screen for the signed-in user
func New(meID int) *Messages {
	ti := textinput.New()
	ti.Placeholder = "type a message"
	ti.CharLimit = 500
	ti.Width = 60

	vp := viewport.New(60, 16)

	return &Messages{
		meID:     meID,
		compose:  ti,
		viewport: vp,
	}
}

// SetChats replaces the sidebar entries
func (m *Messages) SetChats(chats []Chat) {
	m.chats = chats
	if m.cursor >= len(chats) {
		m.cursor = 0
	}
}

// SetThread shows an opened conversation transcript
func (m *Messages) SetThread(title string, msgs []client.Message) {
	m.title = title
	m.msgs = msgs
	m.open = true
	m.focus = focusCompose
	m.compose.Focus()
	m.renderTranscript()
}

// SetMessages refreshes the transcript in place
func (m *Messages) SetMessages(msgs []client.Message) {
	m.msgs = msgs
	m.renderTranscript()
}

// RestoreDraft puts failed-send content back into the compose box
func (m *Messages) RestoreDraft(content string) {
	m.compose.SetValue(content)
	m.status = "Send failed. Your message was not delivered."
}

// SetStatus shows a one-line action outcome
func (m *Messages) SetStatus(msg string) {
	m.status = msg
}

// SetSize updates the layout dimensions
func (m *Messages) SetSize(width, height int) {
	m.width = width
	m.height = height

	tw := m.transcriptWidth()
	m.viewport.Width = tw
	vh := height - 8
	if vh < 5 {
		vh = 5
	}
	m.viewport.Height = vh
	m.compose.Width = tw - 4
	m.renderTranscript()
}

func (m *Messages) sidebarWidth() int {
	if m.width < 80 {
		return 28
	}
	return m.width / 3
}

func (m *Messages) transcriptWidth() int {
	w := m.width - m.sidebarWidth() - 8
	if w < 40 {
		w = 40
	}
	return w
}

// Init implements tea.Model
func (m *Messages) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Messages) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.compose, cmd = m.compose.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "esc":
		if m.focus == focusCompose && m.open {
			m.focus = focusSidebar
			m.compose.Blur()
			return m, nil
		}
		return m, func() tea.Msg { return CancelledMsg{} }
	case "tab":
		if m.open {
			if m.focus == focusSidebar {
				m.focus = focusCompose
				m.compose.Focus()
				return m, textinput.Blink
			}
			m.focus = focusSidebar
			m.compose.Blur()
		}
		return m, nil
	}

	if m.focus == focusSidebar {
		return m.updateSidebar(key)
	}
	return m.updateCompose(key)
}

func (m *Messages) updateSidebar(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "b":
		return m, func() tea.Msg { return CancelledMsg{} }
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.chats)-1 {
			m.cursor++
		}
	case "pgup":
		m.viewport.LineUp(5)
	case "pgdown":
		m.viewport.LineDown(5)
	case "enter":
		if m.cursor < len(m.chats) {
			chat := m.chats[m.cursor]
			if chat.Team != nil {
				team := *chat.Team
				return m, func() tea.Msg { return OpenTeamChatMsg{Team: team} }
			}
			if chat.Conv != nil {
				conv := *chat.Conv
				return m, func() tea.Msg { return OpenDirectMsg{Conversation: conv} }
			}
		}
	}
	return m, nil
}

func (m *Messages) updateCompose(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "enter" {
		content := strings.TrimSpace(m.compose.Value())
		if content == "" {
			return m, nil
		}
		m.compose.SetValue("")
		m.status = ""
		return m, func() tea.Msg { return SendRequestedMsg{Content: content} }
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(key)
	return m, cmd
}

func (m *Messages) renderTranscript() {
	width := m.transcriptWidth()
	var sb strings.Builder

	for _, msg := range m.msgs {
		mine := msg.SenderID == m.meID
		bubble := msg.Content
		meta := msg.SenderName
		if meta == "" && mine {
			meta = "you"
		}

		var rendered string
		if mine {
			rendered = styles.OwnMessage.MaxWidth(width - 4).Render(bubble)
			rendered = lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Render(rendered)
		} else {
			rendered = styles.TheirMessage.MaxWidth(width - 4).Render(bubble)
			rendered = styles.Subtitle.Render(meta) + "\n" + rendered
		}

		sb.WriteString(rendered)
		sb.WriteString("\n\n")
	}

	m.viewport.SetContent(sb.String())
	m.viewport.GotoBottom()
}

// View implements tea.Model
func (m *Messages) View() string {
	sidebar := m.viewSidebar()

	var right strings.Builder
	if m.open {
		right.WriteString(styles.KeyStyle.Render(m.title))
		right.WriteString("\n\n")
		right.WriteString(m.viewport.View())
		right.WriteString("\n")
		right.WriteString(icons.Send.String() + " " + m.compose.View())
	} else {
		right.WriteString(styles.Subtitle.Render("Pick a chat from the sidebar."))
	}

	if m.status != "" {
		right.WriteString("\n")
		right.WriteString(styles.StatusError.Render(m.status))
	}

	sidebarStyle := styles.Panel
	rightStyle := styles.ActivePanel
	if m.focus == focusSidebar {
		sidebarStyle = styles.ActivePanel
		rightStyle = styles.Panel
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		sidebarStyle.Width(m.sidebarWidth()).Render(sidebar),
		rightStyle.Width(m.transcriptWidth()+4).Render(right.String()),
	)
}

func (m *Messages) viewSidebar() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(icons.ChatIcon.String() + " Chats"))
	sb.WriteString("\n")

	if len(m.chats) == 0 {
		sb.WriteString(styles.Subtitle.Render("No conversations yet."))
		return sb.String()
	}

	lastWasTeam := false
	for i, chat := range m.chats {
		isTeam := chat.Team != nil
		if i == 0 || isTeam != lastWasTeam {
			header := "Direct"
			if isTeam {
				header = "Team chats"
			}
			sb.WriteString(styles.Subtitle.Render(header))
			sb.WriteString("\n")
		}
		lastWasTeam = isTeam

		line := chat.Title
		if badge := widgets.CountBadge(chat.Unread); badge != "" {
			line += " " + badge
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

// DirectTitle builds a sidebar title for a direct conversation by
// naming the other participant
func DirectTitle(conv *client.Conversation, meID int) string {
	for i, id := range conv.Participants {
		if id != meID && i < len(conv.ParticipantNames) {
			return conv.ParticipantNames[i]
		}
	}
	if len(conv.ParticipantNames) > 0 {
		return conv.ParticipantNames[0]
	}
	return fmt.Sprintf("conversation %d", conv.ID)
}
