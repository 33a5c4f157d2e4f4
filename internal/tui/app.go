// ABOUTME: Root bubbletea model for the BuildBuddy TUI
// ABOUTME: Routes input between screens and owns all API calls via tea commands

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
	"github.com/UtkarshAditya/BuildBuddy/internal/debuglog"
	"github.com/UtkarshAditya/BuildBuddy/internal/session"
	"github.com/UtkarshAditya/BuildBuddy/internal/syncer"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/board"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/browse"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/hackathons"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/home"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/icons"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/inbox"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/login"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/messages"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/styles"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/teams"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/widgets"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenHome
	ScreenBrowse
	ScreenTeams
	ScreenBoard
	ScreenInbox
	ScreenMessages
	ScreenHackathons
)

// Layout constants
const (
	minTerminalWidth = 80
)

// sessionInitMsg is sent once stored credentials have been validated
type sessionInitMsg struct {
	state session.State
}

// authResultMsg is sent when a sign-in or sign-up attempt finishes
type authResultMsg struct {
	user *client.User
	err  error
}

// SyncUpdatedMsg is delivered whenever the background syncer has fresh
// counts. Run wires the syncer callback to p.Send with this message.
type SyncUpdatedMsg struct{}

// myTeamsMsg carries the viewer's team list
type myTeamsMsg struct {
	teams []client.Team
	next  Screen
	err   error
}

// teamDetailMsg carries a loaded roster
type teamDetailMsg struct {
	detail *client.TeamDetail
	err    error
}

// usersFoundMsg carries people search results
type usersFoundMsg struct {
	users []client.User
	err   error
}

// teamsFoundMsg carries team search results
type teamsFoundMsg struct {
	teams []client.Team
	err   error
}

// tasksLoadedMsg carries the board contents for a team
type tasksLoadedMsg struct {
	tasks []client.Task
	err   error
}

// requestsLoadedMsg carries the viewer's join requests
type requestsLoadedMsg struct {
	requests []client.JoinRequest
	err      error
}

// hackathonsLoadedMsg carries events plus the viewer's registrations
type hackathonsLoadedMsg struct {
	events        []client.Hackathon
	registrations []client.Hackathon
	err           error
}

// hackathonEventsMsg carries refreshed search results for the events list
type hackathonEventsMsg struct {
	events []client.Hackathon
	err    error
}

// hackathonRegisteredMsg reports a finished registration attempt
type hackathonRegisteredMsg struct {
	id  int
	err error
}

// actionDoneMsg reports the outcome of a fire-and-forget action
type actionDoneMsg struct {
	status string
	err    error
	reload tea.Cmd
}

// threadOpenedMsg carries an opened conversation
type threadOpenedMsg struct {
	thread *syncer.Thread
	err    error
}

// threadUpdatedMsg asks the transcript to re-render from the thread
type threadUpdatedMsg struct{}

// sendResultMsg reports a finished message send
type sendResultMsg struct {
	content string
	err     error
}

// App is the root model for the TUI
type App struct {
	client  *client.Client
	session *session.Manager
	syncer  *syncer.Syncer

	screen   Screen
	width    int
	height   int
	err      error
	myTeams  []client.Team
	thread   *syncer.Thread
	lastSync time.Time

	// A join request got a response the user hasn't seen yet
	requestsAlert bool

	// Child models
	loginScreen   *login.Login
	homeScreen    *home.Menu
	browseScreen  *browse.Browse
	teamsScreen   *teams.Teams
	boardScreen   *board.Board
	inboxScreen   *inbox.Inbox
	msgScreen     *messages.Messages
	hackathonsScr *hackathons.Hackathons
}

// New creates the root TUI application
func New(apiClient *client.Client, sess *session.Manager, sync *syncer.Syncer) *App {
	return &App{
		client:      apiClient,
		session:     sess,
		syncer:      sync,
		screen:      ScreenLogin,
		loginScreen: login.New(),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.initSession(), a.loginScreen.Init())
}

func (a *App) initSession() tea.Cmd {
	return func() tea.Msg {
		_ = a.session.Init(context.Background())
		return sessionInitMsg{state: a.session.State()}
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.msgScreen != nil {
			a.msgScreen.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.boardScreen != nil {
			a.boardScreen.SetWidth(a.contentWidth())
		}
		if a.hackathonsScr != nil {
			a.hackathonsScr.SetWidth(a.contentWidth())
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.routeKey(msg)

	case sessionInitMsg:
		if msg.state == session.StateAuthenticated {
			return a.enterApp()
		}
		a.screen = ScreenLogin
		return a, nil

	case login.SignInMsg:
		return a, a.signIn(msg.Email, msg.Password)

	case login.SignUpMsg:
		return a, a.signUp(msg)

	case authResultMsg:
		if msg.err != nil {
			a.loginScreen.SetError(msg.err.Error())
			return a, a.loginScreen.Init()
		}
		return a.enterApp()

	case SyncUpdatedMsg:
		a.lastSync = time.Now()
		a.applyBadges()
		return a, nil

	case home.SelectedMsg:
		return a.handleHomeSelection(msg.Dest)

	case myTeamsMsg:
		return a.handleMyTeams(msg)

	case teamDetailMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		if a.teamsScreen != nil {
			a.teamsScreen.SetDetail(msg.detail)
		}
		return a, nil

	case browse.SearchUsersMsg:
		return a, a.searchUsers(msg.Query)

	case browse.SearchTeamsMsg:
		return a, a.searchTeams(msg.Query)

	case usersFoundMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		if a.browseScreen != nil {
			a.browseScreen.SetUsers(msg.users)
		}
		return a, nil

	case teamsFoundMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		if a.browseScreen != nil {
			a.browseScreen.SetTeams(msg.teams)
		}
		return a, nil

	case browse.InviteMsg:
		return a, a.invite(msg.TeamID, msg.UserID)

	case browse.ApplyMsg:
		return a, a.apply(msg.TeamID)

	case browse.MessageUserMsg:
		return a.openDirectChat(msg.User)

	case browse.CancelledMsg:
		return a.goHome()

	case teams.CreateTeamMsg:
		return a, a.createTeam(msg.Input)

	case teams.DeleteTeamMsg:
		return a, a.deleteTeam(msg.TeamID)

	case teams.ViewTeamMsg:
		return a, a.loadTeamDetail(msg.TeamID)

	case teams.OpenBoardMsg:
		return a.openBoard(msg.Team)

	case teams.OpenChatMsg:
		return a.openTeamChat(msg.Team)

	case teams.CancelledMsg:
		return a.goHome()

	case board.CreateTaskMsg:
		return a, a.createTask(msg.TeamID, msg.Input)

	case board.MoveTaskMsg:
		return a, a.moveTask(msg.TeamID, msg.TaskID, msg.Status)

	case board.DeleteTaskMsg:
		return a, a.deleteTask(msg.TeamID, msg.TaskID)

	case board.RefreshMsg:
		return a, a.loadTasks(msg.TeamID)

	case board.CancelledMsg:
		a.screen = ScreenTeams
		a.boardScreen = nil
		return a, nil

	case tasksLoadedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		if a.boardScreen != nil {
			a.boardScreen.SetTasks(msg.tasks)
		}
		return a, nil

	case inbox.AcceptMsg:
		return a, a.acceptInvite(msg.InviteID)

	case inbox.RejectMsg:
		return a, a.rejectInvite(msg.InviteID)

	case inbox.CancelledMsg:
		// Out-of-band refresh so the badge reflects what was handled
		cmd := a.refreshInvites()
		model, _ := a.goHome()
		return model, cmd

	case requestsLoadedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.requestsAlert = !a.session.HasViewedRequests() && anyResponded(msg.requests)
		if a.inboxScreen != nil {
			a.inboxScreen.SetRequests(msg.requests)
		}
		a.applyBadges()
		return a, nil

	case inbox.RequestsViewedMsg:
		a.requestsAlert = false
		a.applyBadges()
		return a, a.persistRequestsViewed()

	case hackathons.SearchMsg:
		return a, a.searchHackathons(msg.Query)

	case hackathons.RegisterMsg:
		return a, a.registerHackathon(msg.HackathonID)

	case hackathons.CancelledMsg:
		return a.goHome()

	case hackathonEventsMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		if a.hackathonsScr != nil {
			a.hackathonsScr.SetEvents(msg.events)
		}
		return a, nil

	case hackathonRegisteredMsg:
		if a.hackathonsScr != nil {
			if msg.err != nil {
				a.hackathonsScr.SetStatus(msg.err.Error())
			} else {
				a.hackathonsScr.MarkRegistered(msg.id)
				a.hackathonsScr.SetStatus("Registered")
			}
		}
		return a, nil

	case hackathonsLoadedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.hackathonsScr = hackathons.New(msg.events, msg.registrations)
		a.hackathonsScr.SetWidth(a.contentWidth())
		a.screen = ScreenHackathons
		return a, nil

	case messages.OpenTeamChatMsg:
		return a, a.openTeamThread(msg.Team)

	case messages.OpenDirectMsg:
		return a, a.openDirectThread(msg.Conversation)

	case messages.SendRequestedMsg:
		return a, a.sendMessage(msg.Content)

	case messages.CancelledMsg:
		// Refresh unread counts so read conversations clear the badge
		cmd := a.refreshMessages()
		model, _ := a.goHome()
		return model, cmd

	case threadOpenedMsg:
		return a.handleThreadOpened(msg)

	case threadUpdatedMsg:
		if a.msgScreen != nil && a.thread != nil {
			a.msgScreen.SetMessages(a.thread.Messages())
		}
		return a, nil

	case sendResultMsg:
		return a.handleSendResult(msg)

	case actionDoneMsg:
		return a.handleActionDone(msg)

	default:
		// huh form internals and blink ticks need to reach the
		// focused screen even when they aren't key messages
		return a.routeOther(msg)
	}
}

// routeKey forwards a key press to the active screen
func (a *App) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.err = nil

	switch a.screen {
	case ScreenLogin:
		return a.forward(msg)
	case ScreenHome:
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a.forward(msg)
	default:
		return a.forward(msg)
	}
}

// routeOther forwards non-key messages to the active screen
func (a *App) routeOther(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a.forward(msg)
}

func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.screen {
	case ScreenLogin:
		if a.loginScreen != nil {
			var model tea.Model
			model, cmd = a.loginScreen.Update(msg)
			a.loginScreen = model.(*login.Login)
		}
	case ScreenHome:
		if a.homeScreen != nil {
			var model tea.Model
			model, cmd = a.homeScreen.Update(msg)
			a.homeScreen = model.(*home.Menu)
		}
	case ScreenBrowse:
		if a.browseScreen != nil {
			var model tea.Model
			model, cmd = a.browseScreen.Update(msg)
			a.browseScreen = model.(*browse.Browse)
		}
	case ScreenTeams:
		if a.teamsScreen != nil {
			var model tea.Model
			model, cmd = a.teamsScreen.Update(msg)
			a.teamsScreen = model.(*teams.Teams)
		}
	case ScreenBoard:
		if a.boardScreen != nil {
			var model tea.Model
			model, cmd = a.boardScreen.Update(msg)
			a.boardScreen = model.(*board.Board)
		}
	case ScreenInbox:
		if a.inboxScreen != nil {
			var model tea.Model
			model, cmd = a.inboxScreen.Update(msg)
			a.inboxScreen = model.(*inbox.Inbox)
		}
	case ScreenMessages:
		if a.msgScreen != nil {
			var model tea.Model
			model, cmd = a.msgScreen.Update(msg)
			a.msgScreen = model.(*messages.Messages)
		}
	case ScreenHackathons:
		if a.hackathonsScr != nil {
			var model tea.Model
			model, cmd = a.hackathonsScr.Update(msg)
			a.hackathonsScr = model.(*hackathons.Hackathons)
		}
	}
	return a, cmd
}

// enterApp transitions to the home screen after authentication and
// starts the background syncer
func (a *App) enterApp() (tea.Model, tea.Cmd) {
	a.homeScreen = home.New()
	a.screen = ScreenHome
	a.syncer.Start(context.Background())
	a.applyBadges()
	return a, tea.Batch(a.loadMyTeams(ScreenHome), a.loadJoinRequests())
}

// goHome returns to the menu, dropping transient screens
func (a *App) goHome() (tea.Model, tea.Cmd) {
	a.screen = ScreenHome
	a.browseScreen = nil
	a.teamsScreen = nil
	a.boardScreen = nil
	a.inboxScreen = nil
	a.msgScreen = nil
	a.hackathonsScr = nil
	a.thread = nil
	a.applyBadges()
	return a, nil
}

func (a *App) applyBadges() {
	if a.homeScreen != nil {
		a.homeScreen.SetBadges(a.inboxBadge(), a.syncer.UnreadBadge())
	}
	if a.inboxScreen != nil {
		a.inboxScreen.SetInvites(a.syncer.PendingInvites())
	}
}

// inboxBadge is the invite count plus one for an unseen join-request
// response, matching the web client's inbox dot
func (a *App) inboxBadge() int {
	n := a.syncer.InviteBadge()
	if a.requestsAlert {
		n++
	}
	return n
}

// anyResponded reports whether some join request is no longer pending
func anyResponded(requests []client.JoinRequest) bool {
	for _, req := range requests {
		if req.Status != client.RequestStatusPending {
			return true
		}
	}
	return false
}

// persistRequestsViewed stores the viewed flag so the badge stays
// cleared across restarts
func (a *App) persistRequestsViewed() tea.Cmd {
	return func() tea.Msg {
		if err := a.session.SetViewedRequests(true); err != nil {
			debuglog.Error("persist viewed requests", err)
		}
		return nil
	}
}

func (a *App) handleHomeSelection(dest home.Destination) (tea.Model, tea.Cmd) {
	switch dest {
	case home.DestBrowse:
		return a, a.loadMyTeams(ScreenBrowse)

	case home.DestTeams:
		return a, a.loadMyTeams(ScreenTeams)

	case home.DestInbox:
		a.inboxScreen = inbox.New(a.syncer.PendingInvites(), nil)
		a.screen = ScreenInbox
		// Opening the inbox marks everything seen so the badge clears
		return a, tea.Batch(a.markInvitesViewed(), a.loadJoinRequests())

	case home.DestMessages:
		return a, a.loadMyTeams(ScreenMessages)

	case home.DestHackathons:
		return a, a.loadHackathons("")

	case home.DestLogout:
		a.syncer.Stop()
		a.session.Logout()
		a.loginScreen = login.New()
		a.screen = ScreenLogin
		return a, a.loginScreen.Init()
	}

	return a, nil
}

func (a *App) handleMyTeams(msg myTeamsMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.err = msg.err
		return a, nil
	}
	a.myTeams = msg.teams

	switch msg.next {
	case ScreenBrowse:
		a.browseScreen = browse.New(a.myTeams)
		a.screen = ScreenBrowse
		return a, a.browseScreen.Init()

	case ScreenTeams:
		meID := 0
		if u := a.session.User(); u != nil {
			meID = u.ID
		}
		a.teamsScreen = teams.New(a.myTeams, meID)
		a.screen = ScreenTeams
		return a, nil

	case ScreenMessages:
		meID := 0
		if u := a.session.User(); u != nil {
			meID = u.ID
		}
		a.msgScreen = messages.New(meID)
		a.msgScreen.SetSize(a.contentWidth(), a.contentHeight())
		a.msgScreen.SetChats(a.buildChats(meID))
		a.screen = ScreenMessages
		return a, a.msgScreen.Init()
	}

	// Refresh in place when already on a screen that holds teams
	if a.teamsScreen != nil {
		a.teamsScreen.SetTeams(a.myTeams)
	}
	return a, nil
}

// buildChats assembles the sidebar: team group chats first, then
// direct conversations from the syncer cache
func (a *App) buildChats(meID int) []messages.Chat {
	var chats []messages.Chat
	for i := range a.myTeams {
		team := a.myTeams[i]
		chats = append(chats, messages.Chat{
			Title: team.Name,
			Team:  &a.myTeams[i],
		})
	}
	for _, conv := range a.syncer.Conversations() {
		if conv.IsGroupChat {
			continue
		}
		c := conv
		chats = append(chats, messages.Chat{
			Title:  messages.DirectTitle(&c, meID),
			Conv:   &c,
			Unread: c.UnreadCount,
		})
	}
	return chats
}

// Commands

func (a *App) signIn(email, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := a.session.Login(context.Background(), email, password)
		return authResultMsg{user: user, err: err}
	}
}

func (a *App) signUp(msg login.SignUpMsg) tea.Cmd {
	return func() tea.Msg {
		user, err := a.session.Register(context.Background(), msg.Email, msg.Username, msg.Password, msg.FullName)
		return authResultMsg{user: user, err: err}
	}
}

func (a *App) loadMyTeams(next Screen) tea.Cmd {
	return func() tea.Msg {
		list, err := a.client.MyTeams(context.Background())
		return myTeamsMsg{teams: list, next: next, err: err}
	}
}

func (a *App) loadTeamDetail(teamID int) tea.Cmd {
	return func() tea.Msg {
		detail, err := a.client.GetTeam(context.Background(), teamID)
		return teamDetailMsg{detail: detail, err: err}
	}
}

func (a *App) searchUsers(query string) tea.Cmd {
	return func() tea.Msg {
		users, err := a.client.SearchUsers(context.Background(), query, "", "")
		return usersFoundMsg{users: users, err: err}
	}
}

func (a *App) searchTeams(query string) tea.Cmd {
	return func() tea.Msg {
		found, err := a.client.SearchTeams(context.Background(), query, "")
		return teamsFoundMsg{teams: found, err: err}
	}
}

func (a *App) invite(teamID, userID int) tea.Cmd {
	return func() tea.Msg {
		err := a.client.InviteToTeam(context.Background(), teamID, userID)
		return actionDoneMsg{status: "Invitation sent", err: err}
	}
}

func (a *App) apply(teamID int) tea.Cmd {
	return func() tea.Msg {
		err := a.client.ApplyToTeam(context.Background(), teamID)
		return actionDoneMsg{status: "Request sent", err: err}
	}
}

func (a *App) createTeam(input *client.TeamInput) tea.Cmd {
	return func() tea.Msg {
		_, err := a.client.CreateTeam(context.Background(), input)
		return actionDoneMsg{status: "Team created", err: err, reload: a.loadMyTeams(0)}
	}
}

func (a *App) deleteTeam(teamID int) tea.Cmd {
	return func() tea.Msg {
		err := a.client.DeleteTeam(context.Background(), teamID)
		return actionDoneMsg{status: "Team deleted", err: err, reload: a.loadMyTeams(0)}
	}
}

func (a *App) loadTasks(teamID int) tea.Cmd {
	return func() tea.Msg {
		tasks, err := a.client.Tasks(context.Background(), teamID)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (a *App) createTask(teamID int, input *client.TaskInput) tea.Cmd {
	return func() tea.Msg {
		_, err := a.client.CreateTask(context.Background(), teamID, input)
		return actionDoneMsg{status: "Task added", err: err, reload: a.loadTasks(teamID)}
	}
}

func (a *App) moveTask(teamID, taskID int, status string) tea.Cmd {
	return func() tea.Msg {
		_, err := a.client.UpdateTask(context.Background(), teamID, taskID, &client.TaskInput{Status: status})
		return actionDoneMsg{err: err, reload: a.loadTasks(teamID)}
	}
}

func (a *App) deleteTask(teamID, taskID int) tea.Cmd {
	return func() tea.Msg {
		err := a.client.DeleteTask(context.Background(), teamID, taskID)
		return actionDoneMsg{status: "Task deleted", err: err, reload: a.loadTasks(teamID)}
	}
}

func (a *App) markInvitesViewed() tea.Cmd {
	return func() tea.Msg {
		if err := a.syncer.MarkInvitesViewed(context.Background()); err != nil {
			return actionDoneMsg{err: err}
		}
		return SyncUpdatedMsg{}
	}
}

func (a *App) loadJoinRequests() tea.Cmd {
	return func() tea.Msg {
		requests, err := a.client.MyJoinRequests(context.Background())
		return requestsLoadedMsg{requests: requests, err: err}
	}
}

func (a *App) acceptInvite(inviteID int) tea.Cmd {
	return func() tea.Msg {
		err := a.syncer.AcceptInvite(context.Background(), inviteID)
		return actionDoneMsg{status: "Invitation accepted", err: err, reload: a.loadMyTeams(0)}
	}
}

func (a *App) rejectInvite(inviteID int) tea.Cmd {
	return func() tea.Msg {
		err := a.syncer.RejectInvite(context.Background(), inviteID)
		return actionDoneMsg{status: "Invitation declined", err: err}
	}
}

func (a *App) refreshInvites() tea.Cmd {
	return func() tea.Msg {
		_ = a.syncer.RefreshInvites(context.Background())
		return SyncUpdatedMsg{}
	}
}

func (a *App) refreshMessages() tea.Cmd {
	return func() tea.Msg {
		_ = a.syncer.RefreshUnread(context.Background())
		_ = a.syncer.RefreshConversations(context.Background())
		return SyncUpdatedMsg{}
	}
}

func (a *App) loadHackathons(query string) tea.Cmd {
	return func() tea.Msg {
		var events []client.Hackathon
		var err error
		if query != "" {
			events, err = a.client.SearchHackathons(context.Background(), query)
		} else {
			events, err = a.client.Hackathons(context.Background(), "", "", "")
		}
		if err != nil {
			return hackathonsLoadedMsg{err: err}
		}
		registrations, _ := a.client.MyRegistrations(context.Background())
		return hackathonsLoadedMsg{events: events, registrations: registrations}
	}
}

func (a *App) searchHackathons(query string) tea.Cmd {
	return func() tea.Msg {
		events, err := a.client.SearchHackathons(context.Background(), query)
		return hackathonEventsMsg{events: events, err: err}
	}
}

func (a *App) registerHackathon(id int) tea.Cmd {
	return func() tea.Msg {
		err := a.client.RegisterForHackathon(context.Background(), id)
		return hackathonRegisteredMsg{id: id, err: err}
	}
}

// openBoard switches to a team's task board
func (a *App) openBoard(team client.Team) (tea.Model, tea.Cmd) {
	a.boardScreen = board.New(team)
	a.boardScreen.SetWidth(a.contentWidth())
	a.screen = ScreenBoard
	return a, a.loadTasks(team.ID)
}

// openTeamChat jumps to the messages screen with the team thread open
func (a *App) openTeamChat(team client.Team) (tea.Model, tea.Cmd) {
	meID := 0
	if u := a.session.User(); u != nil {
		meID = u.ID
	}
	a.msgScreen = messages.New(meID)
	a.msgScreen.SetSize(a.contentWidth(), a.contentHeight())
	a.msgScreen.SetChats(a.buildChats(meID))
	a.screen = ScreenMessages
	return a, tea.Batch(a.msgScreen.Init(), a.openTeamThread(team))
}

// openDirectChat jumps to the messages screen with a direct thread open
func (a *App) openDirectChat(user client.User) (tea.Model, tea.Cmd) {
	me := a.session.User()
	meID := 0
	if me != nil {
		meID = me.ID
	}
	a.msgScreen = messages.New(meID)
	a.msgScreen.SetSize(a.contentWidth(), a.contentHeight())
	a.msgScreen.SetChats(a.buildChats(meID))
	a.screen = ScreenMessages

	cmd := func() tea.Msg {
		thread, err := a.syncer.OpenDirect(context.Background(), me, user.ID, user.DisplayName())
		return threadOpenedMsg{thread: thread, err: err}
	}
	return a, tea.Batch(a.msgScreen.Init(), cmd)
}

func (a *App) openTeamThread(team client.Team) tea.Cmd {
	return func() tea.Msg {
		thread, err := a.syncer.OpenTeam(context.Background(), team.ID, team.Name)
		return threadOpenedMsg{thread: thread, err: err}
	}
}

func (a *App) openDirectThread(conv client.Conversation) tea.Cmd {
	me := a.session.User()
	return func() tea.Msg {
		meID := 0
		if me != nil {
			meID = me.ID
		}
		memberID := 0
		for _, id := range conv.Participants {
			if id != meID {
				memberID = id
				break
			}
		}
		thread, err := a.syncer.OpenDirect(context.Background(), me, memberID, messages.DirectTitle(&conv, meID))
		return threadOpenedMsg{thread: thread, err: err}
	}
}

func (a *App) handleThreadOpened(msg threadOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.err = msg.err
		return a, nil
	}
	a.thread = msg.thread

	var cmds []tea.Cmd
	if a.msgScreen != nil {
		a.msgScreen.SetThread(msg.thread.Title, msg.thread.Messages())
	}
	if msg.thread.ConversationID != 0 {
		id := msg.thread.ConversationID
		cmds = append(cmds, func() tea.Msg {
			_ = a.client.MarkConversationRead(context.Background(), id)
			_ = a.syncer.RefreshUnread(context.Background())
			return SyncUpdatedMsg{}
		})
	}
	return a, tea.Batch(cmds...)
}

// sendMessage runs the optimistic send. A short tick re-renders the
// transcript while the request is in flight so the pending message
// is visible immediately.
func (a *App) sendMessage(content string) tea.Cmd {
	thread := a.thread
	sender := a.session.User()
	if thread == nil {
		return nil
	}

	send := func() tea.Msg {
		_, err := a.syncer.Send(context.Background(), thread, sender, content)
		return sendResultMsg{content: content, err: err}
	}
	peek := tea.Tick(50*time.Millisecond, func(time.Time) tea.Msg {
		return threadUpdatedMsg{}
	})
	return tea.Batch(send, peek)
}

func (a *App) handleSendResult(msg sendResultMsg) (tea.Model, tea.Cmd) {
	if a.msgScreen != nil && a.thread != nil {
		a.msgScreen.SetMessages(a.thread.Messages())
	}
	if msg.err != nil && a.msgScreen != nil {
		a.msgScreen.RestoreDraft(msg.content)
	}
	return a, nil
}

func (a *App) handleActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	status := msg.status
	if msg.err != nil {
		status = msg.err.Error()
	}

	switch a.screen {
	case ScreenBrowse:
		if a.browseScreen != nil {
			a.browseScreen.SetStatus(status)
		}
	case ScreenTeams:
		if a.teamsScreen != nil {
			a.teamsScreen.SetStatus(status)
		}
	case ScreenBoard:
		if a.boardScreen != nil && status != "" {
			a.boardScreen.SetStatus(status)
		}
	case ScreenInbox:
		if a.inboxScreen != nil {
			a.inboxScreen.SetStatus(status)
			a.inboxScreen.SetInvites(a.syncer.PendingInvites())
		}
	case ScreenHackathons:
		if a.hackathonsScr != nil {
			a.hackathonsScr.SetStatus(status)
		}
	case ScreenMessages:
		if a.msgScreen != nil && msg.err != nil {
			a.msgScreen.SetStatus(status)
		}
	}

	if msg.err == nil && msg.reload != nil {
		return a, msg.reload
	}
	return a, nil
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	if a.err != nil {
		content = styles.StatusError.Render("Error: "+a.err.Error()) + "\n\n"
	}

	switch a.screen {
	case ScreenLogin:
		content += a.viewChild(a.loginScreen)
	case ScreenHome:
		content += a.viewChild(a.homeScreen)
	case ScreenBrowse:
		content += a.viewChild(a.browseScreen)
	case ScreenTeams:
		content += a.viewChild(a.teamsScreen)
	case ScreenBoard:
		content += a.viewChild(a.boardScreen)
	case ScreenInbox:
		content += a.viewChild(a.inboxScreen)
	case ScreenMessages:
		content += a.viewChild(a.msgScreen)
	case ScreenHackathons:
		content += a.viewChild(a.hackathonsScr)
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewChild(m tea.Model) string {
	if m == nil {
		return ""
	}
	return m.View()
}

func (a *App) contentWidth() int {
	if a.width < minTerminalWidth {
		return minTerminalWidth - 4
	}
	return a.width - 4
}

func (a *App) contentHeight() int {
	// Header, footer, and surrounding newlines
	return a.height - 4
}

// renderHeader creates the header bar with app branding and badges
func (a *App) renderHeader() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("BuildBuddy"))

	rightText := ""
	if a.session.Authenticated() {
		parts := []string{}
		if badge := widgets.CountBadge(a.inboxBadge()); badge != "" {
			parts = append(parts, icons.InboxIcon.String()+badge)
		}
		if badge := widgets.CountBadge(a.syncer.UnreadBadge()); badge != "" {
			parts = append(parts, icons.ChatIcon.String()+badge)
		}
		if u := a.session.User(); u != nil {
			parts = append(parts, contextStyle.Render(u.DisplayName()))
		}
		rightText = strings.Join(parts, " ") + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"
	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var shortcuts []string
	switch a.screen {
	case ScreenLogin:
		shortcuts = []string{"Enter Submit", "ctrl+t Switch mode", "ctrl+c Quit"}
	case ScreenHome:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenBrowse:
		shortcuts = []string{"Tab People/Teams", "/ Search", "i Invite", "m Message", "a Apply", "Esc Back"}
	case ScreenTeams:
		shortcuts = []string{"n New", "Enter Roster", "t Board", "c Chat", "d Delete", "Esc Back"}
	case ScreenBoard:
		shortcuts = []string{"←→↑↓ Move", "n New", "H/L Shift task", "d Delete", "r Refresh", "Esc Back"}
	case ScreenInbox:
		shortcuts = []string{"Tab Invites/Requests", "a Accept", "x Decline", "Esc Back"}
	case ScreenMessages:
		shortcuts = []string{"Tab Focus", "Enter Open/Send", "PgUp/PgDn Scroll", "Esc Back"}
	case ScreenHackathons:
		shortcuts = []string{"/ Search", "r Register", "Esc Back"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	rightText := ""
	rightPlainText := ""
	if !a.lastSync.IsZero() && a.screen != ScreenLogin {
		elapsed := formatTimeSince(a.lastSync)
		rightText = statusStyle.Render("Synced "+elapsed) + " "
		rightPlainText = "Synced " + elapsed + " "
	}

	leftWidth := lipgloss.Width(leftPlainText)
	rightWidth := lipgloss.Width(rightPlainText)
	fillWidth := width - 4 - leftWidth - rightWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"
	return borderStyle.Render(footer)
}

// formatTimeSince formats a duration since the given time in human-readable form
func formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	}

	hours := int(d.Hours())
	if hours == 1 {
		return "1h ago"
	}
	return fmt.Sprintf("%dh ago", hours)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI and wires background sync updates into the
// program's message loop
func Run(apiClient *client.Client, sess *session.Manager, sync *syncer.Syncer) error {
	app := New(apiClient, sess, sync)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	sync.SetOnUpdate(func() {
		p.Send(SyncUpdatedMsg{})
	})

	_, err := p.Run()
	sync.Stop()
	return err
}
