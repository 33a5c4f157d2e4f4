// ABOUTME: Sign-in and sign-up forms as a bubbletea model
// ABOUTME: Uses huh forms and emits submission messages to the root app

package login

import (
	"strings"

	"github.com/UtkarshAditya/BuildBuddy/internal/tui/icons"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Mode selects which form is shown
type Mode int

const (
	ModeSignIn Mode = iota
	ModeSignUp
)

// SignInMsg is sent when the sign-in form is submitted
type SignInMsg struct {
	Email    string
	Password string
}

// SignUpMsg is sent when the sign-up form is submitted
type SignUpMsg struct {
	Email    string
	Username string
	FullName string
	Password string
}

// Login is the authentication screen
type Login struct {
	mode Mode
	form *huh.Form
	err  string

	email    string
	username string
	fullName string
	password string
}

// createTheme returns a huh theme matching the app palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Group.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Danger)
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Danger)

	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Muted)

	return t
}

// New creates the login screen in sign-in mode
func New() *Login {
	l := &Login{mode: ModeSignIn}
	l.form = l.createForm()
	return l
}

func (l *Login) createForm() *huh.Form {
	if l.mode == ModeSignUp {
		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Placeholder("you@example.com").
					Value(&l.email),
				huh.NewInput().
					Title("Username").
					Placeholder("builder42").
					Value(&l.username),
				huh.NewInput().
					Title("Full name").
					Placeholder("Ada Lovelace").
					Value(&l.fullName),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&l.password),
			).Title("Create your account"),
		).WithTheme(createTheme())
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&l.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&l.password),
		).Title("Sign in"),
	).WithTheme(createTheme())
}

// Mode returns the current form mode
func (l *Login) Mode() Mode {
	return l.mode
}

// SetError shows a submission error and re-arms the form so the
// user can correct their input and try again
func (l *Login) SetError(msg string) {
	l.err = msg
	l.password = ""
	l.form = l.createForm()
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return l.form.Init()
}

// Update implements tea.Model
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+t":
			// Toggle between sign in and sign up
			if l.mode == ModeSignIn {
				l.mode = ModeSignUp
			} else {
				l.mode = ModeSignIn
			}
			l.err = ""
			l.password = ""
			l.form = l.createForm()
			return l, l.form.Init()
		}
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		return l, l.submit()
	}

	return l, cmd
}

func (l *Login) submit() tea.Cmd {
	email := strings.TrimSpace(l.email)
	if l.mode == ModeSignUp {
		msg := SignUpMsg{
			Email:    email,
			Username: strings.TrimSpace(l.username),
			FullName: strings.TrimSpace(l.fullName),
			Password: l.password,
		}
		return func() tea.Msg { return msg }
	}
	msg := SignInMsg{Email: email, Password: l.password}
	return func() tea.Msg { return msg }
}

// View implements tea.Model
func (l *Login) View() string {
	var sb strings.Builder

	title := icons.App.String() + " BuildBuddy"
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n")

	if l.mode == ModeSignIn {
		sb.WriteString(styles.Subtitle.Render("Sign in to find your hackathon team"))
	} else {
		sb.WriteString(styles.Subtitle.Render("Create an account to get started"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(l.form.View())

	if l.err != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusError.Render(icons.Critical.String() + " " + l.err))
	}

	sb.WriteString("\n")
	hint := "ctrl+t switch to sign up"
	if l.mode == ModeSignUp {
		hint = "ctrl+t switch to sign in"
	}
	sb.WriteString(styles.Help.Render(hint))

	return sb.String()
}
