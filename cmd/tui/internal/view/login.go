package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sanketkadam3921/financial-dashboard/cmd/tui/internal/api"
)

type loginMode int

const (
	modeLogin loginMode = iota
	modeSignup
)

// LoggedInMsg is emitted once the API client holds a valid token.
type LoggedInMsg struct {
	Name string
}

type LoginModel struct {
	client *api.Client

	mode    loginMode
	form    *huh.Form
	waiting bool
	err     error

	formName     string
	formEmail    string
	formPassword string
}

func NewLoginModel(client *api.Client) LoginModel {
	m := LoginModel{client: client, mode: modeLogin}
	m.form = m.buildForm()

	return m
}

func (m LoginModel) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@example.com").
			Value(&m.formEmail).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("email cannot be empty")
				}
				return nil
			}),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&m.formPassword),
	}

	if m.mode == modeSignup {
		fields = append([]huh.Field{
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName),
		}, fields...)
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithWidth(45).WithShowHelp(false)
}

func (m LoginModel) Title() string { return "Sign In" }

func (m LoginModel) ShortHelp() string {
	return "Tab: switch login/signup | Enter: submit | Esc: quit"
}

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.waiting = false
		if msg.err != nil {
			m.err = msg.err
			m.form = m.buildForm()

			return m, m.form.Init()
		}

		if msg.registered {
			// Account created; switch back to the login form.
			m.mode = modeLogin
			m.err = nil
			m.form = m.buildForm()

			return m, m.form.Init()
		}

		return m, func() tea.Msg { return LoggedInMsg{Name: msg.name} }

	case tea.KeyMsg:
		if m.waiting {
			return m, nil
		}

		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.mode == modeLogin {
				m.mode = modeSignup
			} else {
				m.mode = modeLogin
			}

			m.err = nil
			m.form = m.buildForm()

			return m, m.form.Init()
		}
	}

	if m.waiting {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.waiting = true
	m.err = nil

	return m, m.submitCmd()
}

func (m LoginModel) View() string {
	title := "Login"
	if m.mode == modeSignup {
		title = "Create Account"
	}

	parts := []string{
		lipgloss.NewStyle().Bold(true).Render(title),
		"",
	}

	if m.err != nil {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.err.Error()),
			"")
	}

	if m.waiting {
		parts = append(parts, "Contacting server...")
	} else {
		parts = append(parts, m.form.View())
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(parts, "\n"))
}

type authResultMsg struct {
	name       string
	registered bool
	err        error
}

func (m LoginModel) submitCmd() tea.Cmd {
	mode := m.mode
	name := m.form.GetString("name")
	email := m.form.GetString("email")
	password := m.form.GetString("password")

	return func() tea.Msg {
		ctx, cancel := ReqCtx()
		defer cancel()

		if mode == modeSignup {
			if _, err := m.client.Signup(ctx, name, email, password); err != nil {
				return authResultMsg{err: err}
			}

			return authResultMsg{registered: true}
		}

		u, err := m.client.Login(ctx, email, password)
		if err != nil {
			return authResultMsg{err: err}
		}

		return authResultMsg{name: u.Name}
	}
}
