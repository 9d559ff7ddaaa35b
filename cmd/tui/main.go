package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/Sanketkadam3921/financial-dashboard/cmd/tui/internal/api"
	"github.com/Sanketkadam3921/financial-dashboard/cmd/tui/internal/view"
)

const defaultServerURL = "http://localhost:5000"

type model struct {
	client *api.Client

	currentView View
	userName    string

	loginView        view.LoginModel
	transactionsView view.TransactionsModel
	analyticsView    view.AnalyticsModel
	exportView       view.ExportModel
}

type View int

const (
	ViewLogin        View = 0
	ViewMenu         View = 1
	ViewTransactions View = 2
	ViewAnalytics    View = 3
	ViewExport       View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	serverURL := os.Getenv("DASHBOARD_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}

	client := api.NewClient(serverURL)

	return model{
		client:      client,
		currentView: ViewLogin,
		loginView:   view.NewLoginModel(client),
	}
}

func (m model) Init() tea.Cmd {
	return m.loginView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case view.LoggedInMsg:
		m.currentView = ViewMenu
		m.userName = msg.Name

		return m, nil

	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.client)

				return m, m.transactionsView.Init()
			case "2":
				m.currentView = ViewAnalytics
				m.analyticsView = view.NewAnalyticsModel(m.client)

				return m, m.analyticsView.Init()
			case "3":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.client)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLogin:
		var newModel tea.Model
		newModel, cmd = m.loginView.Update(msg)
		m.loginView = newModel.(view.LoginModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewAnalytics:
		var newModel tea.Model
		newModel, cmd = m.analyticsView.Update(msg)
		m.analyticsView = newModel.(view.AnalyticsModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewLogin:
		return m.loginView.View()
	case ViewMenu:
		greeting := "Financial Dashboard"
		if m.userName != "" {
			greeting += ", " + m.userName
		}

		return lipgloss.NewStyle().Padding(2).Render(
			greeting + "\n\n" +
				"1. Transactions\n" +
				"2. Analytics\n" +
				"3. Export CSV\n\n" +
				"q. Quit",
		)
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewAnalytics:
		return m.analyticsView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
