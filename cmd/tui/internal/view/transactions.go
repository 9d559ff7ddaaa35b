package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sanketkadam3921/financial-dashboard/cmd/tui/internal/api"
	"github.com/Sanketkadam3921/financial-dashboard/internal/transaction"
)

type txState int

const (
	txStateBrowse txState = iota
	txStateSearch
)

var (
	categoryFilters = []transaction.Category{"", transaction.CategoryRevenue, transaction.CategoryExpense, transaction.CategoryInvestment, transaction.CategoryOther}
	statusFilters   = []transaction.Status{"", transaction.StatusPaid, transaction.StatusPending}
	sortFields      = []string{"date", "amount", "category", "status", "user_id"}
)

type TransactionsModel struct {
	client *api.Client

	state  txState
	table  table.Model
	search textinput.Model

	query transaction.ListQuery
	page  *transaction.Page

	categoryIdx int
	statusIdx   int
	sortIdx     int

	loading bool
	err     error
}

func NewTransactionsModel(client *api.Client) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Amount", Width: 10},
		{Title: "Category", Width: 12},
		{Title: "Status", Width: 9},
		{Title: "User", Width: 12},
		{Title: "Description", Width: 36},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	search := textinput.New()
	search.Placeholder = "search description, category or user"
	search.CharLimit = 64

	return TransactionsModel{
		client: client,
		table:  t,
		search: search,
		query: transaction.ListQuery{
			Page:      transaction.DefaultPage,
			Limit:     transaction.DefaultLimit,
			SortBy:    transaction.DefaultSortBy,
			SortOrder: transaction.DefaultSortOrder,
		},
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }

func (m TransactionsModel) ShortHelp() string {
	if m.state == txStateSearch {
		return "Enter: apply search | Esc: cancel"
	}

	return "Esc: back | ←/→: page | /: search | c: category | s: status | t: sort field | o: order | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadPageCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPageMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.page = msg.page
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case txStateBrowse:
		return m.updateBrowse(msg)
	case txStateSearch:
		return m.updateSearch(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			return m.reload()
		case "left", "h":
			if m.query.Page > 1 {
				m.query.Page--
				return m.reload()
			}

			return m, nil
		case "right", "l":
			if m.page != nil && m.query.Page < m.page.Pagination.TotalPages {
				m.query.Page++
				return m.reload()
			}

			return m, nil
		case "/":
			m.state = txStateSearch
			m.search.SetValue(m.query.Search)
			m.table.Blur()

			return m, m.search.Focus()
		case "c":
			m.categoryIdx = (m.categoryIdx + 1) % len(categoryFilters)
			m.query.Category = categoryFilters[m.categoryIdx]
			m.query.Page = 1

			return m.reload()
		case "s":
			m.statusIdx = (m.statusIdx + 1) % len(statusFilters)
			m.query.Status = statusFilters[m.statusIdx]
			m.query.Page = 1

			return m.reload()
		case "t":
			m.sortIdx = (m.sortIdx + 1) % len(sortFields)
			m.query.SortBy = sortFields[m.sortIdx]
			m.query.Page = 1

			return m.reload()
		case "o":
			if m.query.SortOrder == transaction.SortOrderAsc {
				m.query.SortOrder = transaction.SortOrderDesc
			} else {
				m.query.SortOrder = transaction.SortOrderAsc
			}

			m.query.Page = 1

			return m.reload()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TransactionsModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = txStateBrowse
			m.search.Blur()
			m.table.Focus()

			return m, nil
		case tea.KeyEnter:
			m.state = txStateBrowse
			m.query.Search = m.search.Value()
			m.query.Page = 1
			m.search.Blur()
			m.table.Focus()

			return m.reload()
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	return m, cmd
}

func (m TransactionsModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	return m, m.loadPageCmd()
}

func (m TransactionsModel) View() string {
	if m.loading && m.page == nil {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf(
		"[c] Category: %s | [s] Status: %s | [t] Sort: %s %s | [/] Search: %s",
		activeStyle(filterLabel(string(m.query.Category))),
		activeStyle(filterLabel(string(m.query.Status))),
		activeStyle(m.query.SortBy),
		m.query.SortOrder,
		activeStyle(filterLabel(m.query.Search)),
	)

	if m.state == txStateSearch {
		header = "Search: " + m.search.View()
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	footer := ""
	if m.page != nil {
		footer = fmt.Sprintf("Page %d/%d (%d transactions)",
			m.page.Pagination.CurrentPage,
			max(m.page.Pagination.TotalPages, 1),
			m.page.Pagination.TotalItems,
		)
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			tableView,
			lipgloss.NewStyle().Faint(true).Render(footer),
		),
	)
}

func filterLabel(s string) string {
	if s == "" {
		return "All"
	}

	return s
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *TransactionsModel) refreshTable() {
	if m.page == nil {
		return
	}

	rows := make([]table.Row, 0, len(m.page.Transactions))
	for _, tx := range m.page.Transactions {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			FormatAmount(tx.Amount),
			string(tx.Category),
			string(tx.Status),
			tx.UserID,
			tx.Description,
		})
	}

	m.table.SetRows(rows)
}

type loadPageMsg struct {
	page *transaction.Page
	err  error
}

func (m TransactionsModel) loadPageCmd() tea.Cmd {
	query := m.query

	return func() tea.Msg {
		ctx, cancel := ReqCtx()
		defer cancel()

		page, err := m.client.ListTransactions(ctx, query)

		return loadPageMsg{page: page, err: err}
	}
}
