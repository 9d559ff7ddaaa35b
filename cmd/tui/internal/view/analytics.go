package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sanketkadam3921/financial-dashboard/cmd/tui/internal/api"
	"github.com/Sanketkadam3921/financial-dashboard/internal/analytics"
	"github.com/Sanketkadam3921/financial-dashboard/internal/transaction"
)

const barWidth = 30

var (
	revenueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	expenseStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	investmentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("105"))
	faintStyle      = lipgloss.NewStyle().Faint(true)
	headerStyle     = lipgloss.NewStyle().Bold(true)
)

type AnalyticsModel struct {
	client *api.Client

	summary  *analytics.Summary
	forecast []analytics.ForecastPoint

	loading bool
	err     error
}

func NewAnalyticsModel(client *api.Client) AnalyticsModel {
	return AnalyticsModel{client: client, loading: true}
}

func (m AnalyticsModel) Title() string     { return "Analytics" }
func (m AnalyticsModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m AnalyticsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m AnalyticsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadAnalyticsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.summary = msg.summary
		m.forecast = msg.forecast

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m AnalyticsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading analytics...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	s := m.summary

	totals := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Totals"),
		fmt.Sprintf("  Revenue     %s", revenueStyle.Render(FormatAmount(s.TotalRevenue))),
		fmt.Sprintf("  Expense     %s", expenseStyle.Render(FormatAmount(s.TotalExpense))),
		fmt.Sprintf("  Investment  %s", investmentStyle.Render(FormatAmount(s.TotalInvestment))),
		fmt.Sprintf("  Balance     %s", FormatAmount(s.Balance)),
	)

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			totals,
			"",
			m.viewMonthly(),
			"",
			m.viewBreakdown(),
			"",
			m.viewForecast(),
		),
	)
}

// viewMonthly renders one bar per month, scaled against the largest monthly
// value across all three series.
func (m AnalyticsModel) viewMonthly() string {
	var maxVal float64

	for _, b := range m.summary.MonthlyData {
		maxVal = max(maxVal, b.Revenue, b.Expense, b.Investment)
	}

	lines := []string{headerStyle.Render("Monthly")}

	for _, b := range m.summary.MonthlyData {
		lines = append(lines, fmt.Sprintf("  %s %s%s%s",
			faintStyle.Render(b.Month),
			revenueStyle.Render(bar(b.Revenue, maxVal)),
			expenseStyle.Render(bar(b.Expense, maxVal)),
			investmentStyle.Render(bar(b.Investment, maxVal)),
		))
	}

	return strings.Join(lines, "\n")
}

func bar(v, maxVal float64) string {
	if maxVal <= 0 || v <= 0 {
		return ""
	}

	n := int(v / maxVal * barWidth)
	if n < 1 {
		n = 1
	}

	return strings.Repeat("█", n)
}

func (m AnalyticsModel) viewBreakdown() string {
	lines := []string{headerStyle.Render("By Category")}

	// Fixed order so the view is stable across refreshes.
	for _, c := range []transaction.Category{
		transaction.CategoryRevenue,
		transaction.CategoryExpense,
		transaction.CategoryInvestment,
		transaction.CategoryOther,
	} {
		v, ok := m.summary.CategoryBreakdown[c]
		if !ok {
			continue
		}

		lines = append(lines, fmt.Sprintf("  %-11s %s", c, FormatAmount(v)))
	}

	if len(lines) == 1 {
		lines = append(lines, faintStyle.Render("  no transactions"))
	}

	return strings.Join(lines, "\n")
}

func (m AnalyticsModel) viewForecast() string {
	lines := []string{headerStyle.Render("Revenue Forecast")}

	for _, p := range m.forecast {
		lines = append(lines, fmt.Sprintf("  %-9s %s", p.Month, revenueStyle.Render(FormatAmount(p.Revenue))))
	}

	return strings.Join(lines, "\n")
}

type loadAnalyticsMsg struct {
	summary  *analytics.Summary
	forecast []analytics.ForecastPoint
	err      error
}

func (m AnalyticsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ReqCtx()
		defer cancel()

		summary, err := m.client.Summary(ctx)
		if err != nil {
			return loadAnalyticsMsg{err: err}
		}

		forecast, err := m.client.Forecast(ctx)
		if err != nil {
			return loadAnalyticsMsg{err: err}
		}

		return loadAnalyticsMsg{summary: summary, forecast: forecast}
	}
}
