package view

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sanketkadam3921/financial-dashboard/cmd/tui/internal/api"
	"github.com/Sanketkadam3921/financial-dashboard/internal/export"
)

type exportState int

const (
	exportStateColumns exportState = iota
	exportStateExporting
	exportStateResult
)

type ExportModel struct {
	client *api.Client

	state   exportState
	form    *huh.Form
	spinner spinner.Model

	columns []string
	dir     string
	savedTo string
	err     error
}

func NewExportModel(client *api.Client) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := ExportModel{
		client:  client,
		state:   exportStateColumns,
		spinner: s,
		columns: []string{"date", "amount", "category", "status"},
		dir:     ".",
	}
	m.form = m.buildForm()

	return m
}

func (m ExportModel) buildForm() *huh.Form {
	options := make([]huh.Option[string], 0, len(export.Columns))
	for _, c := range export.Columns {
		options = append(options, huh.NewOption(c, c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Key("columns").
				Title("Columns").
				Options(options...).
				Value(&m.columns).
				Validate(func(selected []string) error {
					if len(selected) == 0 {
						return fmt.Errorf("select at least one column")
					}
					return nil
				}),

			huh.NewInput().
				Key("dir").
				Title("Output Directory").
				Placeholder(".").
				Value(&m.dir),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) Title() string { return "Export CSV" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateExporting:
		return "Exporting..."
	case exportStateResult:
		return "Esc: back to menu"
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case exportStateColumns:
		return m.updateColumns(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ExportModel) updateColumns(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = exportStateExporting
	m.err = nil

	columns := m.form.Get("columns").([]string)
	dir := m.form.GetString("dir")

	return m, tea.Batch(m.spinner.Tick, m.runExportCmd(columns, dir))
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportDoneMsg); ok {
		m.state = exportStateResult
		m.err = result.err
		m.savedTo = result.path

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m ExportModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStateColumns:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Downloading CSV export...", m.spinner.View()),
		)

	case exportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ExportModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Export Complete!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			"Saved to: "+m.savedTo,
		),
	)
}

type exportDoneMsg struct {
	path string
	err  error
}

func (m ExportModel) runExportCmd(columns []string, dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ReqCtx()
		defer cancel()

		data, err := m.client.Export(ctx, columns)
		if err != nil {
			return exportDoneMsg{err: err}
		}

		if dir == "" {
			dir = "."
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportDoneMsg{err: err}
		}

		path := filepath.Join(dir, fmt.Sprintf("transactions_%s.csv", time.Now().Format("2006-01-02")))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return exportDoneMsg{err: err}
		}

		return exportDoneMsg{path: path}
	}
}
