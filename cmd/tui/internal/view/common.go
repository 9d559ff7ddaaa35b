package view

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const requestTimeout = 10 * time.Second

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// FormatAmount renders a monetary amount with two decimal places.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ReqCtx returns a context with the standard timeout for API calls.
func ReqCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
