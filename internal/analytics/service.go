package analytics

import (
	"context"
	"fmt"

	"github.com/Sanketkadam3921/financial-dashboard/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=analytics
type Repository interface {
	ListAllTransactions(ctx context.Context) ([]*transaction.Transaction, error)
}

// Service computes analytics over the complete transaction set. The summary
// endpoint deliberately ignores list-level filters: every request fetches and
// reduces the whole collection.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	txs, err := s.repo.ListAllTransactions(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("listing transactions for summary: %w", err)
	}

	return Summarize(txs), nil
}

func (s *Service) Forecast(ctx context.Context) ([]ForecastPoint, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}

	return ForecastRevenue(summary.MonthlyData), nil
}
