package transaction

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	ListTransactions(ctx context.Context, query ListQuery) ([]*Transaction, error)
	CountTransactions(ctx context.Context, query ListQuery) (int, error)

	// ListAllTransactions returns the complete collection in natural order,
	// for analytics and export paths that reduce over the full set.
	ListAllTransactions(ctx context.Context) ([]*Transaction, error)

	CreateTransactions(ctx context.Context, txs []*Transaction) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List fetches one page of transactions together with a count over the same
// filter predicate, so the envelope reflects the whole matching set and not
// just the returned page.
func (s *Service) List(ctx context.Context, query ListQuery) (*Page, error) {
	txs, err := s.repo.ListTransactions(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	total, err := s.repo.CountTransactions(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting transactions: %w", err)
	}

	if txs == nil {
		txs = []*Transaction{}
	}

	totalPages := total / query.Limit
	if total%query.Limit != 0 {
		totalPages++
	}

	return &Page{
		Transactions: txs,
		Pagination: Pagination{
			CurrentPage:  query.Page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: query.Limit,
		},
	}, nil
}

// ListAll returns the full transaction set, unfiltered.
func (s *Service) ListAll(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListAllTransactions(ctx)
}

// CreateBatch validates and stores a batch of transactions. Writes reach the
// collection only through this path; the HTTP surface is read-only.
func (s *Service) CreateBatch(ctx context.Context, txs []*Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	for i, tx := range txs {
		if tx.Amount < 0 {
			return fmt.Errorf("transaction %d: amount cannot be negative", i)
		}

		if !tx.Category.Valid() {
			return fmt.Errorf("transaction %d: unknown category %q", i, tx.Category)
		}

		if !tx.Status.Valid() {
			return fmt.Errorf("transaction %d: unknown status %q", i, tx.Status)
		}
	}

	if err := s.repo.CreateTransactions(ctx, txs); err != nil {
		return fmt.Errorf("creating transactions: %w", err)
	}

	return nil
}
