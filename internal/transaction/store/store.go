package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Sanketkadam3921/financial-dashboard/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a transaction row from the scanner.
// Expected column order: id, date, amount, category, status, user_id, user_profile, description, created_at, updated_at
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var categoryStr, statusStr string

	var userProfile, description sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.Date, &tx.Amount, &categoryStr, &statusStr,
		&tx.UserID, &userProfile, &description,
		&tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.Category = transaction.Category(categoryStr)
	tx.Status = transaction.Status(statusStr)
	tx.UserProfile = userProfile.String
	tx.Description = description.String

	return &tx, nil
}

const selectTransactionColumns = `
	id, date, amount, category, status, user_id, user_profile, description, created_at, updated_at
`

// sortColumn maps the API sort field names onto table columns. The query layer
// has already validated the field against its whitelist.
func sortColumn(field string) string {
	if field == "createdAt" {
		return "created_at"
	}

	return field
}

// escapeLike escapes LIKE metacharacters so the search text is matched as a
// literal substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)

	return s
}

// buildFilter renders the WHERE clause for a list query. Search matches any of
// description, category or user_id as a case-insensitive substring; category
// and status are exact matches ANDed in.
func buildFilter(query transaction.ListQuery) (string, []any) {
	var clauses []string

	var args []any

	if query.Search != "" {
		pattern := "%" + escapeLike(query.Search) + "%"
		args = append(args, pattern)
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(description ILIKE $%d OR category ILIKE $%d OR user_id ILIKE $%d)", n, n, n))
	}

	if query.Category != "" {
		args = append(args, query.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}

	if query.Status != "" {
		args = append(args, query.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (s *Store) ListTransactions(ctx context.Context, query transaction.ListQuery) ([]*transaction.Transaction, error) {
	where, args := buildFilter(query)

	dir := "DESC"
	if query.SortOrder == transaction.SortOrderAsc {
		dir = "ASC"
	}

	// Secondary id ordering makes the sort total, so pages never overlap or
	// skip rows when the sort key has duplicates.
	sqlQuery := fmt.Sprintf(
		`SELECT %s FROM transactions%s ORDER BY %s %s, id ASC LIMIT $%d OFFSET $%d`,
		selectTransactionColumns, where, sortColumn(query.SortBy), dir, len(args)+1, len(args)+2,
	)

	args = append(args, query.Limit, query.Offset())

	rows, err := s.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (s *Store) CountTransactions(ctx context.Context, query transaction.ListQuery) (int, error) {
	where, args := buildFilter(query)

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions"+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting transactions: %w", err)
	}

	return count, nil
}

func (s *Store) ListAllTransactions(ctx context.Context) ([]*transaction.Transaction, error) {
	sqlQuery := `SELECT ` + selectTransactionColumns + ` FROM transactions ORDER BY date DESC, id ASC`

	rows, err := s.db.QueryContext(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("listing all transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows *sql.Rows) ([]*transaction.Transaction, error) {
	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) CreateTransactions(ctx context.Context, txs []*transaction.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO transactions (date, amount, category, status, user_id, user_profile, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	for _, tx := range txs {
		err := dbTx.QueryRowContext(ctx, query,
			tx.Date,
			tx.Amount,
			tx.Category,
			tx.Status,
			tx.UserID,
			tx.UserProfile,
			tx.Description,
		).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating transaction: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
