// Package importer parses transaction fixture CSVs for the seed loader.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/Sanketkadam3921/financial-dashboard/internal/encoding"
	"github.com/Sanketkadam3921/financial-dashboard/internal/transaction"
)

// Fixture column names, matched case-insensitively against the header row.
const (
	colDate        = "date"
	colAmount      = "amount"
	colCategory    = "category"
	colStatus      = "status"
	colUserID      = "user_id"
	colUserProfile = "user_profile"
	colDescription = "description"
)

var requiredCols = []string{colDate, colAmount, colCategory, colStatus, colUserID}

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"02-01-2006",
	"01/02/2006",
}

// Parser reads transaction fixture CSVs. The header row is located by
// scanning for the known column names, so files with preamble rows above the
// table still parse.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

type colIndex map[string]int

func (p *Parser) Parse(r io.Reader) ([]*transaction.Transaction, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx := findHeader(rows)
	if cols == nil {
		return nil, fmt.Errorf("no header row found: expected columns %s", strings.Join(requiredCols, ", "))
	}

	return parseRows(cols, rows[headerIdx+1:], headerIdx+1)
}

// findHeader scans rows for one containing every required column name.
func findHeader(rows [][]string) (colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		if hasRequiredCols(cols) {
			return cols, rowIdx
		}
	}

	return nil, 0
}

func hasRequiredCols(cols colIndex) bool {
	for _, name := range requiredCols {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts transactions from data rows. Rows whose date or amount
// cell does not parse are skipped (footers, blank separators); rows with an
// unknown category or status fail the whole import, since that is corrupt
// fixture data rather than file noise. headerRowNum is 0-based.
func parseRows(cols colIndex, rows [][]string, headerRowNum int) ([]*transaction.Transaction, error) {
	var txs []*transaction.Transaction

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, past the header

		date, ok := parseDate(cellValue(row, cols[colDate]))
		if !ok {
			continue
		}

		amount, ok := parseAmount(cellValue(row, cols[colAmount]))
		if !ok {
			continue
		}

		if amount < 0 {
			return nil, fmt.Errorf("row %d: amount cannot be negative", rowNum)
		}

		category := transaction.Category(cellValue(row, cols[colCategory]))
		if !category.Valid() {
			return nil, fmt.Errorf("row %d: unknown category %q", rowNum, category)
		}

		status := transaction.Status(cellValue(row, cols[colStatus]))
		if !status.Valid() {
			return nil, fmt.Errorf("row %d: unknown status %q", rowNum, status)
		}

		userID := cellValue(row, cols[colUserID])
		if userID == "" {
			return nil, fmt.Errorf("row %d: missing user_id", rowNum)
		}

		tx := &transaction.Transaction{
			Date:     date,
			Amount:   amount,
			Category: category,
			Status:   status,
			UserID:   userID,
		}

		if idx, ok := cols[colUserProfile]; ok {
			tx.UserProfile = cellValue(row, idx)
		}

		if idx, ok := cols[colDescription]; ok {
			tx.Description = cellValue(row, idx)
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseAmount parses a decimal amount, tolerating currency symbols and
// thousands separators ("$1,234.56" -> 1234.56).
func parseAmount(s string) (float64, bool) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.ReplaceAll(clean, ",", "")

	if clean == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, false
	}

	v, _ := d.Round(2).Float64()

	return v, true
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
