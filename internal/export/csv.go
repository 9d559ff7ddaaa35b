// Package export renders transactions as CSV for download.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"unicode"

	"github.com/Sanketkadam3921/financial-dashboard/internal/transaction"
)

// Columns is the closed set of exportable column names, in canonical order.
var Columns = []string{"date", "amount", "category", "status", "user_id", "user_profile", "description"}

// InvalidColumnsError reports an export request whose column list is empty or
// contains names outside the closed set.
type InvalidColumnsError struct {
	// Columns holds the offending names; empty means no columns were requested.
	Columns []string
}

func (e *InvalidColumnsError) Error() string {
	if len(e.Columns) == 0 {
		return "Invalid columns provided"
	}

	return "Invalid columns: " + strings.Join(e.Columns, ", ")
}

// ValidateColumns checks a requested column list against the closed set.
func ValidateColumns(columns []string) error {
	if len(columns) == 0 {
		return &InvalidColumnsError{}
	}

	valid := make(map[string]struct{}, len(Columns))
	for _, c := range Columns {
		valid[c] = struct{}{}
	}

	var invalid []string

	for _, c := range columns {
		if _, ok := valid[c]; !ok {
			invalid = append(invalid, c)
		}
	}

	if len(invalid) > 0 {
		return &InvalidColumnsError{Columns: invalid}
	}

	return nil
}

// Render encodes the transactions as UTF-8 CSV text: a header row followed by
// one row per transaction, in input order. Dates render as YYYY-MM-DD, amounts
// with two decimal places, everything else verbatim with absent values as
// empty strings.
func Render(txs []*transaction.Transaction, columns []string) ([]byte, error) {
	if err := ValidateColumns(columns); err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = columnTitle(c)
	}

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}

	row := make([]string, len(columns))

	for _, tx := range txs {
		for i, c := range columns {
			row[i] = fieldValue(tx, c)
		}

		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	return buf.Bytes(), nil
}

// columnTitle turns a column name into its header title: first rune
// upper-cased, underscores replaced with spaces ("user_id" -> "User id").
func columnTitle(name string) string {
	title := strings.ReplaceAll(name, "_", " ")

	r := []rune(title)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}

func fieldValue(tx *transaction.Transaction, column string) string {
	switch column {
	case "date":
		return tx.Date.Format("2006-01-02")
	case "amount":
		return fmt.Sprintf("%.2f", tx.Amount)
	case "category":
		return string(tx.Category)
	case "status":
		return string(tx.Status)
	case "user_id":
		return tx.UserID
	case "user_profile":
		return tx.UserProfile
	case "description":
		return tx.Description
	}

	return ""
}
