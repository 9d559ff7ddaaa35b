package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sanketkadam3921/financial-dashboard/internal/importer"
	"github.com/Sanketkadam3921/financial-dashboard/internal/transaction"
)

func TestParser_Parse(t *testing.T) {
	fixture := strings.Join([]string{
		"date,amount,category,status,user_id,user_profile,description",
		"2024-01-15,1500.00,Revenue,Paid,user_001,https://example.com/a.png,Consulting",
		`2024-02-03,"$2,450.50",Expense,Pending,user_002,,Office rent`,
		"03-04-2024,99.999,Investment,Paid,user_003,,",
	}, "\n")

	txs, err := importer.NewParser().Parse(strings.NewReader(fixture))
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), txs[0].Date)
	assert.Equal(t, 1500.0, txs[0].Amount)
	assert.Equal(t, transaction.CategoryRevenue, txs[0].Category)
	assert.Equal(t, transaction.StatusPaid, txs[0].Status)
	assert.Equal(t, "user_001", txs[0].UserID)
	assert.Equal(t, "https://example.com/a.png", txs[0].UserProfile)
	assert.Equal(t, "Consulting", txs[0].Description)

	// Currency symbol and thousands separator stripped.
	assert.Equal(t, 2450.5, txs[1].Amount)
	assert.Equal(t, transaction.StatusPending, txs[1].Status)

	// DD-MM-YYYY layout; amount rounded to two decimals.
	assert.Equal(t, time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC), txs[2].Date)
	assert.Equal(t, 100.0, txs[2].Amount)
}

func TestParser_Parse_PreambleAndFooter(t *testing.T) {
	fixture := strings.Join([]string{
		"Financial Dashboard export",
		"Generated 2024-06-01",
		"",
		"Date,Amount,Category,Status,User_ID",
		"2024-05-01,100.00,Revenue,Paid,user_001",
		"2024-05-02,50.00,Expense,Paid,user_002",
		"Total,150.00,,,",
	}, "\n")

	txs, err := importer.NewParser().Parse(strings.NewReader(fixture))
	require.NoError(t, err)

	// Preamble rows precede the header, the footer row has no parsable date.
	require.Len(t, txs, 2)
	assert.Equal(t, "user_001", txs[0].UserID)
	assert.Equal(t, "user_002", txs[1].UserID)
}

func TestParser_Parse_Errors(t *testing.T) {
	header := "date,amount,category,status,user_id\n"

	type testCase struct {
		name    string
		input   string
		wantErr string
	}

	tests := []testCase{
		{
			name:    "NoHeader",
			input:   "just,some,cells\n1,2,3\n",
			wantErr: "no header row found: expected columns date, amount, category, status, user_id",
		},
		{
			name:    "NegativeAmount",
			input:   header + "2024-01-01,-5.00,Expense,Paid,user_001\n",
			wantErr: "row 2: amount cannot be negative",
		},
		{
			name:    "UnknownCategory",
			input:   header + "2024-01-01,5.00,Gambling,Paid,user_001\n",
			wantErr: `row 2: unknown category "Gambling"`,
		},
		{
			name:    "UnknownStatus",
			input:   header + "2024-01-01,5.00,Expense,Overdue,user_001\n",
			wantErr: `row 2: unknown status "Overdue"`,
		},
		{
			name:    "MissingUserID",
			input:   header + "2024-01-01,5.00,Expense,Paid,\n",
			wantErr: "row 2: missing user_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := importer.NewParser().Parse(strings.NewReader(tt.input))

			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestParser_Parse_EmptyTable(t *testing.T) {
	txs, err := importer.NewParser().Parse(strings.NewReader("date,amount,category,status,user_id\n"))

	require.NoError(t, err)
	assert.Empty(t, txs)
}
