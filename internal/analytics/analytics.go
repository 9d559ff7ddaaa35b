package analytics

import (
	"github.com/Sanketkadam3921/financial-dashboard/internal/transaction"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthBucket holds the per-category sums for one calendar month.
type MonthBucket struct {
	Month      string  `json:"month"`
	Revenue    float64 `json:"revenue"`
	Expense    float64 `json:"expense"`
	Investment float64 `json:"investment"`
}

// Summary is the derived analytics view over the full transaction set. It is
// recomputed from scratch on every request; nothing here is persisted.
type Summary struct {
	TotalRevenue      float64                          `json:"totalRevenue"`
	TotalExpense      float64                          `json:"totalExpense"`
	TotalInvestment   float64                          `json:"totalInvestment"`
	Balance           float64                          `json:"balance"`
	MonthlyData       []MonthBucket                    `json:"monthlyData"`
	CategoryBreakdown map[transaction.Category]float64 `json:"categoryBreakdown"`
}

// Summarize reduces the full transaction set into totals, a fixed 12-bucket
// monthly breakdown and a per-category breakdown.
//
// Monthly bucketing uses the calendar month of each transaction's date,
// independent of year: records from different years in the same month merge
// into one bucket. All 12 buckets are always present, Jan through Dec, even
// when empty. The category breakdown only contains categories that actually
// occur in the data.
func Summarize(txs []*transaction.Transaction) Summary {
	s := Summary{
		MonthlyData:       make([]MonthBucket, 12),
		CategoryBreakdown: make(map[transaction.Category]float64),
	}

	for i := range s.MonthlyData {
		s.MonthlyData[i].Month = monthNames[i]
	}

	for _, tx := range txs {
		month := int(tx.Date.Month()) - 1

		switch tx.Category {
		case transaction.CategoryRevenue:
			s.TotalRevenue += tx.Amount
			s.MonthlyData[month].Revenue += tx.Amount
		case transaction.CategoryExpense:
			s.TotalExpense += tx.Amount
			s.MonthlyData[month].Expense += tx.Amount
		case transaction.CategoryInvestment:
			s.TotalInvestment += tx.Amount
			s.MonthlyData[month].Investment += tx.Amount
		}

		// "Other" contributes to the breakdown but to none of the totals.
		s.CategoryBreakdown[tx.Category] += tx.Amount
	}

	s.Balance = s.TotalRevenue - s.TotalExpense - s.TotalInvestment

	return s
}
