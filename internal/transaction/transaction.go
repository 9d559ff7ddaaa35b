package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("transaction not found")

// Category is the closed classification of a transaction's financial nature.
type Category string

const (
	CategoryRevenue    Category = "Revenue"
	CategoryExpense    Category = "Expense"
	CategoryInvestment Category = "Investment"
	CategoryOther      Category = "Other"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryRevenue, CategoryExpense, CategoryInvestment, CategoryOther:
		return true
	}

	return false
}

// Status represents the settlement state of a transaction.
type Status string

const (
	StatusPaid    Status = "Paid"
	StatusPending Status = "Pending"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusPaid || s == StatusPending
}

// Transaction represents a financial transaction.
type Transaction struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"` // Never negative; enforced at write time
	Category    Category  `json:"category"`
	Status      Status    `json:"status"`
	UserID      string    `json:"user_id"` // Opaque counterparty reference, not a foreign key
	UserProfile string    `json:"user_profile,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
