// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the ledger side of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// AllProperties is the sentinel property name for records and filters
// that apply across every property in the portfolio.
const AllProperties = "All Properties"

// Transaction represents a single dated income or expense record for a
// property. Amount is always non-negative; the contribution to net is
// derived from Type alone.
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time // calendar date, normalized to midnight UTC
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal
	Description string
	Property    string // property name, or AllProperties
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity with a fresh identifier.
func NewTransaction(
	date time.Time,
	transactionType TransactionType,
	category string,
	amount decimal.Decimal,
	description string,
	property string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		Date:        NormalizeDate(date),
		Type:        transactionType,
		Category:    category,
		Amount:      amount,
		Description: description,
		Property:    property,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NormalizeDate strips any time-of-day component, anchoring the calendar
// date at midnight UTC so that range comparisons are platform-independent.
func NormalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// SignedAmount returns the transaction's contribution to net:
// positive for income, negative for expenses.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
