// Package ledger contains the financial ledger aggregation core.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rental-ops/backend/internal/domain/entity"
)

// WindowTotals holds the aggregate for a single roll-up window.
type WindowTotals struct {
	Gross    decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// RollupMetrics holds the derived summary-card metrics for one property.
type RollupMetrics struct {
	LastMonth  WindowTotals
	YearToDate WindowTotals
}

// ComputeRollups computes last-calendar-month and year-to-date totals for
// a single property, or for every property when propertyName is empty or
// the AllProperties sentinel. The "last month" window spans the first
// through the last day of the calendar month preceding now, inclusive;
// the YTD window spans January 1 of now's year through now, inclusive.
// Pure function of its inputs: callers inject now rather than reading the
// system clock.
func ComputeRollups(transactions []*entity.Transaction, propertyName string, now time.Time) RollupMetrics {
	today := entity.NormalizeDate(now)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevMonthStart := monthStart.AddDate(0, -1, 0)
	prevMonthEnd := monthStart.AddDate(0, 0, -1)
	yearStart := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC)

	allProperties := propertyName == "" || propertyName == entity.AllProperties

	var metrics RollupMetrics

	for _, txn := range transactions {
		if !allProperties && txn.Property != propertyName {
			continue
		}

		date := entity.NormalizeDate(txn.Date)

		if !date.Before(prevMonthStart) && !date.After(prevMonthEnd) {
			addToWindow(&metrics.LastMonth, txn)
		}
		if !date.Before(yearStart) && !date.After(today) {
			addToWindow(&metrics.YearToDate, txn)
		}
	}

	return metrics
}

func addToWindow(window *WindowTotals, txn *entity.Transaction) {
	if txn.Type == entity.TransactionTypeIncome {
		window.Gross = window.Gross.Add(txn.Amount)
	} else {
		window.Expenses = window.Expenses.Add(txn.Amount)
	}
	window.Net = window.Gross.Sub(window.Expenses)
}
