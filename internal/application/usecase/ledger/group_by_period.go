// Package ledger contains the financial ledger aggregation core.
package ledger

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rental-ops/backend/internal/domain/entity"
)

// Granularity represents the grouping period of a time series.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityMonthly Granularity = "monthly"
)

// GroupedPeriod is one bucket of the aggregated time series. Regenerated
// on every call; never cached.
type GroupedPeriod struct {
	PeriodKey string // "YYYY-MM-DD" for daily, "YYYY-MM" for monthly
	Label     string // short display label
	Year      int    // set for monthly periods
	Income    decimal.Decimal
	Expenses  decimal.Decimal
	Net       decimal.Decimal
}

// TimeSeries is the ordered aggregation result consumed by charts.
type TimeSeries struct {
	Granularity Granularity
	Periods     []GroupedPeriod
}

// GroupByPeriod groups transactions by day or by month and accumulates
// income, expenses, and net per period.
//
// Monthly grouping is preferred for presentation whenever it yields more
// than one distinct period (it is the better visualization); otherwise the
// series falls back to daily grouping. This rule is a policy decision, not
// a mathematical necessity.
//
// Transactions with a zero date cannot be bucketed; they are skipped with
// a diagnostic in both grouping paths, and the remaining dataset is still
// aggregated. Output is sorted ascending by calendar time regardless of
// input order.
func GroupByPeriod(transactions []*entity.Transaction) *TimeSeries {
	if len(transactions) == 0 {
		return &TimeSeries{
			Granularity: GranularityDaily,
			Periods:     []GroupedPeriod{},
		}
	}

	monthly := groupMonthly(transactions)
	if len(monthly) > 1 {
		return &TimeSeries{
			Granularity: GranularityMonthly,
			Periods:     monthly,
		}
	}

	return &TimeSeries{
		Granularity: GranularityDaily,
		Periods:     groupDaily(transactions),
	}
}

// groupDaily buckets transactions by exact calendar date.
func groupDaily(transactions []*entity.Transaction) []GroupedPeriod {
	buckets := make(map[string]*GroupedPeriod)

	for _, txn := range transactions {
		if txn.Date.IsZero() {
			slog.Warn("Skipping transaction with invalid date during daily grouping",
				"transaction_id", txn.ID,
			)
			continue
		}

		key := entity.NormalizeDate(txn.Date).Format("2006-01-02")
		bucket, ok := buckets[key]
		if !ok {
			bucket = &GroupedPeriod{
				PeriodKey: key,
				Label:     txn.Date.Format("Jan 2"),
			}
			buckets[key] = bucket
		}
		accumulate(bucket, txn)
	}

	return sortedPeriods(buckets)
}

// groupMonthly buckets transactions by "YYYY-MM".
func groupMonthly(transactions []*entity.Transaction) []GroupedPeriod {
	buckets := make(map[string]*GroupedPeriod)

	for _, txn := range transactions {
		if txn.Date.IsZero() {
			slog.Warn("Skipping transaction with invalid date during monthly grouping",
				"transaction_id", txn.ID,
			)
			continue
		}

		key := fmt.Sprintf("%04d-%02d", txn.Date.Year(), int(txn.Date.Month()))
		bucket, ok := buckets[key]
		if !ok {
			bucket = &GroupedPeriod{
				PeriodKey: key,
				Label:     txn.Date.Format("Jan 2006"),
				Year:      txn.Date.Year(),
			}
			buckets[key] = bucket
		}
		accumulate(bucket, txn)
	}

	return sortedPeriods(buckets)
}

// accumulate adds a transaction's amount to the correct ledger side of the
// bucket and recomputes net.
func accumulate(bucket *GroupedPeriod, txn *entity.Transaction) {
	if txn.Type == entity.TransactionTypeIncome {
		bucket.Income = bucket.Income.Add(txn.Amount)
	} else {
		bucket.Expenses = bucket.Expenses.Add(txn.Amount)
	}
	bucket.Net = bucket.Income.Sub(bucket.Expenses)
}

// sortedPeriods flattens the bucket map and sorts ascending by period key.
// Both daily ("2006-01-02") and monthly ("2006-01") keys are zero-padded,
// so lexicographic order is calendar order.
func sortedPeriods(buckets map[string]*GroupedPeriod) []GroupedPeriod {
	periods := make([]GroupedPeriod, 0, len(buckets))
	for _, bucket := range buckets {
		periods = append(periods, *bucket)
	}

	sort.Slice(periods, func(i, j int) bool {
		return periods[i].PeriodKey < periods[j].PeriodKey
	})

	return periods
}
