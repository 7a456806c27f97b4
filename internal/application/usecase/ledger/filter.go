// Package ledger contains the financial ledger aggregation core: pure
// functions over in-memory transaction snapshots, plus the use cases that
// load snapshots and expose the results.
package ledger

import (
	"time"

	"github.com/rental-ops/backend/internal/domain/entity"
)

// FilterAll is the filter value matching every record.
const FilterAll = "all"

// Filter defines the working-subset predicates applied ahead of
// aggregation, roll-ups, and export.
type Filter struct {
	Property string // "" or "all" matches every record
	Type     string // "" or "all", else "income"/"expense"
	DateFrom *time.Time
	DateTo   *time.Time // inclusive
}

// FilterTransactions applies property, type, and date-range predicates to
// produce a working subset. Date bounds are inclusive and compared as
// calendar dates. The output preserves input order; consumers sort as
// needed for display.
func FilterTransactions(transactions []*entity.Transaction, filter Filter) []*entity.Transaction {
	matched := make([]*entity.Transaction, 0, len(transactions))

	var from, to time.Time
	if filter.DateFrom != nil {
		from = entity.NormalizeDate(*filter.DateFrom)
	}
	if filter.DateTo != nil {
		to = entity.NormalizeDate(*filter.DateTo)
	}

	for _, txn := range transactions {
		if filter.Property != "" && filter.Property != FilterAll && txn.Property != filter.Property {
			continue
		}
		if filter.Type != "" && filter.Type != FilterAll && string(txn.Type) != filter.Type {
			continue
		}

		date := entity.NormalizeDate(txn.Date)
		if filter.DateFrom != nil && date.Before(from) {
			continue
		}
		if filter.DateTo != nil && date.After(to) {
			continue
		}

		matched = append(matched, txn)
	}

	return matched
}
