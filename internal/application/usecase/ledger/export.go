// Package ledger contains the financial ledger aggregation core.
package ledger

import (
	"strings"

	"github.com/rental-ops/backend/internal/domain/entity"
)

// ExportHeader is the fixed header row of the delimited export. Consumers
// that round-trip the file depend on this exact layout.
const ExportHeader = "Date,Type,Category,Description,Property,Amount"

// ToDelimitedText converts a transaction subset into the downloadable
// delimited representation. The description field is quoted with embedded
// quotes doubled; the remaining fields are written raw to keep the output
// byte-compatible with the established export format. Rows appear in input
// order, and the output ends with a newline after the last record.
func ToDelimitedText(transactions []*entity.Transaction) string {
	var b strings.Builder
	b.WriteString(ExportHeader)
	b.WriteString("\n")

	for _, txn := range transactions {
		b.WriteString(txn.Date.Format("2006-01-02"))
		b.WriteString(",")
		b.WriteString(string(txn.Type))
		b.WriteString(",")
		b.WriteString(txn.Category)
		b.WriteString(",")
		b.WriteString(quoteField(txn.Description))
		b.WriteString(",")
		b.WriteString(txn.Property)
		b.WriteString(",")
		b.WriteString(txn.Amount.String())
		b.WriteString("\n")
	}

	return b.String()
}

// quoteField wraps a value in double quotes, doubling any embedded quotes.
func quoteField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
