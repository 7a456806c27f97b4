package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rental-ops/backend/internal/domain/entity"
)

func TestToDelimitedText_HeaderAndRow(t *testing.T) {
	record := entity.NewTransaction(
		date("2024-04-02"),
		entity.TransactionTypeExpense,
		"Repairs",
		decimal.NewFromInt(120),
		"fix water heater",
		"Lakehouse",
	)

	out := ToDelimitedText([]*entity.Transaction{record})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if lines[0] != "Date,Type,Category,Description,Property,Amount" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	want := `2024-04-02,expense,Repairs,"fix water heater",Lakehouse,120`
	if lines[1] != want {
		t.Errorf("row mismatch:\n got %s\nwant %s", lines[1], want)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("expected trailing newline after last record")
	}
}

func TestToDelimitedText_DoublesEmbeddedQuotes(t *testing.T) {
	record := entity.NewTransaction(
		date("2024-04-02"),
		entity.TransactionTypeIncome,
		"Booking Revenue",
		decimal.NewFromInt(900),
		`He said "hi"`,
		"Lakehouse",
	)

	out := ToDelimitedText([]*entity.Transaction{record})

	if !strings.Contains(out, `"He said ""hi"""`) {
		t.Errorf("expected doubled quotes in description field, got: %s", out)
	}
}

func TestToDelimitedText_EmptyInputIsHeaderOnly(t *testing.T) {
	out := ToDelimitedText(nil)

	if out != "Date,Type,Category,Description,Property,Amount\n" {
		t.Errorf("expected header-only export, got: %q", out)
	}
}

func TestToDelimitedText_PreservesInputOrder(t *testing.T) {
	first := entity.NewTransaction(date("2024-05-20"), entity.TransactionTypeIncome, "Booking Revenue", decimal.NewFromInt(1), "a", "X")
	second := entity.NewTransaction(date("2024-05-10"), entity.TransactionTypeIncome, "Booking Revenue", decimal.NewFromInt(2), "b", "X")

	out := ToDelimitedText([]*entity.Transaction{first, second})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if !strings.HasPrefix(lines[1], "2024-05-20") || !strings.HasPrefix(lines[2], "2024-05-10") {
		t.Error("serializer must preserve the order of the given subset")
	}
}

func TestToDelimitedText_AmountNeverSigned(t *testing.T) {
	// Expenses export their stored non-negative amount; the ledger side
	// is carried by the Type column.
	record := entity.NewTransaction(
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		entity.TransactionTypeExpense,
		"Utilities",
		decimal.NewFromInt(85),
		"power bill",
		"Cabin",
	)

	out := ToDelimitedText([]*entity.Transaction{record})

	if strings.Contains(out, "-85") {
		t.Errorf("amount must not be exported negative: %s", out)
	}
}
