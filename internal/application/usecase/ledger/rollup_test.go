package ledger

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rental-ops/backend/internal/domain/entity"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestComputeRollups_LastMonthAndYTD(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-01-20", entity.TransactionTypeIncome, 1200, "X"),
	}

	metrics := ComputeRollups(transactions, "X", date("2024-02-15"))

	if !metrics.LastMonth.Gross.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected lastMonth gross 1200, got %s", metrics.LastMonth.Gross)
	}
	if !metrics.YearToDate.Gross.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected ytd gross 1200, got %s", metrics.YearToDate.Gross)
	}
	if !metrics.LastMonth.Net.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected lastMonth net 1200, got %s", metrics.LastMonth.Net)
	}
}

func TestComputeRollups_WindowBoundsInclusive(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-01-01", entity.TransactionTypeIncome, 10, "X"), // first day of prev month
		txn("2024-01-31", entity.TransactionTypeIncome, 20, "X"), // last day of prev month
		txn("2023-12-31", entity.TransactionTypeIncome, 40, "X"), // before prev month and before Jan 1
		txn("2024-02-15", entity.TransactionTypeIncome, 80, "X"), // now itself
		txn("2024-02-16", entity.TransactionTypeIncome, 160, "X"), // after now
	}

	metrics := ComputeRollups(transactions, "X", date("2024-02-15"))

	if !metrics.LastMonth.Gross.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected lastMonth gross 30, got %s", metrics.LastMonth.Gross)
	}
	if !metrics.YearToDate.Gross.Equal(decimal.NewFromInt(110)) {
		t.Errorf("expected ytd gross 110, got %s", metrics.YearToDate.Gross)
	}
}

func TestComputeRollups_FiltersByProperty(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-01-10", entity.TransactionTypeIncome, 500, "X"),
		txn("2024-01-10", entity.TransactionTypeIncome, 999, "Y"),
	}

	metrics := ComputeRollups(transactions, "X", date("2024-02-01"))

	if !metrics.LastMonth.Gross.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected only property X counted, got %s", metrics.LastMonth.Gross)
	}
}

func TestComputeRollups_AllPropertiesSentinelCountsEverything(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-01-10", entity.TransactionTypeIncome, 500, "X"),
		txn("2024-01-10", entity.TransactionTypeIncome, 999, "Y"),
	}

	metrics := ComputeRollups(transactions, entity.AllProperties, date("2024-02-01"))

	if !metrics.LastMonth.Gross.Equal(decimal.NewFromInt(1499)) {
		t.Errorf("expected both properties counted, got %s", metrics.LastMonth.Gross)
	}

	metrics = ComputeRollups(transactions, "", date("2024-02-01"))
	if !metrics.LastMonth.Gross.Equal(decimal.NewFromInt(1499)) {
		t.Errorf("expected empty property to count everything, got %s", metrics.LastMonth.Gross)
	}
}

func TestComputeRollups_NetInEveryWindow(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-01-05", entity.TransactionTypeIncome, 2000, "X"),
		txn("2024-01-12", entity.TransactionTypeExpense, 700, "X"),
		txn("2024-02-02", entity.TransactionTypeExpense, 300, "X"),
	}

	metrics := ComputeRollups(transactions, "X", date("2024-02-20"))

	if !metrics.LastMonth.Net.Equal(metrics.LastMonth.Gross.Sub(metrics.LastMonth.Expenses)) {
		t.Error("lastMonth net != gross - expenses")
	}
	if !metrics.YearToDate.Net.Equal(metrics.YearToDate.Gross.Sub(metrics.YearToDate.Expenses)) {
		t.Error("ytd net != gross - expenses")
	}
	if !metrics.YearToDate.Net.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected ytd net 1000, got %s", metrics.YearToDate.Net)
	}
}

func TestComputeRollups_JanuaryLooksAtPreviousYear(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2023-12-15", entity.TransactionTypeIncome, 100, "X"),
		txn("2024-01-05", entity.TransactionTypeIncome, 50, "X"),
	}

	metrics := ComputeRollups(transactions, "X", date("2024-01-10"))

	if !metrics.LastMonth.Gross.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected December counted as last month, got %s", metrics.LastMonth.Gross)
	}
	if !metrics.YearToDate.Gross.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected only current-year records in ytd, got %s", metrics.YearToDate.Gross)
	}
}

func TestComputeRollups_DeterministicForFixedInputs(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-01-10", entity.TransactionTypeIncome, 100, "X"),
		txn("2024-02-01", entity.TransactionTypeExpense, 30, "X"),
	}
	now := date("2024-02-15")

	first := ComputeRollups(transactions, "X", now)
	second := ComputeRollups(transactions, "X", now)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical metrics for identical inputs")
	}
}

func TestComputeRollups_EmptyInputYieldsZeroWindows(t *testing.T) {
	metrics := ComputeRollups(nil, "X", date("2024-02-15"))

	if !metrics.LastMonth.Gross.IsZero() || !metrics.YearToDate.Gross.IsZero() {
		t.Error("expected zero totals for empty input")
	}
}
