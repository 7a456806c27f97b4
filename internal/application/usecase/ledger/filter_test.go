package ledger

import (
	"reflect"
	"testing"

	"github.com/rental-ops/backend/internal/domain/entity"
)

func TestFilterTransactions_PropertyMatch(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-01-10", entity.TransactionTypeIncome, 100, "Lakehouse"),
		txn("2024-01-11", entity.TransactionTypeIncome, 200, "Cabin"),
		txn("2024-01-12", entity.TransactionTypeExpense, 50, entity.AllProperties),
	}

	t.Run("exact match", func(t *testing.T) {
		subset := FilterTransactions(transactions, Filter{Property: "Cabin"})
		if len(subset) != 1 || subset[0].Property != "Cabin" {
			t.Fatalf("expected only Cabin record, got %d records", len(subset))
		}
	})

	t.Run("all passes everything", func(t *testing.T) {
		subset := FilterTransactions(transactions, Filter{Property: FilterAll})
		if len(subset) != 3 {
			t.Fatalf("expected all 3 records, got %d", len(subset))
		}
	})

	t.Run("unset passes everything", func(t *testing.T) {
		subset := FilterTransactions(transactions, Filter{})
		if len(subset) != 3 {
			t.Fatalf("expected all 3 records, got %d", len(subset))
		}
	})

	t.Run("sentinel is an ordinary value", func(t *testing.T) {
		subset := FilterTransactions(transactions, Filter{Property: entity.AllProperties})
		if len(subset) != 1 {
			t.Fatalf("expected only the sentinel-scoped record, got %d", len(subset))
		}
	})
}

func TestFilterTransactions_TypeMatch(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-01-10", entity.TransactionTypeIncome, 100, "X"),
		txn("2024-01-11", entity.TransactionTypeExpense, 40, "X"),
	}

	subset := FilterTransactions(transactions, Filter{Type: "expense"})
	if len(subset) != 1 || subset[0].Type != entity.TransactionTypeExpense {
		t.Fatalf("expected only the expense record, got %d records", len(subset))
	}

	subset = FilterTransactions(transactions, Filter{Type: FilterAll})
	if len(subset) != 2 {
		t.Fatalf("expected both records for type=all, got %d", len(subset))
	}
}

func TestFilterTransactions_DateBoundsInclusive(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-01-09", entity.TransactionTypeIncome, 1, "X"),
		txn("2024-01-10", entity.TransactionTypeIncome, 2, "X"),
		txn("2024-01-15", entity.TransactionTypeIncome, 3, "X"),
		txn("2024-01-16", entity.TransactionTypeIncome, 4, "X"),
	}

	from := date("2024-01-10")
	to := date("2024-01-15")
	subset := FilterTransactions(transactions, Filter{DateFrom: &from, DateTo: &to})

	if len(subset) != 2 {
		t.Fatalf("expected 2 records inside inclusive bounds, got %d", len(subset))
	}
	if subset[0].Date.Format("2006-01-02") != "2024-01-10" {
		t.Errorf("expected boundary record 2024-01-10 included")
	}
	if subset[1].Date.Format("2006-01-02") != "2024-01-15" {
		t.Errorf("expected boundary record 2024-01-15 included")
	}
}

func TestFilterTransactions_PreservesInputOrder(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-03-01", entity.TransactionTypeIncome, 1, "X"),
		txn("2024-01-01", entity.TransactionTypeIncome, 2, "X"),
		txn("2024-02-01", entity.TransactionTypeIncome, 3, "X"),
	}

	subset := FilterTransactions(transactions, Filter{Property: "X"})

	if !reflect.DeepEqual(subset, transactions) {
		t.Error("filter must not reorder the subset")
	}
}

func TestFilterTransactions_Idempotent(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-01-10", entity.TransactionTypeIncome, 100, "X"),
		txn("2024-01-11", entity.TransactionTypeExpense, 40, "Y"),
	}
	filter := Filter{Property: "X", Type: "income"}

	first := FilterTransactions(transactions, filter)
	second := FilterTransactions(transactions, filter)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical subsets for identical inputs")
	}
}
