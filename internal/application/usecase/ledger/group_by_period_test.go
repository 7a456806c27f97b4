package ledger

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rental-ops/backend/internal/domain/entity"
)

func txn(date string, txnType entity.TransactionType, amount int64, property string) *entity.Transaction {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return entity.NewTransaction(parsed, txnType, "Booking Revenue", decimal.NewFromInt(amount), "test", property)
}

func TestGroupByPeriod_MonthlyAcrossTwoMonths(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-01-10", entity.TransactionTypeIncome, 1075, "X"),
		txn("2024-02-05", entity.TransactionTypeIncome, 1200, "X"),
	}

	series := GroupByPeriod(transactions)

	if series.Granularity != GranularityMonthly {
		t.Fatalf("expected monthly granularity, got %s", series.Granularity)
	}
	if len(series.Periods) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(series.Periods))
	}

	jan := series.Periods[0]
	if jan.PeriodKey != "2024-01" {
		t.Errorf("expected first period 2024-01, got %s", jan.PeriodKey)
	}
	if jan.Label != "Jan 2024" {
		t.Errorf("expected label Jan 2024, got %s", jan.Label)
	}
	if !jan.Income.Equal(decimal.NewFromInt(1075)) {
		t.Errorf("expected Jan income 1075, got %s", jan.Income)
	}
	if !jan.Net.Equal(decimal.NewFromInt(1075)) {
		t.Errorf("expected Jan net 1075, got %s", jan.Net)
	}

	feb := series.Periods[1]
	if feb.PeriodKey != "2024-02" {
		t.Errorf("expected second period 2024-02, got %s", feb.PeriodKey)
	}
	if !feb.Income.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected Feb income 1200, got %s", feb.Income)
	}
	if !feb.Net.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected Feb net 1200, got %s", feb.Net)
	}
}

func TestGroupByPeriod_SingleRecordUsesDaily(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-03-15", entity.TransactionTypeExpense, 250, "X"),
	}

	series := GroupByPeriod(transactions)

	if series.Granularity != GranularityDaily {
		t.Fatalf("expected daily granularity for single-period set, got %s", series.Granularity)
	}
	if len(series.Periods) != 1 {
		t.Fatalf("expected 1 period, got %d", len(series.Periods))
	}

	period := series.Periods[0]
	if period.PeriodKey != "2024-03-15" {
		t.Errorf("expected period key 2024-03-15, got %s", period.PeriodKey)
	}
	if !period.Expenses.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected expenses 250, got %s", period.Expenses)
	}
	if !period.Net.Equal(decimal.NewFromInt(-250)) {
		t.Errorf("expected net -250, got %s", period.Net)
	}
}

func TestGroupByPeriod_EmptyInput(t *testing.T) {
	series := GroupByPeriod(nil)

	if series == nil {
		t.Fatal("expected explicit empty result, got nil")
	}
	if len(series.Periods) != 0 {
		t.Errorf("expected no periods, got %d", len(series.Periods))
	}
	if series.Granularity != GranularityDaily {
		t.Errorf("expected daily granularity for empty set, got %s", series.Granularity)
	}
}

func TestGroupByPeriod_NetEqualsIncomeMinusExpenses(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-01-10", entity.TransactionTypeIncome, 1000, "X"),
		txn("2024-01-20", entity.TransactionTypeExpense, 400, "X"),
		txn("2024-02-03", entity.TransactionTypeIncome, 800, "X"),
		txn("2024-02-14", entity.TransactionTypeExpense, 950, "X"),
	}

	series := GroupByPeriod(transactions)

	for _, period := range series.Periods {
		if !period.Net.Equal(period.Income.Sub(period.Expenses)) {
			t.Errorf("period %s: net %s != income %s - expenses %s",
				period.PeriodKey, period.Net, period.Income, period.Expenses)
		}
	}
}

func TestGroupByPeriod_CompletenessNoDoubleCountingOrDrops(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-01-10", entity.TransactionTypeIncome, 100, "X"),
		txn("2024-01-10", entity.TransactionTypeIncome, 200, "X"),
		txn("2024-02-01", entity.TransactionTypeExpense, 50, "X"),
		txn("2024-03-07", entity.TransactionTypeIncome, 300, "Y"),
		txn("2024-03-07", entity.TransactionTypeExpense, 25, "Y"),
	}

	series := GroupByPeriod(transactions)

	var totalIncome, totalExpenses decimal.Decimal
	for _, period := range series.Periods {
		totalIncome = totalIncome.Add(period.Income)
		totalExpenses = totalExpenses.Add(period.Expenses)
	}

	if !totalIncome.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected summed income 600, got %s", totalIncome)
	}
	if !totalExpenses.Equal(decimal.NewFromInt(75)) {
		t.Errorf("expected summed expenses 75, got %s", totalExpenses)
	}
}

func TestGroupByPeriod_SortIndependentOfInputOrder(t *testing.T) {
	forward := []*entity.Transaction{
		txn("2024-01-10", entity.TransactionTypeIncome, 100, "X"),
		txn("2024-02-10", entity.TransactionTypeIncome, 200, "X"),
		txn("2024-03-10", entity.TransactionTypeIncome, 300, "X"),
	}
	reversed := []*entity.Transaction{forward[2], forward[0], forward[1]}

	a := GroupByPeriod(forward)
	b := GroupByPeriod(reversed)

	if !reflect.DeepEqual(a, b) {
		t.Error("grouping result depends on input order")
	}

	for i := 1; i < len(a.Periods); i++ {
		if a.Periods[i-1].PeriodKey >= a.Periods[i].PeriodKey {
			t.Errorf("periods not sorted ascending: %s before %s",
				a.Periods[i-1].PeriodKey, a.Periods[i].PeriodKey)
		}
	}
}

func TestGroupByPeriod_Idempotent(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-01-10", entity.TransactionTypeIncome, 100, "X"),
		txn("2024-02-10", entity.TransactionTypeExpense, 40, "X"),
	}

	first := GroupByPeriod(transactions)
	second := GroupByPeriod(transactions)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical output for identical input")
	}
}

func TestGroupByPeriod_SkipsZeroDatesInBothPaths(t *testing.T) {
	bad := entity.NewTransaction(time.Time{}, entity.TransactionTypeIncome, "Booking Revenue", decimal.NewFromInt(999), "bad date", "X")
	bad.Date = time.Time{}

	t.Run("monthly path", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn("2024-01-10", entity.TransactionTypeIncome, 100, "X"),
			txn("2024-02-10", entity.TransactionTypeIncome, 200, "X"),
			bad,
		}

		series := GroupByPeriod(transactions)
		if series.Granularity != GranularityMonthly {
			t.Fatalf("expected monthly granularity, got %s", series.Granularity)
		}
		if len(series.Periods) != 2 {
			t.Fatalf("expected bad-date record to be skipped, got %d periods", len(series.Periods))
		}
	})

	t.Run("daily path", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn("2024-01-10", entity.TransactionTypeIncome, 100, "X"),
			bad,
		}

		series := GroupByPeriod(transactions)
		if series.Granularity != GranularityDaily {
			t.Fatalf("expected daily granularity, got %s", series.Granularity)
		}
		if len(series.Periods) != 1 {
			t.Fatalf("expected bad-date record to be skipped, got %d periods", len(series.Periods))
		}
		if !series.Periods[0].Income.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected income 100, got %s", series.Periods[0].Income)
		}
	})
}

func TestGroupByPeriod_SameDaySingleMonthStaysDaily(t *testing.T) {
	// Multiple records inside one month still group daily: only a second
	// distinct month switches the series to monthly.
	transactions := []*entity.Transaction{
		txn("2024-05-01", entity.TransactionTypeIncome, 100, "X"),
		txn("2024-05-15", entity.TransactionTypeExpense, 30, "X"),
		txn("2024-05-15", entity.TransactionTypeIncome, 20, "X"),
	}

	series := GroupByPeriod(transactions)

	if series.Granularity != GranularityDaily {
		t.Fatalf("expected daily granularity, got %s", series.Granularity)
	}
	if len(series.Periods) != 2 {
		t.Fatalf("expected 2 daily periods, got %d", len(series.Periods))
	}

	may15 := series.Periods[1]
	if !may15.Income.Equal(decimal.NewFromInt(20)) || !may15.Expenses.Equal(decimal.NewFromInt(30)) {
		t.Errorf("unexpected May 15 bucket: income=%s expenses=%s", may15.Income, may15.Expenses)
	}
	if !may15.Net.Equal(decimal.NewFromInt(-10)) {
		t.Errorf("expected May 15 net -10, got %s", may15.Net)
	}
}
