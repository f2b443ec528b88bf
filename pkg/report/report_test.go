package report

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertFloat(t *testing.T, got, want float64, label string) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s: got %v, want %v", label, got, want)
	}
}

func sampleRecords() []Record {
	return []Record{
		{Type: TypeIncome, Amount: 100, Category: "Salary", Date: "2024-01-05"},
		{Type: TypeExpense, Amount: 40, Category: "Food", Date: "2024-01-05"},
		{Type: TypeExpense, Amount: 10, Category: "Food", Date: "2024-01-06"},
	}
}

func TestComputeMetrics_MonthRange(t *testing.T) {
	m := ComputeMetrics(sampleRecords(), Range{Start: "2024-01-01", End: "2024-01-31"})

	assertFloat(t, m.Income, 100, "income")
	assertFloat(t, m.Expenses, 50, "expenses")
	assertFloat(t, m.Balance, 50, "balance")
	if m.TransactionCount != 3 {
		t.Errorf("transaction count: got %d, want 3", m.TransactionCount)
	}
	assertFloat(t, m.CategorySpending["Food"], 50, "category spending Food")
	assertFloat(t, m.IncomeByCategory["Salary"], 100, "income by category Salary")
	assertFloat(t, m.DailySpending["2024-01-05"], 40, "daily spending 01-05")
	assertFloat(t, m.DailySpending["2024-01-06"], 10, "daily spending 01-06")
	assertFloat(t, m.AverageDailySpending, 25, "average daily spending")
}

func TestComputeMetrics_SingleDayRange(t *testing.T) {
	m := ComputeMetrics(sampleRecords(), Range{Start: "2024-01-06", End: "2024-01-06"})

	assertFloat(t, m.Income, 0, "income")
	assertFloat(t, m.Expenses, 10, "expenses")
	assertFloat(t, m.Balance, -10, "balance")
	if m.TransactionCount != 1 {
		t.Errorf("transaction count: got %d, want 1", m.TransactionCount)
	}
	assertFloat(t, m.AverageDailySpending, 10, "average daily spending")
}

func TestComputeMetrics_InclusiveBounds(t *testing.T) {
	records := []Record{
		{Type: TypeExpense, Amount: 1, Category: "a", Date: "2024-02-29"}, // day before start
		{Type: TypeExpense, Amount: 2, Category: "b", Date: "2024-03-01"}, // start
		{Type: TypeExpense, Amount: 4, Category: "c", Date: "2024-03-15"},
		{Type: TypeExpense, Amount: 8, Category: "d", Date: "2024-03-31"}, // end
		{Type: TypeExpense, Amount: 16, Category: "e", Date: "2024-04-01"}, // day after end
	}

	m := ComputeMetrics(records, Range{Start: "2024-03-01", End: "2024-03-31"})

	assertFloat(t, m.Expenses, 14, "expenses")
	if m.TransactionCount != 3 {
		t.Errorf("transaction count: got %d, want 3", m.TransactionCount)
	}
	if _, ok := m.CategorySpending["a"]; ok {
		t.Error("record dated one day before the start bound must be excluded")
	}
	if _, ok := m.CategorySpending["e"]; ok {
		t.Error("record dated one day after the end bound must be excluded")
	}
}

func TestComputeMetrics_GroupingPartitionsTotals(t *testing.T) {
	records := []Record{
		{Type: TypeExpense, Amount: 12.5, Category: "Food & Dining", Date: "2024-05-02"},
		{Type: TypeExpense, Amount: 7.25, Category: "Transportation", Date: "2024-05-02"},
		{Type: TypeExpense, Amount: 30, Category: "Food & Dining", Date: "2024-05-09"},
		{Type: TypeIncome, Amount: 500, Category: "Salary", Date: "2024-05-01"},
		{Type: TypeIncome, Amount: 120, Category: "Freelance", Date: "2024-05-20"},
	}

	m := ComputeMetrics(records, Range{Start: "2024-05-01", End: "2024-05-31"})

	var spendingSum, incomeSum, dailySum float64
	for _, v := range m.CategorySpending {
		spendingSum += v
	}
	for _, v := range m.IncomeByCategory {
		incomeSum += v
	}
	for _, v := range m.DailySpending {
		dailySum += v
	}

	assertFloat(t, spendingSum, m.Expenses, "sum of category spending")
	assertFloat(t, incomeSum, m.Income, "sum of income by category")
	assertFloat(t, dailySum, m.Expenses, "sum of daily spending")
	if m.TransactionCount != len(records) {
		t.Errorf("transaction count: got %d, want %d", m.TransactionCount, len(records))
	}
}

func TestComputeMetrics_NoExpenseDays(t *testing.T) {
	records := []Record{
		{Type: TypeIncome, Amount: 300, Category: "Salary", Date: "2024-06-01"},
	}

	m := ComputeMetrics(records, Range{Start: "2024-06-01", End: "2024-06-30"})

	assertFloat(t, m.AverageDailySpending, 0, "average daily spending with no expense days")
	if len(m.DailySpending) != 0 {
		t.Errorf("daily spending: got %d entries, want 0", len(m.DailySpending))
	}
}

func TestComputeMetrics_EmptyInput(t *testing.T) {
	m := ComputeMetrics(nil, Range{Start: "2024-01-01", End: "2024-12-31"})

	if m.TransactionCount != 0 {
		t.Errorf("transaction count: got %d, want 0", m.TransactionCount)
	}
	if m.CategorySpending == nil || m.IncomeByCategory == nil || m.DailySpending == nil {
		t.Error("maps must be initialized even for empty input")
	}
}

func TestComputeMetrics_InvertedRangeIsEmpty(t *testing.T) {
	m := ComputeMetrics(sampleRecords(), Range{Start: "2024-01-31", End: "2024-01-01"})

	if m.TransactionCount != 0 {
		t.Errorf("inverted range: got %d records, want 0", m.TransactionCount)
	}
	assertFloat(t, m.Income, 0, "income")
	assertFloat(t, m.Expenses, 0, "expenses")
}

func TestComputeMetrics_MalformedDates(t *testing.T) {
	records := []Record{
		{Type: TypeExpense, Amount: 5, Category: "Food", Date: "not-a-date"},
		{Type: TypeExpense, Amount: 7, Category: "Food", Date: "2024-01-10"},
		{Type: TypeExpense, Amount: 9, Category: "Food", Date: "2024-01-12T15:04:05"},
	}

	m := ComputeMetrics(records, Range{Start: "2024-01-01", End: "2024-01-31"})

	assertFloat(t, m.Expenses, 16, "expenses")
	if m.TransactionCount != 2 {
		t.Errorf("transaction count: got %d, want 2", m.TransactionCount)
	}
	assertFloat(t, m.DailySpending["2024-01-12"], 9, "timestamped date grouped by day")
}

func TestComputeMetrics_InvalidRangeBounds(t *testing.T) {
	m := ComputeMetrics(sampleRecords(), Range{Start: "garbage", End: "2024-01-31"})
	if m.TransactionCount != 0 {
		t.Errorf("unparseable bound: got %d records, want 0", m.TransactionCount)
	}
}

func TestComputeMetrics_NonFiniteAmounts(t *testing.T) {
	records := []Record{
		{Type: TypeExpense, Amount: math.NaN(), Category: "Food", Date: "2024-01-05"},
		{Type: TypeExpense, Amount: math.Inf(1), Category: "Food", Date: "2024-01-05"},
		{Type: TypeExpense, Amount: 3, Category: "Food", Date: "2024-01-05"},
	}

	m := ComputeMetrics(records, Range{Start: "2024-01-01", End: "2024-01-31"})

	assertFloat(t, m.Expenses, 3, "non-finite amounts treated as zero")
	if m.TransactionCount != 3 {
		t.Errorf("transaction count: got %d, want 3", m.TransactionCount)
	}
}

func TestSavingsRate(t *testing.T) {
	tests := []struct {
		name     string
		metrics  Metrics
		want     float64
		wantOK   bool
	}{
		{"half saved", Metrics{Income: 100, Balance: 50}, 50, true},
		{"overspending", Metrics{Income: 100, Balance: -25}, -25, true},
		{"everything saved", Metrics{Income: 80, Balance: 80}, 100, true},
		{"no income", Metrics{Income: 0, Balance: -10}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SavingsRate(tt.metrics)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if ok {
				assertFloat(t, got, tt.want, "savings rate")
			}
		})
	}
}

func TestTopCategories(t *testing.T) {
	byCategory := map[string]float64{
		"Food & Dining":  60,
		"Transportation": 25,
		"Shopping":       10,
		"Healthcare":     5,
	}

	top := TopCategories(byCategory, 2)

	if len(top) != 2 {
		t.Fatalf("got %d categories, want 2", len(top))
	}
	if top[0].Category != "Food & Dining" || top[1].Category != "Transportation" {
		t.Errorf("unexpected order: %q, %q", top[0].Category, top[1].Category)
	}
	assertFloat(t, top[0].Percent, 60, "top category percent")
	assertFloat(t, top[1].Percent, 25, "second category percent")
}

func TestTopCategories_TiesAndLimits(t *testing.T) {
	byCategory := map[string]float64{"b": 10, "a": 10, "c": 20}

	top := TopCategories(byCategory, 0)

	if len(top) != 3 {
		t.Fatalf("got %d categories, want 3", len(top))
	}
	if top[0].Category != "c" || top[1].Category != "a" || top[2].Category != "b" {
		t.Errorf("ties must break by name: got %q, %q, %q",
			top[0].Category, top[1].Category, top[2].Category)
	}

	if got := TopCategories(nil, 5); len(got) != 0 {
		t.Errorf("empty map: got %d categories, want 0", len(got))
	}
}
