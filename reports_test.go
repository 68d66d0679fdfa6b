package tracker

import (
	"testing"

	"github.com/shopspring/decimal"
)

func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSummaryTotals(t *testing.T) {
	txs := []Transaction{
		{Description: "Salary", Amount: amount("1000"), Type: Income, Date: MustParseDate("2025-07-01")},
		{Description: "Lunch", Amount: amount("12.50"), Type: Expense, Category: "Food", Date: MustParseDate("2025-07-01")},
		{Description: "Bus", Amount: amount("2.50"), Type: Expense, Category: "Transport", Date: MustParseDate("2025-07-02")},
	}
	s := NewSummary(txs, DefaultSettings(), MustParseDate("2025-07-02"))

	if s.TotalRecords != 3 {
		t.Errorf("TotalRecords = %d, want 3", s.TotalRecords)
	}
	if !s.TotalIncome.Equal(amount("1000")) {
		t.Errorf("TotalIncome = %s, want 1000", s.TotalIncome)
	}
	if !s.TotalExpenses.Equal(amount("15")) {
		t.Errorf("TotalExpenses = %s, want 15", s.TotalExpenses)
	}
	if !s.Remaining.Equal(amount("985")) {
		t.Errorf("Remaining = %s, want 985", s.Remaining)
	}
	if !s.MonthlyBudget.Equal(amount("600")) {
		t.Errorf("MonthlyBudget = %s, want 600", s.MonthlyBudget)
	}
}

func TestSummaryMonthlySpending(t *testing.T) {
	txs := []Transaction{
		{Amount: amount("10"), Type: Expense, Date: MustParseDate("2025-07-01")},
		{Amount: amount("20"), Type: Expense, Date: MustParseDate("2025-07-31")},
		{Amount: amount("40"), Type: Expense, Date: MustParseDate("2025-06-30")}, // previous month
		{Amount: amount("80"), Type: Income, Date: MustParseDate("2025-07-15")}, // income never counts
	}
	s := NewSummary(txs, DefaultSettings(), MustParseDate("2025-07-15"))

	if !s.MonthlySpending.Equal(amount("30")) {
		t.Errorf("MonthlySpending = %s, want 30", s.MonthlySpending)
	}
}

func TestSummaryTopCategory(t *testing.T) {
	tests := []struct {
		name string
		txs  []Transaction
		want string
	}{
		{
			name: "no expenses",
			txs: []Transaction{
				{Amount: amount("10"), Type: Income, Date: MustParseDate("2025-07-01")},
			},
			want: "",
		},
		{
			name: "clear winner",
			txs: []Transaction{
				{Amount: amount("1"), Type: Expense, Category: "Food", Date: MustParseDate("2025-07-01")},
				{Amount: amount("1"), Type: Expense, Category: "Food", Date: MustParseDate("2025-07-02")},
				{Amount: amount("9"), Type: Expense, Category: "Rent", Date: MustParseDate("2025-07-03")},
			},
			want: "Food", // counted by records, not by amount
		},
		{
			name: "tie resolves to first seen",
			txs: []Transaction{
				{Amount: amount("1"), Type: Expense, Category: "Transport", Date: MustParseDate("2025-07-01")},
				{Amount: amount("1"), Type: Expense, Category: "Food", Date: MustParseDate("2025-07-02")},
			},
			want: "Transport",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSummary(tt.txs, DefaultSettings(), MustParseDate("2025-07-15"))
			if s.TopCategory != tt.want {
				t.Errorf("TopCategory = %q, want %q", s.TopCategory, tt.want)
			}
		})
	}
}

func TestSummaryTrend(t *testing.T) {
	// 2025-07-02 is a Wednesday; its week runs Monday 06-30 to Sunday 07-06.
	txs := []Transaction{
		{Amount: amount("5"), Type: Expense, Date: MustParseDate("2025-06-30")},  // Monday
		{Amount: amount("7"), Type: Expense, Date: MustParseDate("2025-07-02")},  // Wednesday
		{Amount: amount("3"), Type: Expense, Date: MustParseDate("2025-07-02")},  // Wednesday again
		{Amount: amount("99"), Type: Expense, Date: MustParseDate("2025-07-07")}, // next Monday
		{Amount: amount("50"), Type: Income, Date: MustParseDate("2025-07-02")},  // income never counts
	}
	s := NewSummary(txs, DefaultSettings(), MustParseDate("2025-07-02"))

	if len(s.Trend) != 7 {
		t.Fatalf("Trend has %d buckets, want 7", len(s.Trend))
	}
	if s.Trend[0].Date != MustParseDate("2025-06-30") {
		t.Errorf("Trend starts on %s, want Monday 2025-06-30", s.Trend[0].Date)
	}
	if s.Trend[6].Date != MustParseDate("2025-07-06") {
		t.Errorf("Trend ends on %s, want Sunday 2025-07-06", s.Trend[6].Date)
	}

	wants := []string{"5", "0", "10", "0", "0", "0", "0"}
	for i, want := range wants {
		if !s.Trend[i].Total.Equal(amount(want)) {
			t.Errorf("Trend[%d] (%s) = %s, want %s", i, s.Trend[i].Date, s.Trend[i].Total, want)
		}
	}
}

func TestSummaryLegacyTypes(t *testing.T) {
	// Records without a type count as expenses.
	txs := []Transaction{
		{Amount: amount("10"), Date: MustParseDate("2025-07-01")},
	}
	s := NewSummary(txs, DefaultSettings(), MustParseDate("2025-07-01"))
	if !s.TotalExpenses.Equal(amount("10")) {
		t.Errorf("TotalExpenses = %s, want 10", s.TotalExpenses)
	}
}
