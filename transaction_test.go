package tracker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseTxType(t *testing.T) {
	tests := []struct {
		in      string
		want    TxType
		wantErr bool
	}{
		{in: "income", want: Income},
		{in: "Income", want: Income},
		{in: "EXPENSE", want: Expense},
		{in: "savings", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTxType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTxType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTxType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTransactionMarshalStableOrder(t *testing.T) {
	tx := Transaction{
		ID:          "a1",
		Description: "Lunch",
		Amount:      decimal.NewFromFloat(12.5),
		Type:        Expense,
		Category:    "Food",
		Date:        MustParseDate("2025-07-01"),
	}
	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// Amounts are numbers, not strings, and zero timestamps are omitted.
	want := `{"id":"a1","description":"Lunch","amount":12.5,"type":"Expense","category":"Food","date":"2025-07-01"}`
	if string(data) != want {
		t.Errorf("Marshal = %s\nwant      %s", data, want)
	}
}

func TestTransactionMarshalTimestamps(t *testing.T) {
	stamp := time.Date(2025, time.July, 1, 10, 0, 0, 0, time.UTC)
	tx := Transaction{ID: "a1", Amount: decimal.NewFromInt(1), Type: Expense, Date: MustParseDate("2025-07-01"), CreatedAt: stamp, UpdatedAt: stamp}

	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back Transaction
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(tx) {
		t.Errorf("round trip = %+v, want %+v", back, tx)
	}
}

func TestTransactionUnmarshalLegacy(t *testing.T) {
	// A record written before the type and timestamp fields existed.
	raw := `{"id":"1751375820000","description":"Lunch","amount":12.5,"category":"Food","date":"2025-07-01"}`

	var tx Transaction
	if err := json.Unmarshal([]byte(raw), &tx); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if tx.Type != Expense {
		t.Errorf("Type = %q, want %q", tx.Type, Expense)
	}
	if !tx.CreatedAt.IsZero() || !tx.UpdatedAt.IsZero() {
		t.Errorf("timestamps invented for a legacy record: %v, %v", tx.CreatedAt, tx.UpdatedAt)
	}
}
