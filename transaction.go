package tracker

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// TxType is a typed string identifying the kind of a transaction.
type TxType string

const (
	Income  TxType = "Income"
	Expense TxType = "Expense"
)

// ParseTxType parses a string into a TxType. It is case-insensitive to
// be friendly to command line input.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToLower(s) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// normalize resolves the legacy schema where the type field did not
// exist: records without a type are expenses. This is the single place
// where that migration rule lives.
func (t TxType) normalize() TxType {
	if t == "" {
		return Expense
	}
	return t
}

// Transaction is one logged financial event.
//
// The amount is always denominated in the base currency, whatever
// display currency is active; see Converter.
type Transaction struct {
	ID          string          // opaque unique identifier, assigned at creation, immutable.
	Description string          // free-text label, validated upstream.
	Amount      decimal.Decimal // non-negative, base currency, at most 2 decimal places.
	Type        TxType          // Income or Expense.
	Category    string          // free-text label, constrained upstream per type.
	Date        Date            // calendar date of the event, no time component.
	CreatedAt   time.Time       // stamped by the store on create.
	UpdatedAt   time.Time       // refreshed by the store on every write.
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
// Field order is kept stable for readable diffs of the persisted document.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("description", t.Description)
	w.Append("amount", t.Amount)
	w.Append("type", t.Type)
	w.Append("category", t.Category)
	w.Append("date", t.Date)
	w.Optional("createdAt", t.CreatedAt)
	w.Optional("updatedAt", t.UpdatedAt)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// It accepts records from older schema versions: a missing type resolves
// to Expense and missing timestamps stay zero.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          string          `json:"id"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
		Type        TxType          `json:"type"`
		Category    string          `json:"category"`
		Date        Date            `json:"date"`
		CreatedAt   time.Time       `json:"createdAt"`
		UpdatedAt   time.Time       `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	t.ID = temp.ID
	t.Description = temp.Description
	t.Amount = temp.Amount
	t.Type = temp.Type.normalize()
	t.Category = temp.Category
	t.Date = temp.Date
	t.CreatedAt = temp.CreatedAt
	t.UpdatedAt = temp.UpdatedAt
	return nil
}

// Equal reports whether two transactions carry the same data.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Type == o.Type &&
		t.Category == o.Category &&
		t.Date == o.Date &&
		t.CreatedAt.Equal(o.CreatedAt) &&
		t.UpdatedAt.Equal(o.UpdatedAt)
}

// TransactionPatch holds the fields of an update. A nil field means
// "leave unchanged": updates are a shallow merge over the stored record.
type TransactionPatch struct {
	Description *string
	Amount      *decimal.Decimal
	Type        *TxType
	Category    *string
	Date        *Date
}

// apply merges the patch over the transaction and returns the result.
func (p TransactionPatch) apply(t Transaction) Transaction {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Type != nil {
		t.Type = p.Type.normalize()
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	return t
}
