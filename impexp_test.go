package tracker

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExportSnapshot(t *testing.T) {
	mem := NewMemoryStore()
	txs := NewTransactionStore(mem)
	settings := NewSettingsStore(mem)

	if _, err := txs.Create(Transaction{Description: "Lunch", Amount: decimal.NewFromFloat(12.5), Date: MustParseDate("2025-07-01")}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	var buf bytes.Buffer
	if err := ExportSnapshot(&buf, txs, settings); err != nil {
		t.Fatalf("ExportSnapshot: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	for _, key := range []string{"transactions", "settings", "exportedAt"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("snapshot missing %q", key)
		}
	}

	// Stable field order for human-readable diffs.
	out := buf.String()
	if !(strings.Index(out, `"transactions"`) < strings.Index(out, `"settings"`) &&
		strings.Index(out, `"settings"`) < strings.Index(out, `"exportedAt"`)) {
		t.Errorf("snapshot fields out of order:\n%s", out)
	}
}

func TestExportEmptyState(t *testing.T) {
	mem := NewMemoryStore()
	var buf bytes.Buffer
	if err := ExportSnapshot(&buf, NewTransactionStore(mem), NewSettingsStore(mem)); err != nil {
		t.Fatalf("ExportSnapshot: %v", err)
	}

	var doc struct {
		Transactions []Transaction `json:"transactions"`
		Settings     Settings      `json:"settings"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	// Empty state exports an empty collection, not null, and the full
	// default settings.
	if doc.Transactions == nil {
		t.Error("transactions exported as null")
	}
	if doc.Settings.UserName != "Student" {
		t.Errorf("settings not exported merged: %+v", doc.Settings)
	}
}

func TestImportRoundTrip(t *testing.T) {
	src := NewMemoryStore()
	srcTxs := NewTransactionStore(src)
	srcSettings := NewSettingsStore(src)

	srcTxs.Create(Transaction{Description: "Lunch", Amount: decimal.NewFromFloat(12.5), Type: Expense, Category: "Food", Date: MustParseDate("2025-07-01")})
	name := "Alice"
	srcSettings.Save(SettingsPatch{UserName: &name})

	var buf bytes.Buffer
	if err := ExportSnapshot(&buf, srcTxs, srcSettings); err != nil {
		t.Fatalf("ExportSnapshot: %v", err)
	}

	dst := NewMemoryStore()
	dstTxs := NewTransactionStore(dst)
	dstTxs.Create(Transaction{Description: "stale", Amount: decimal.NewFromInt(1), Date: MustParseDate("2025-01-01")})
	dstSettings := NewSettingsStore(dst)

	if err := ImportSnapshot(buf.Bytes(), dstTxs, dstSettings); err != nil {
		t.Fatalf("ImportSnapshot: %v", err)
	}

	// Transactions are replaced wholesale, never merged.
	list := dstTxs.List()
	if len(list) != 1 || list[0].Description != "Lunch" {
		t.Errorf("imported transactions = %+v, want the single exported record", list)
	}
	if got := dstSettings.Get(); got.UserName != "Alice" {
		t.Errorf("imported UserName = %q, want %q", got.UserName, "Alice")
	}
}

func TestImportValidatesBeforeCommit(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"garbage", "{not json"},
		{"no transactions", `{"settings":{"userName":"Eve"}}`},
		{"transactions not a collection", `{"transactions":{"a":1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := NewMemoryStore()
			txs := NewTransactionStore(mem)
			settings := NewSettingsStore(mem)
			txs.Create(Transaction{Description: "keep", Amount: decimal.NewFromInt(1), Date: MustParseDate("2025-07-01")})

			if err := ImportSnapshot([]byte(tt.data), txs, settings); err == nil {
				t.Fatal("ImportSnapshot accepted an invalid snapshot")
			}

			// Nothing may have been written.
			if list := txs.List(); len(list) != 1 || list[0].Description != "keep" {
				t.Errorf("transactions changed by a failed import: %+v", list)
			}
			if got := settings.Get(); got.UserName != "Student" {
				t.Errorf("settings changed by a failed import: %+v", got)
			}
		})
	}
}

func TestImportWithoutSettings(t *testing.T) {
	mem := NewMemoryStore()
	txs := NewTransactionStore(mem)
	settings := NewSettingsStore(mem)

	err := ImportSnapshot([]byte(`{"transactions":[]}`), txs, settings)
	if err != nil {
		t.Fatalf("ImportSnapshot: %v", err)
	}
	if got := settings.Get(); got.UserName != "Student" {
		t.Errorf("settings changed by a snapshot without settings: %+v", got)
	}
}

func TestWipe(t *testing.T) {
	mem := NewMemoryStore()
	txs := NewTransactionStore(mem)
	settings := NewSettingsStore(mem)

	txs.Create(Transaction{Description: "Lunch", Amount: decimal.NewFromInt(1), Date: MustParseDate("2025-07-01")})
	name := "Alice"
	settings.Save(SettingsPatch{UserName: &name})

	if err := Wipe(mem); err != nil {
		t.Fatalf("Wipe: %v", err)
	}

	if list := txs.List(); len(list) != 0 {
		t.Errorf("transactions survived the wipe: %+v", list)
	}
	if got := settings.Get(); got.UserName != "Student" {
		t.Errorf("settings survived the wipe: %+v", got)
	}
}
