package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and easy to re-import.
//
// The format is a single JSON document:
//
//	{
//	  "transactions": [ ... ],
//	  "settings": { ... },
//	  "exportedAt": "<RFC3339 timestamp>"
//	}
//
// On import "transactions" is mandatory, "settings" is optional, and
// "exportedAt" is informational only.

// ExportSnapshot writes the full persisted state (all transactions and
// the merged settings) to 'w' as an indented JSON document.
func ExportSnapshot(w io.Writer, txs *TransactionStore, settings *SettingsStore) error {
	list := txs.List()
	if list == nil {
		list = []Transaction{}
	}

	var doc jsonObjectWriter
	doc.Append("transactions", list)
	doc.Append("settings", settings.Get())
	doc.Append("exportedAt", time.Now().Format(time.RFC3339))
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal snapshot: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("cannot format snapshot: %w", err)
	}
	buf.WriteByte('\n')

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// ImportSnapshot restores state from a snapshot document. The document
// is parsed and validated before anything is written, so a malformed
// payload leaves the persisted state untouched. On success the included
// settings (if any) are merged via the settings store's merge-on-write,
// and the transaction collection is wholesale-replaced: prior
// transactions are discarded, never merged.
func ImportSnapshot(data []byte, txs *TransactionStore, settings *SettingsStore) error {
	var doc struct {
		Transactions json.RawMessage `json:"transactions"`
		Settings     *SettingsPatch  `json:"settings"`
		ExportedAt   string          `json:"exportedAt"` // informational, ignored
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("cannot parse snapshot: %w", err)
	}
	if doc.Transactions == nil {
		return fmt.Errorf("snapshot has no transactions collection")
	}
	var list []Transaction
	if err := json.Unmarshal(doc.Transactions, &list); err != nil {
		return fmt.Errorf("snapshot transactions are not a valid collection: %w", err)
	}

	// Validation passed, commit: settings first, then transactions.
	if doc.Settings != nil {
		if err := settings.Save(*doc.Settings); err != nil {
			return fmt.Errorf("cannot restore settings: %w", err)
		}
	}
	if err := txs.Replace(list); err != nil {
		return fmt.Errorf("cannot restore transactions: %w", err)
	}
	return nil
}

// Wipe deletes both persisted collections, returning the system to its
// first-run state: settings read as pure defaults and the transaction
// list reads empty.
func Wipe(s Store) error {
	if err := s.Delete(keyTransactions); err != nil {
		return err
	}
	return s.Delete(keySettings)
}
