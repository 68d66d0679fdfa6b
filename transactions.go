package tracker

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TransactionStore reads and writes the persisted transaction
// collection. Every mutation is a whole-document read-modify-write:
// there is no partial update at the substrate level and no isolation
// between the read and the write, which is safe under the single-writer
// assumption (one session mutates at a time).
type TransactionStore struct {
	store Store
	now   func() time.Time
	newID func() string
}

// NewTransactionStore creates a store over the given substrate.
func NewTransactionStore(s Store) *TransactionStore {
	return &TransactionStore{
		store: s,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// List returns all persisted transactions, newest first. It never
// fails: absent or unreadable data yields an empty list, and legacy
// records are normalized on the way out (see Transaction.UnmarshalJSON).
func (s *TransactionStore) List() []Transaction {
	raw, ok := s.store.Read(keyTransactions)
	if !ok {
		return nil
	}
	var txs []Transaction
	if err := json.Unmarshal([]byte(raw), &txs); err != nil {
		return nil
	}
	return txs
}

// Get returns the transaction with the given id, if any.
func (s *TransactionStore) Get(id string) (Transaction, bool) {
	for _, tx := range s.List() {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Create persists a new transaction and returns it. An empty ID is
// replaced with a freshly generated unique one; wall-clock derived ids
// would collide under rapid creation, so ids come from a dedicated
// generator instead. CreatedAt and UpdatedAt are stamped to the same
// instant. The new record is prepended: the collection is newest-first.
func (s *TransactionStore) Create(tx Transaction) (Transaction, error) {
	if tx.ID == "" {
		tx.ID = s.newID()
	}
	tx.Type = tx.Type.normalize()
	stamp := s.now()
	tx.CreatedAt = stamp
	tx.UpdatedAt = stamp

	txs := append([]Transaction{tx}, s.List()...)
	if err := s.persist(txs); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Update merges the patch over the transaction with the given id and
// refreshes its UpdatedAt. The returned bool reports whether the id was
// found; not-found is a normal negative outcome, not an error. The
// error is reserved for substrate write failures.
func (s *TransactionStore) Update(id string, p TransactionPatch) (bool, error) {
	txs := s.List()
	for i, tx := range txs {
		if tx.ID != id {
			continue
		}
		updated := p.apply(tx)
		updated.UpdatedAt = s.now()
		txs[i] = updated
		if err := s.persist(txs); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Delete removes the transaction with the given id and reports whether
// a removal occurred. When nothing matches, nothing is written.
func (s *TransactionStore) Delete(id string) (bool, error) {
	txs := s.List()
	kept := txs[:0]
	for _, tx := range txs {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	if len(kept) == len(txs) {
		return false, nil
	}
	if err := s.persist(kept); err != nil {
		return false, err
	}
	return true, nil
}

// Replace swaps the whole persisted collection for the given one,
// discarding prior records. Used by snapshot import.
func (s *TransactionStore) Replace(txs []Transaction) error {
	for i := range txs {
		txs[i].Type = txs[i].Type.normalize()
	}
	return s.persist(txs)
}

func (s *TransactionStore) persist(txs []Transaction) error {
	if txs == nil {
		txs = []Transaction{}
	}
	data, err := json.Marshal(txs)
	if err != nil {
		return err
	}
	return s.store.Write(keyTransactions, string(data))
}
