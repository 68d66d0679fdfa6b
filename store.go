package tracker

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage keys, one per logical collection. Every collection is a single
// whole document: reads re-parse it, writes re-serialize it entirely.
const (
	keyTransactions = "transactions"
	keySettings     = "settings"
)

// Store is the persistence substrate: a flat string key-value space with
// no partial update capability. The core depends only on this narrow
// port so it can be exercised without any real storage behind it.
type Store interface {
	// Read returns the value stored under key, and whether it exists.
	Read(key string) (string, bool)
	// Write stores value under key, replacing any previous value.
	Write(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// MemoryStore is an ephemeral in-process Store.
type MemoryStore map[string]string

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() MemoryStore { return make(MemoryStore) }

func (s MemoryStore) Read(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

func (s MemoryStore) Write(key, value string) error {
	s[key] = value
	return nil
}

func (s MemoryStore) Delete(key string) error {
	delete(s, key)
	return nil
}

// DirStore persists each key as a "<key>.json" file inside a directory.
type DirStore struct {
	dir string
}

// NewDirStore creates a store rooted at dir. The directory is created on
// the first write, not here, so that read-only use never touches disk.
func NewDirStore(dir string) *DirStore { return &DirStore{dir: dir} }

func (s *DirStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *DirStore) Read(key string) (string, bool) {
	content, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(content), true
}

func (s *DirStore) Write(key, value string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}
	if err := os.WriteFile(s.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", s.path(key), err)
	}
	return nil
}

func (s *DirStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not delete %q: %w", s.path(key), err)
	}
	return nil
}
