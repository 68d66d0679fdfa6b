package tracker

import (
	"os"
	"path/filepath"
	"testing"
)

// both implementations must behave the same through the Store port.
func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"dir":    NewDirStore(t.TempDir()),
	}
}

func TestStoreReadWrite(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok := s.Read("missing"); ok {
				t.Error("Read of absent key reported existence")
			}

			if err := s.Write("k", "v1"); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if got, ok := s.Read("k"); !ok || got != "v1" {
				t.Errorf("Read = %q, %v, want %q, true", got, ok, "v1")
			}

			if err := s.Write("k", "v2"); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if got, _ := s.Read("k"); got != "v2" {
				t.Errorf("Read after overwrite = %q, want %q", got, "v2")
			}
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Delete("missing"); err != nil {
				t.Errorf("Delete of absent key failed: %v", err)
			}

			if err := s.Write("k", "v"); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if err := s.Delete("k"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, ok := s.Read("k"); ok {
				t.Error("Read after Delete reported existence")
			}
		})
	}
}

func TestDirStoreLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := NewDirStore(dir)

	// The directory is only created on the first write.
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("data directory exists before first write")
	}

	if err := s.Write("transactions", "[]"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	content, err := os.ReadFile(filepath.Join(dir, "transactions.json"))
	if err != nil {
		t.Fatalf("reading backing file: %v", err)
	}
	if string(content) != "[]" {
		t.Errorf("backing file content = %q, want %q", content, "[]")
	}
}
