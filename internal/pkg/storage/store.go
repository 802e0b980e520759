// Package storage implements the flat-file document store backing every
// collection. Each collection is a single JSON file loaded and saved in full
// on every access; there is no locking beyond a process-local mutex, which is
// acceptable because the system serves exactly one interactive local user.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection names, preserved from the original data files.
const (
	CollectionUsers        = "users"
	CollectionListings     = "annonces"
	CollectionReservations = "reservations"
	CollectionHistory      = "historiques"
	CollectionUniversities = "universites"
)

// Store is a flat-file JSON document store rooted at a data directory.
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore creates a store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Load reads an entire collection into v. A missing or empty file leaves v at
// its zero value and is not an error; corrupt JSON is.
func (s *Store) Load(collection string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(collection)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading collection %s: %w", collection, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding collection %s: %w", collection, err)
	}
	return nil
}

// Save writes an entire collection atomically via a temp file and rename.
func (s *Store) Save(collection string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", collection, err)
	}

	path := s.path(collection)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing collection %s: %w", collection, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing collection %s: %w", collection, err)
	}
	return nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
