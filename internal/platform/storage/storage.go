// Package storage is a file-backed key-value store holding the three
// application collections as JSON documents, one file per key. Whole
// values are read, replaced and re-broadcast, never partially updated.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrNotFound means the key has never been written.
	ErrNotFound = errors.New("storage: key not found")
	// ErrCorrupt means the stored value no longer decodes; callers are
	// expected to fall back to their seed data rather than fail.
	ErrCorrupt = errors.New("storage: corrupt value")
)

type Store struct {
	dir string

	mu   sync.RWMutex
	subs []func(key string)
}

// Open prepares a store rooted at dir, creating it if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get decodes the value stored under key into out.
func (s *Store) Get(key string, out any) error {
	s.mu.RLock()
	data, err := os.ReadFile(s.path(key))
	s.mu.RUnlock()

	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("storage: read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return nil
}

// Put replaces the value under key and notifies subscribers. The write
// goes through a temp file and rename so readers never observe a
// half-written document.
func (s *Store) Put(key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", key, err)
	}

	s.mu.Lock()
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("storage: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("storage: replace %s: %w", key, err)
	}
	subs := make([]func(string), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(key)
	}
	return nil
}

// Subscribe registers a callback invoked after every successful Put,
// the local analog of the storage event other browser tabs listen for.
// Ordering across keys is not guaranteed.
func (s *Store) Subscribe(fn func(key string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
