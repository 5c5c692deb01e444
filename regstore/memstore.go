package regstore

import (
	"strings"
	"sync"

	"github.com/mattsre/idealaunch/logutil"
)

// MemStore is an in-memory Store. State is transient and only valid for the
// lifetime of the process; tests and non-Windows builds use it in place of
// the live registry.
type MemStore struct {
	mu   sync.RWMutex
	keys map[string]map[string]string // key path -> value name -> data
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		keys: make(map[string]map[string]string),
	}
}

// EnsureKey creates the key and its ancestors if absent.
func (s *MemStore) EnsureKey(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLocked(path)
	return nil
}

// ensureLocked creates path and every ancestor. Caller must hold mu.
func (s *MemStore) ensureLocked(path string) {
	parts := strings.Split(path, `\`)
	for i := range parts {
		p := strings.Join(parts[:i+1], `\`)
		if _, exists := s.keys[p]; !exists {
			s.keys[p] = make(map[string]string)
			logutil.Debug("created in-memory key", "path", p)
		}
	}
}

// SetString writes a named value, creating the key if needed.
func (s *MemStore) SetString(path, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLocked(path)
	s.keys[path][name] = value
	return nil
}

// GetString reads a named value.
func (s *MemStore) GetString(path, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values, exists := s.keys[path]
	if !exists {
		return "", ErrNotExist
	}
	value, exists := values[name]
	if !exists {
		return "", ErrNotExist
	}
	return value, nil
}

// KeyExists reports whether the key path exists.
func (s *MemStore) KeyExists(path string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.keys[path]
	return exists, nil
}

// DeleteTree removes the key and all descendants. Absent keys are a no-op.
func (s *MemStore) DeleteTree(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := path + `\`
	for key := range s.keys {
		if key == path || strings.HasPrefix(key, prefix) {
			delete(s.keys, key)
			logutil.Debug("deleted in-memory key", "path", key)
		}
	}
	return nil
}

// Len returns the number of keys currently stored. Test helper.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}
