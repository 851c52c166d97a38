// Package memory provides the process-lifetime, in-memory storage behind the invitation list.
package memory

import (
	"errors"
	"maps"
	"sync"
)

// ErrKeyNotFound is returned by Store.Get when the key is absent.
var ErrKeyNotFound = errors.New("key not found")

// Record is a stored entity: field name -> value.
type Record map[string]string

// Clone returns a copy of r that shares no memory with it.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// Store is a thread-safe map from primary key to Record.
// Records are copied on the way in and out, so callers never alias stored data.
type Store struct {
	mu   sync.RWMutex
	data map[string]Record
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{data: make(map[string]Record)}
}

// Exists reports whether a record is stored under key.
func (s *Store) Exists(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok
}

// Get returns the record stored under key or ErrKeyNotFound.
func (s *Store) Get(key string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return rec.Clone(), nil
}

// Set stores a copy of value under key, replacing any existing record.
func (s *Store) Set(key string, value Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value.Clone()
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Keys returns a snapshot of the stored keys in no particular order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
