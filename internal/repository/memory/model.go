package memory

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrMissingPrimaryKey is returned by Model.Save when values carry no primary key.
var ErrMissingPrimaryKey = errors.New("missing primary key")

// Schema describes an entity kind: its field names and which of them is the primary key.
type Schema struct {
	Fields     []string
	PrimaryKey string
}

func (s Schema) has(field string) bool {
	return slices.Contains(s.Fields, field)
}

// Model binds a Schema to a Store and provides save/get/list/delete shared by every entity kind.
// Compound operations (read-modify-write) are atomic with respect to each other.
type Model struct {
	schema Schema
	store  *Store
	mu     sync.Mutex
}

// NewModel returns a Model for schema backed by store. The primary key must be one of the fields.
func NewModel(store *Store, schema Schema) (*Model, error) {
	if !schema.has(schema.PrimaryKey) {
		return nil, fmt.Errorf("primary key %q is not a schema field", schema.PrimaryKey)
	}
	return &Model{schema: schema, store: store}, nil
}

// Save upserts values. For an existing key only the schema fields present in values and
// different from what is stored are merged; a new key gets a full record with absent fields
// set to "". Fields outside the schema are ignored. Returns the record as stored.
func (m *Model) Save(values Record) (Record, error) {
	key, ok := values[m.schema.PrimaryKey]
	if !ok {
		return nil, ErrMissingPrimaryKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := m.store.Get(key)
	switch {
	case err == nil:
		for _, field := range m.schema.Fields {
			if v, ok := values[field]; ok && data[field] != v {
				data[field] = v
			}
		}
	case errors.Is(err, ErrKeyNotFound):
		data = make(Record, len(m.schema.Fields))
		for _, field := range m.schema.Fields {
			data[field] = values[field]
		}
	default:
		return nil, err
	}
	m.store.Set(key, data)
	return m.store.Get(key)
}

// Get returns the record for key, or false when it is absent.
func (m *Model) Get(key string) (Record, bool) {
	rec, err := m.store.Get(key)
	if err != nil {
		return nil, false
	}
	return rec, true
}

// List returns every record sorted ascending by primary key.
func (m *Model) List() []Record {
	keys := m.store.Keys()
	records := make([]Record, 0, len(keys))
	for _, k := range keys {
		if rec, err := m.store.Get(k); err == nil {
			records = append(records, rec)
		}
	}
	pk := m.schema.PrimaryKey
	slices.SortFunc(records, func(a, b Record) int {
		return cmp.Compare(a[pk], b[pk])
	})
	return records
}

// Delete removes key and returns the record that existed before, or false if there was none.
func (m *Model) Delete(key string) (Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := m.store.Get(key)
	m.store.Delete(key)
	if err != nil {
		return nil, false
	}
	return rec, true
}
