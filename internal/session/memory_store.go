package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the fields in process memory. It is durable only for
// the lifetime of the value, which is what tests and throwaway consoles need.
type MemoryStore struct {
	mu     sync.Mutex
	fields Fields
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (Fields, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fields, nil
}

func (m *MemoryStore) Save(_ context.Context, f Fields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fields = f
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fields = Fields{}
	return nil
}
