package storage

import (
	"context"
	"sync"

	"github.com/cplinktech/storefront/internal/port"
)

// MemoryAdapter keeps values for the lifetime of the process only.
type MemoryAdapter struct {
	mu    sync.RWMutex
	store map[string][]byte
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{store: make(map[string][]byte)}
}

func (m *MemoryAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.store[key]
	if !ok {
		return nil, port.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryAdapter) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	m.store[key] = append([]byte(nil), value...)
	m.mu.Unlock()
	return nil
}

func (m *MemoryAdapter) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.store, key)
	m.mu.Unlock()
	return nil
}

var _ port.KVStore = (*MemoryAdapter)(nil)
