// Package storage provides the key-value persistence capability used by the
// private blog. Callers receive a Storage and never touch the backing medium
// directly, so tests can swap in the in-memory implementation.
package storage

import "sync"

// Storage is a small string key-value store. Get reports whether the key was
// present. Set and Remove return an error only when the write itself fails;
// removing an absent key is not an error.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// Memory is a Storage held entirely in process memory.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an empty in-memory Storage.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
