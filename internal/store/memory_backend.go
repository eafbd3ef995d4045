package store

import (
	"sync"

	"campusmart/internal/domain"
)

// MemoryBackend keeps slots in process memory. Used by tests and throwaway runs.
type MemoryBackend struct {
	mu    sync.Mutex
	slots map[string][]byte
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[string][]byte)}
}

// ReadSlot returns a copy of the stored bytes.
func (b *MemoryBackend) ReadSlot(name string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, ok := b.slots[name]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// WriteSlot stores a copy of data.
func (b *MemoryBackend) WriteSlot(name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.slots[name] = append([]byte(nil), data...)
	return nil
}

// Close is a no-op.
func (b *MemoryBackend) Close() error { return nil }

// Compile-time assertion that MemoryBackend implements domain.SlotBackend.
var _ domain.SlotBackend = (*MemoryBackend)(nil)
