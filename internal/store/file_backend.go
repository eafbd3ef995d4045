package store

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"campusmart/internal/domain"
)

const slotExt = ".json"

// FileBackend persists each slot as <dir>/<slot>.json.
type FileBackend struct {
	dir string
	mu  sync.Mutex
}

// NewFileBackend returns a FileBackend rooted at dir, creating dir if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("file backend: directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("file backend: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

// ReadSlot returns the raw slot contents.
func (b *FileBackend) ReadSlot(name string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return readSlotFile(b.dir, name)
}

// WriteSlot atomically replaces the slot file.
func (b *FileBackend) WriteSlot(name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return writeSlotFile(b.dir, name, data)
}

// Close is a no-op; files are closed after every write.
func (b *FileBackend) Close() error { return nil }

// Dir returns the directory holding the slot files.
func (b *FileBackend) Dir() string { return b.dir }

// Compile-time assertion that FileBackend implements domain.SlotBackend.
var _ domain.SlotBackend = (*FileBackend)(nil)
