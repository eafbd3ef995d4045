package interfaces

// SlotBackend reads and writes named durable slots as opaque bytes.
type SlotBackend interface {
	// ReadSlot returns the stored bytes for name; ok is false if the slot was never written.
	ReadSlot(name string) (data []byte, ok bool, err error)
	// WriteSlot overwrites the slot with data.
	WriteSlot(name string, data []byte) error
	Close() error
}

// SlotPort is the typed view of a SlotBackend used by the store.
type SlotPort interface {
	// Load decodes the slot into out. It reports false, leaving out untouched,
	// when the slot is absent or cannot be decoded.
	Load(name string, out any) bool
	Save(name string, v any) error
}
