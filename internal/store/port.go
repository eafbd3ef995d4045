package store

import (
	"encoding/json"
	"io"
	"log"
	"reflect"

	"campusmart/internal/domain"
)

// Port encodes slot values as JSON on top of a SlotBackend.
type Port struct {
	backend domain.SlotBackend
	log     *log.Logger
}

// NewPort returns a Port over backend. A nil logger discards diagnostics.
func NewPort(backend domain.SlotBackend, logger *log.Logger) *Port {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Port{backend: backend, log: logger}
}

// Load decodes slot name into out and reports whether it did.
//
// Absent slots, backend errors and malformed JSON all report false; the
// latter two are logged. out is only modified on success.
func (p *Port) Load(name string, out any) bool {
	data, ok, err := p.backend.ReadSlot(name)
	if err != nil {
		p.log.Printf("slot %s: read failed, using default: %v", name, err)
		return false
	}
	if !ok || len(data) == 0 {
		return false
	}
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		p.log.Printf("slot %s: load target must be a non-nil pointer, got %T", name, out)
		return false
	}
	// Decode into a fresh value so a partial decode never leaks into out.
	fresh := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(data, fresh.Interface()); err != nil {
		p.log.Printf("slot %s: malformed data, using default: %v", name, err)
		return false
	}
	target.Elem().Set(fresh.Elem())
	return true
}

// Save encodes v and overwrites slot name.
func (p *Port) Save(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return p.backend.WriteSlot(name, b)
}

// Close closes the backend.
func (p *Port) Close() error { return p.backend.Close() }

// Compile-time assertion that Port implements domain.SlotPort.
var _ domain.SlotPort = (*Port)(nil)
