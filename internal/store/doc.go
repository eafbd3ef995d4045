// Package store provides the persistence port for the marketplace store.
//
// Slots are named, independently persisted snapshots of one collection each.
// Backends move opaque bytes; Port layers a JSON codec on top and never fails
// a load: an absent, unreadable or malformed slot reports false so the caller
// keeps its default.
//
// The package includes backends for:
//   - Plain JSON files, one per slot (FileBackend)
//   - Passphrase-sealed slots wrapping another backend (SealedBackend)
//   - A SQL table of slots through gorm, SQLite or PostgreSQL (SQLBackend)
//   - Process memory (MemoryBackend)
package store
