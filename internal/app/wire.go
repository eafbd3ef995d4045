package app

import (
	"os"

	"campusmart/internal/domain"
	"campusmart/internal/market"
	"campusmart/internal/store"
)

// Wire bundles the backend, port and store for the CLI.
type Wire struct {
	Config  Config
	Backend domain.SlotBackend
	Port    *store.Port
	Store   *market.Store
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	backend, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}

	port := store.NewPort(backend, cfg.Logger)
	return &Wire{
		Config:  cfg,
		Backend: backend,
		Port:    port,
		Store:   market.New(port, market.WithLogger(cfg.Logger)),
	}, nil
}

// Close releases the backend.
func (w *Wire) Close() error { return w.Store.Close() }

func openBackend(cfg Config) (domain.SlotBackend, error) {
	switch cfg.Backend {
	case BackendSQL:
		return store.OpenSQLBackend(cfg.DSN, cfg.Verbose)
	case BackendSealed:
		files, err := store.NewFileBackend(cfg.Home)
		if err != nil {
			return nil, err
		}
		return store.NewSealedBackend(files, cfg.Passphrase)
	default:
		return store.NewFileBackend(cfg.Home)
	}
}
