package app

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"campusmart/internal/store"
)

// Backend names a slot storage implementation.
type Backend string

const (
	BackendFile   Backend = "file"   // one JSON file per slot under Home
	BackendSealed Backend = "sealed" // file backend encrypted with Passphrase
	BackendSQL    Backend = "sql"    // gorm table, SQLite or PostgreSQL by DSN
)

// ErrUnknownBackend is returned for a backend name outside file, sealed and sql.
var ErrUnknownBackend = errors.New("unknown backend")

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string  `env:"CAMPUSMART_HOME"`                      // data directory, e.g. $HOME/.campusmart
	Backend    Backend `env:"CAMPUSMART_BACKEND" envDefault:"file"` // file, sealed or sql
	DSN        string  `env:"CAMPUSMART_DSN"`                       // sql backend; defaults to Home/campusmart.db
	Passphrase string  `env:"CAMPUSMART_PASSPHRASE"`                // sealed backend
	Verbose    bool    `env:"CAMPUSMART_VERBOSE"`

	Logger *log.Logger `env:"-"` // optional; defaults to stderr when Verbose
}

// LoadConfig reads an optional .env file and then the CAMPUSMART_*
// environment variables.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// withDefaults fills Home, DSN and Logger and validates the backend choice.
func (c Config) withDefaults() (Config, error) {
	if c.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		c.Home = filepath.Join(dir, ".campusmart")
	}
	if c.Backend == "" {
		c.Backend = BackendFile
	}
	switch c.Backend {
	case BackendFile, BackendSQL:
	case BackendSealed:
		if c.Passphrase == "" {
			return Config{}, store.ErrPassphraseRequired
		}
	default:
		return Config{}, fmt.Errorf("%q: %w", c.Backend, ErrUnknownBackend)
	}
	if c.Backend == BackendSQL && c.DSN == "" {
		c.DSN = filepath.Join(c.Home, "campusmart.db")
	}
	if c.Logger == nil && c.Verbose {
		c.Logger = log.New(os.Stderr, "campusmart: ", log.LstdFlags)
	}
	return c, nil
}
