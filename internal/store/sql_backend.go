package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"campusmart/internal/domain"
)

// slotRecord is one persisted slot row.
type slotRecord struct {
	Name      string `gorm:"primaryKey;size:64"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (slotRecord) TableName() string { return "slots" }

// SQLBackend persists slots as rows of a single table through gorm.
type SQLBackend struct {
	db *gorm.DB
}

// OpenSQLBackend connects to dsn and migrates the slots table.
//
// PostgreSQL is used for URL DSNs (postgres://, postgresql://) and lib/pq
// key=value lists; any other DSN is treated as a SQLite path or URI.
func OpenSQLBackend(dsn string, debug bool) (*SQLBackend, error) {
	dsn = strings.Trim(strings.TrimSpace(dsn), "\"'")
	if dsn == "" {
		return nil, fmt.Errorf("sql backend: dsn is required")
	}
	logLevel := logger.Silent
	if debug {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var dialector gorm.Dialector
	if isPostgresDSN(dsn) {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}
	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("sql backend: open: %w", err)
	}
	return NewSQLBackend(db)
}

// NewSQLBackend uses an existing gorm connection and migrates the slots table.
func NewSQLBackend(db *gorm.DB) (*SQLBackend, error) {
	if db == nil {
		return nil, fmt.Errorf("sql backend: db is required")
	}
	if err := db.AutoMigrate(&slotRecord{}); err != nil {
		return nil, fmt.Errorf("sql backend: automigrate: %w", err)
	}
	return &SQLBackend{db: db}, nil
}

// ReadSlot loads the slot row.
func (b *SQLBackend) ReadSlot(name string) ([]byte, bool, error) {
	var rec slotRecord
	err := b.db.Where("name = ?", name).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec.Data, true, nil
}

// WriteSlot upserts the slot row.
func (b *SQLBackend) WriteSlot(name string, data []byte) error {
	rec := slotRecord{Name: name, Data: data, UpdatedAt: time.Now().UTC()}
	return b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
}

// Close closes the underlying connection pool.
func (b *SQLBackend) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isPostgresDSN(dsn string) bool {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return true
	}
	return strings.Contains(lower, "host=") && strings.Contains(lower, "dbname=")
}

// Compile-time assertion that SQLBackend implements domain.SlotBackend.
var _ domain.SlotBackend = (*SQLBackend)(nil)
