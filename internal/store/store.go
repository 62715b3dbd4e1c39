// Package store implements the local persistence layer on an embedded
// sqlite database. Six independent collections hold everything the user
// accumulates: favorites, shopping list, cooking sessions, ratings, notes,
// and settings. Every read-modify-write runs in a single transaction so a
// second writer against the same file cannot produce lost updates.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bitemeapp/biteme/internal/domain"
)

// Compile-time interface check.
var _ domain.Store = (*Store)(nil)

// Store is the sqlite-backed implementation of domain.Store.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// Open opens (creating if needed) the database at path and ensures all six
// collections exist. Schema changes are additive: AutoMigrate adds missing
// tables and columns and never drops anything that might hold user data.
func Open(path string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating data dir: %v", domain.ErrStorageUnavailable, err)
	}

	// The busy timeout covers the two-tab case: a concurrent writer holds
	// the file lock briefly and we wait instead of failing.
	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", domain.ErrStorageUnavailable, path, err)
	}

	if err := db.AutoMigrate(
		&domain.Favorite{},
		&domain.ShoppingItem{},
		&domain.CookingSession{},
		&domain.Rating{},
		&domain.CookingNote{},
		&domain.Setting{},
	); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, fmt.Errorf("%w: migrating schema: %v", domain.ErrStorageUnavailable, err)
	}

	log.Debug("store opened", zap.String("path", path))
	return &Store{db: db, log: log}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// nowMillis returns the current time as epoch milliseconds, the timestamp
// unit used throughout the schema.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// wrapNotFound maps gorm's record-not-found onto the domain sentinel.
func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
