// Package store persists a single computed constellate.Fingerprint
// under an opaque key for reuse across process runs. It has no search
// or ranking operation: lookup is always by exact key.
package store

import (
	"bytes"
	"database/sql"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/constellatefp/constellate/pkg/constellate"
)

// DefaultDBFile is used when no path is configured.
const DefaultDBFile = "constellate.sqlite3"

// storedFingerprint is the persistence row: one row per saved
// Fingerprint, keyed by an opaque string.
type storedFingerprint struct {
	Key               string `gorm:"primaryKey"`
	ConfigurationJSON []byte
	PatternsBlob      []byte
	CreatedAt         time.Time
}

// Store wraps a GORM handle over a pure-Go SQLite driver.
type Store struct {
	db *gorm.DB
	sq *sql.DB
}

// Open opens (or creates) the SQLite database at path and migrates its
// schema. An empty path uses DefaultDBFile.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultDBFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: creating db dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store: opening sqlite db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("store: getting sql.DB from gorm: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&storedFingerprint{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("store: auto migrate: %w", err)
	}

	return &Store{db: db, sq: sqlDB}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.sq == nil {
		return nil
	}
	return s.sq.Close()
}

// Save persists fp under key, overwriting any existing row for that
// key. Callers generate the key (the service facade uses
// github.com/google/uuid); the store never invents one, to keep
// "upsert by key" unambiguous.
func (s *Store) Save(key string, fp *constellate.Fingerprint) error {
	if s == nil || s.db == nil {
		return errors.New("store: nil store")
	}

	cfgJSON, err := json.Marshal(fp.Configuration())
	if err != nil {
		return fmt.Errorf("store: encoding configuration: %w", err)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(fp.Entries()); err != nil {
		return fmt.Errorf("store: encoding patterns: %w", err)
	}

	row := storedFingerprint{
		Key:               key,
		ConfigurationJSON: cfgJSON,
		PatternsBlob:      buf.Bytes(),
		CreatedAt:         time.Now(),
	}

	if err := s.db.Save(&row).Error; err != nil {
		return fmt.Errorf("store: saving fingerprint: %w", err)
	}

	return nil
}

// Load retrieves the Fingerprint stored under key. ErrNotFound if no
// row exists for that key.
func (s *Store) Load(key string) (*constellate.Fingerprint, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store: nil store")
	}

	var row storedFingerprint
	err := s.db.Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: querying fingerprint: %w", err)
	}

	var cfg constellate.Configuration
	if err := json.Unmarshal(row.ConfigurationJSON, &cfg); err != nil {
		return nil, fmt.Errorf("store: decoding configuration: %w", err)
	}

	var entries []constellate.PatternEntry
	if err := gob.NewDecoder(bytes.NewReader(row.PatternsBlob)).Decode(&entries); err != nil {
		return nil, fmt.Errorf("store: decoding patterns: %w", err)
	}

	return constellate.FromEntries(cfg, entries), nil
}
