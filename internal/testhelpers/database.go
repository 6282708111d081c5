// Package testhelpers provides the in-memory database and media store used
// by unit and handler tests.
package testhelpers

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finstagram/backend/internal/database"
	"github.com/finstagram/backend/internal/storage"
)

// SetupTestDB opens an in-memory sqlite database with the full schema
// migrated. TranslateError matches the production configuration so
// duplicate-key handling behaves identically under test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A second pool connection would see a different empty :memory: DB.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// SetupTestMedia returns a disk-backed media store rooted in a temp
// directory that is removed when the test finishes.
func SetupTestMedia(t *testing.T) storage.MediaStore {
	t.Helper()

	store, err := storage.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test media store: %v", err)
	}
	return store
}
