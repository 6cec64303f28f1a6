// Package testutil provides shared test helpers.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"siteadmin/config"
	"siteadmin/internal/database"

	"gorm.io/gorm"
)

// TestDB opens a sqlite database in a temp dir with all models migrated.
func TestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewDB(&config.DatabaseConfig{
		Driver:          "sqlite",
		DSN:             filepath.Join(t.TempDir(), "siteadmin-test.db"),
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Hour,
	})
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
