package sqlite

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// New opens (or creates) an embedded sqlite database at path. This is the
// default storage backend; it keeps documents and transcripts across
// process restarts without an external server.
func New(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sqlite sql db failed: %w", err)
	}
	// Single-writer access model; more connections just contend on the file.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
