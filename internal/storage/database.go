package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ericogr/boss-cards/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenAndMigrate opens the sqlite database at path, creating its directory
// when needed, and migrates the schema.
func OpenAndMigrate(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; one connection also serialises the
	// per-game transactions.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&GameRecord{}, &BossStat{}); err != nil {
		return nil, err
	}
	logging.Info("database ready", logging.Fields{"path": path})
	return db, nil
}
