package db

import (
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/miyabidining/table-reservation-api/internal/config"
	"github.com/miyabidining/table-reservation-api/internal/models"
)

// NewDB opens the local SQLite file holding the audit trail.
func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.AuditDBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to open audit database: %v", err)
	}

	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
