package db

import (
	"gorm.io/gorm"

	types "github.com/yungbote/petpal-backend/internal/domain"
)

// AutoMigrateAll creates any missing tables and columns. It never drops or
// rewrites existing data, so it is safe to run on every start.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(types.Models()...)
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto-migrating schema")
	return AutoMigrateAll(s.db)
}
