package pkg

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mentorhub/mentorship-service/internal/config"
	"github.com/mentorhub/mentorship-service/internal/models"
)

// InitDatabase opens the PostgreSQL connection and migrates the schema. Unique
// constraints live here: the store, not the service layer, is the final word
// on uniqueness.
func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := buildDSN(cfg)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Instructor{},
		&models.Session{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// buildDSN appends the configured database name when the URL does not already
// carry one.
func buildDSN(cfg *config.Config) string {
	dsn := cfg.DatabaseURL
	if cfg.DatabaseName == "" {
		return dsn
	}
	if strings.Contains(dsn, "dbname=") {
		return dsn
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return strings.TrimSuffix(dsn, "/") + "/" + cfg.DatabaseName
	}
	return dsn + " dbname=" + cfg.DatabaseName
}
