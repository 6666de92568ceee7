// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/wholesale-catalog/internal/config"
	"github.com/javajoker/wholesale-catalog/internal/models"
)

// Initialize opens the relational backend selected by cfg.Storage.Driver.
// The returned handle is meant to live for the whole process.
func Initialize(storage config.StorageConfig, cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
	if cfg.LogLevel == "info" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	var (
		db  *gorm.DB
		err error
	)
	switch storage.Driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(storage.SQLitePath), gormConfig)
	default:
		db, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	if storage.Driver == "sqlite" {
		// every new connection to :memory: would see an empty database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)
	}

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithField("driver", db.Dialector.Name()).Info("Database connection established")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.Product{},
		&models.Category{},
		&models.Redirect{},
		&models.Inquiry{},
		&models.SampleOrder{},
		&models.AdminUser{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) error {
	// Slug uniqueness is enforced by the database, not by the read-then-write check.
	required := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_products_slug_unique ON products(slug) WHERE slug IS NOT NULL AND slug <> '' AND deleted_at IS NULL",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_slug_unique ON categories(slug) WHERE slug IS NOT NULL AND slug <> '' AND deleted_at IS NULL",
	}
	for _, index := range required {
		if err := db.Exec(index).Error; err != nil {
			return err
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_redirects_lookup ON redirects(entity_type, from_slug, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_redirects_target ON redirects(entity_type, to_slug)",
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_categories_sort ON categories(sort_order, name)",
		"CREATE INDEX IF NOT EXISTS idx_inquiries_kind_status ON inquiries(kind, status)",
		"CREATE INDEX IF NOT EXISTS idx_inquiries_created_at ON inquiries(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_sample_orders_created_at ON sample_orders(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs(resource_type, resource_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created ON audit_logs(created_at DESC)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).WithField("index", index).Warn("Failed to create index")
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}
