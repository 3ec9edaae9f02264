package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormModels "raidcrew/raidtracker/internal/models/gorm"
	"raidcrew/raidtracker/internal/logging"
)

// InitORM opens the store for driver ("sqlite" or "postgres") and migrates the schema.
func InitORM(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	if driver == "sqlite" {
		// An in-memory SQLite database exists per connection; pin the pool to one.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&gormModels.RaiderProfile{}, &gormModels.PerformanceRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	logging.Info("Connected to store via GORM", "driver", driver)
	return db, nil
}

// SQLXDriverName maps a GORM driver onto the database/sql driver name sqlx uses for bind vars.
func SQLXDriverName(driver string) string {
	if driver == "postgres" {
		return "postgres"
	}
	return "sqlite3"
}

// NewSQLX shares GORM's connection pool with sqlx for hand-written aggregate queries.
func NewSQLX(db *gorm.DB, driver string) (*sqlx.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlx.NewDb(sqlDB, SQLXDriverName(driver)), nil
}
