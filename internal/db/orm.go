package db

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skywatch/milmon/internal/config"
	gormmodels "skywatch/milmon/internal/models/gorm"
)

var OrmDB *gorm.DB

// InitORM opens the alert-history database with GORM. SQLite is the
// default single-binary deployment; postgres is for shared setups.
func InitORM(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	default:
		db, err = gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	if err := db.AutoMigrate(&gormmodels.AlertEvent{}); err != nil {
		return nil, fmt.Errorf("failed to migrate alert_events: %w", err)
	}

	OrmDB = db
	log.Printf("Connected to %s via GORM", cfg.Driver)
	return db, nil
}

// WrapSQLX exposes GORM's connection pool through sqlx for the raw
// aggregate queries. driverName picks the bindvar dialect.
func WrapSQLX(db *gorm.DB, driver string) (*sqlx.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}

	name := "sqlite3"
	if driver == "postgres" {
		name = "postgres"
	}
	return sqlx.NewDb(sqlDB, name), nil
}
