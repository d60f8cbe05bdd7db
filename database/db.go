// database/db.go - Database Connection (PostgreSQL, sqlite for dev/tests)
package database

import (
	"fmt"
	"log"
	"time"

	"github.com/wallasazevedo60-ux/canta-liga/config"

	"gorm.io/driver/postgres"
	moderncSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

var db *gorm.DB

// Init opens the database selected by the config and runs migrations.
func Init(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Deleting a bird intentionally leaves its trainings and enrollments
		// behind, so the schema must not enforce referential integrity.
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	var err error
	switch cfg.Driver {
	case "sqlite":
		// Pure-Go sqlite driver routed through GORM's sqlite dialect.
		db, err = gorm.Open(moderncSqlite.New(moderncSqlite.Config{
			DSN:        cfg.Path,
			DriverName: "sqlite",
		}), gormCfg)
	default:
		db, err = gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.Driver == "postgres" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Printf("Database connected (%s)", cfg.Driver)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	if db == nil {
		log.Fatal("Database not initialized. Call Init() first.")
	}
	return db
}

// CloseDB closes the database connection.
func CloseDB() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %v", err)
	}
	log.Println("Database connection closed")
	return nil
}
