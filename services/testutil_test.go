package services

import (
	"testing"
	"time"

	"github.com/wallasazevedo60-ux/canta-liga/database"

	"github.com/stretchr/testify/require"
	moderncSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

// newTestDB opens a fresh in-memory sqlite database with the real migrations
// applied. One connection only; in-memory sqlite gives each connection its
// own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(moderncSqlite.New(moderncSqlite.Config{
		DSN:        ":memory:",
		DriverName: "sqlite",
	}), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		NowFunc:                                  func() time.Time { return time.Now().UTC() },
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.RunMigrations(db))
	return db
}
