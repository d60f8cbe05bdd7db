// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"github.com/wallasazevedo60-ux/canta-liga/models"

	"gorm.io/gorm"
)

// RunMigrations migrates all entities and creates indexes.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Bird{},
		&models.Training{},
		&models.Tournament{},
		&models.Enrollment{},
		&models.Session{},
	); err != nil {
		return err
	}

	createIndexes(db)

	log.Println("Migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) {
	db.Exec("CREATE INDEX IF NOT EXISTS idx_birds_owner ON birds(owner_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_trainings_bird ON trainings(bird_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_trainings_date ON trainings(date DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_tournaments_organizer ON tournaments(organizer_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_tournaments_date ON tournaments(date DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_enrollments_tournament ON enrollments(tournament_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_enrollments_bird ON enrollments(bird_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at)")
}
