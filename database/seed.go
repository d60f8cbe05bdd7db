// database/seed.go - Development bootstrap data
package database

import (
	"log"
	"time"

	"github.com/wallasazevedo60-ux/canta-liga/models"

	"gorm.io/gorm"
)

// Seed inserts the development bootstrap data: one breeder, one organizer,
// a sample bird and a sample tournament. It does nothing when any user
// already exists. Never called in production.
//
// The seed users carry plain-text passwords on purpose: they exercise the
// legacy credential branch of the auth service. Login with criador/123 or
// organizador/123.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding database...")

	breeder := models.User{
		Username: "criador",
		Password: "123",
		Name:     "João Criador",
		Role:     models.RoleBreeder,
	}
	if err := db.Create(&breeder).Error; err != nil {
		return err
	}

	organizer := models.User{
		Username: "organizador",
		Password: "123",
		Name:     "Carlos Organizador",
		Role:     models.RoleOrganizer,
	}
	if err := db.Create(&organizer).Error; err != nil {
		return err
	}

	bird := models.Bird{
		OwnerID:    breeder.ID,
		Name:       "Trovão",
		Species:    "Coleiro",
		RingNumber: "BR-12345",
		Notes:      "Canta muito de manhã.",
		PhotoURL:   "https://images.unsplash.com/photo-1552728089-57bdde30ebd1?w=800&q=80",
	}
	if err := db.Create(&bird).Error; err != nil {
		return err
	}

	tournament := models.Tournament{
		OrganizerID: organizer.ID,
		Name:        "Torneio Regional de Verão",
		Location:    "Ginásio Municipal",
		Date:        time.Now().Add(7 * 24 * time.Hour),
		EntryFee:    5000, // R$ 50,00
		Status:      models.StatusOpen,
		Description: "Torneio oficial da temporada. Fibra e Canto.",
	}
	if err := db.Create(&tournament).Error; err != nil {
		return err
	}

	log.Println("Seed data created")
	return nil
}
