// cmd/seed - Standalone database seeding tool.
//
// Runs the same bootstrap routine the server performs on first start:
//
//	go run ./cmd/seed
package main

import (
	"log"

	"github.com/wallasazevedo60-ux/canta-liga/config"
	"github.com/wallasazevedo60-ux/canta-liga/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Init(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	if err := database.Seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Done")
}
