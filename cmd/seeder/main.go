package main

import (
	"log"

	"github.com/pcrims/finpath-backend/internal/config"
	"github.com/pcrims/finpath-backend/internal/database"
	"github.com/pcrims/finpath-backend/internal/models"
	"github.com/pcrims/finpath-backend/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("Running migrations (just in case)...")
	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Track{},
		&models.Chapter{},
		&models.Lesson{},
		&models.Question{},
		&models.GameState{},
		&models.Badge{},
		&models.UserBadge{},
		&models.Certificate{},
		&models.LessonProgress{},
		&models.UserActivity{},
	); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	seeds.SeedAdminUser()
	seeds.SeedBadges()
	seeds.SeedTracks()

	log.Println("Seeding complete")
}
