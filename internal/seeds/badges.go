package seeds

import (
	"log"

	"github.com/pcrims/finpath-backend/internal/database"
	"github.com/pcrims/finpath-backend/internal/models"
)

func SeedBadges() {
	log.Println("Seeding badge definitions...")

	badges := []models.Badge{
		{
			ID:          "first-steps",
			Name:        "First Steps",
			Description: "Earned your first XP.",
			Icon:        "footprints",
			Condition:   models.BadgeCondXPEarned,
			Threshold:   1,
		},
		{
			ID:          "three-day-streak",
			Name:        "3-Day Streak",
			Description: "Learned three days in a row.",
			Icon:        "flame",
			Condition:   models.BadgeCondStreakDays,
			Threshold:   3,
		},
		{
			ID:          "century-xp",
			Name:        "Century XP",
			Description: "Crossed 100 total XP.",
			Icon:        "trophy",
			Condition:   models.BadgeCondTotalXP,
			Threshold:   100,
		},
	}

	for _, badge := range badges {
		var existing models.Badge
		if err := database.DB.First(&existing, "id = ?", badge.ID).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&badge).Error; err != nil {
			log.Printf("Failed to seed badge %s: %v", badge.ID, err)
		}
	}
}
