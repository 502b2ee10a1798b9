package seeds

import (
	"log"

	"github.com/pcrims/finpath-backend/internal/database"
	"github.com/pcrims/finpath-backend/internal/models"
	"github.com/pcrims/finpath-backend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdminUser creates a fallback admin when no admin exists yet.
func SeedAdminUser() {
	var admin models.User
	if err := database.DB.Where("role = ?", models.RoleAdmin).First(&admin).Error; err == nil {
		return
	}

	log.Println("No admin found, creating fallback admin...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("ChangeMe123"), bcrypt.DefaultCost)
	admin = models.User{
		ID:       utils.GenerateID(),
		Name:     "FinPath Admin",
		Username: "admin",
		Email:    "admin@finpath.app",
		Password: string(hash),
		Role:     models.RoleAdmin,
		Image:    "https://api.dicebear.com/7.x/avataaars/svg?seed=admin",
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to create fallback admin: %v", err)
	}
}
