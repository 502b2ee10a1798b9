package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/database"
	"github.com/pcrims/finpath-backend/internal/models"
	"github.com/pcrims/finpath-backend/pkg/logger"
)

type BadgeInput struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Condition   string `json:"condition" binding:"required"`
	Threshold   int    `json:"threshold" binding:"required,min=1"`
}

func validBadgeCondition(condition string) bool {
	switch condition {
	case models.BadgeCondXPEarned, models.BadgeCondStreakDays, models.BadgeCondTotalXP:
		return true
	}
	return false
}

// UpsertBadge creates or updates a badge definition. Already-unlocked user
// badges keep pointing at the definition; threshold changes only affect
// future unlocks.
func UpsertBadge(c *gin.Context) {
	var input BadgeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validBadgeCondition(input.Condition) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown badge condition"})
		return
	}

	badge := models.Badge{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Condition:   input.Condition,
		Threshold:   input.Threshold,
	}
	if err := database.DB.Save(&badge).Error; err != nil {
		logger.Error().Err(err).Str("badge_id", input.ID).Msg("Failed to save badge")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save badge"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"badge": badge})
}

// ListAllBadges returns every badge definition, including ones no user has
// unlocked yet.
func ListAllBadges(c *gin.Context) {
	var badges []models.Badge
	if err := database.DB.Order("id").Find(&badges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch badges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": badges})
}
