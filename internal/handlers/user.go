package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/database"
	"github.com/pcrims/finpath-backend/internal/models"
)

type OnboardingInput struct {
	Answers []bool `json:"answers" binding:"required"`
}

// SubmitOnboarding scores the yes/no onboarding questionnaire and records a
// recommended starting track on the user. More affirmative answers indicate
// more prior experience and recommend a later track.
func SubmitOnboarding(c *gin.Context) {
	userID := c.GetString("userId")

	var input OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score := 0
	for _, yes := range input.Answers {
		if yes {
			score++
		}
	}

	var tracks []models.Track
	if err := database.DB.Order("position").Find(&tracks).Error; err != nil || len(tracks) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tracks"})
		return
	}

	rank := 0
	switch {
	case score <= 3:
		rank = 0
	case score <= 7:
		rank = 1
	default:
		rank = 2
	}
	if rank >= len(tracks) {
		rank = len(tracks) - 1
	}
	recommended := tracks[rank]

	if err := database.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"onboarding_completed": true,
			"recommended_track_id": recommended.ID,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save onboarding result"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"score":            score,
		"recommendedTrack": recommended,
	})
}
