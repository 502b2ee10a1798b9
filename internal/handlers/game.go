package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/database"
	"github.com/pcrims/finpath-backend/internal/services"
)

// GetGameState is the session-load entry point: it runs the once-per-day
// streak recompute and the weekly rollover, then returns the full
// gamification snapshot.
func GetGameState(c *gin.Context) {
	userID := c.GetString("userId")

	state, err := services.RefreshState(database.DB, userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load game state"})
		return
	}

	badges, err := services.UserBadges(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load badges"})
		return
	}

	certs, err := services.UserCertificates(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load certificates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"game":         state,
		"badges":       badges,
		"certificates": certs,
	})
}

type WeeklyTargetInput struct {
	Target int `json:"target" binding:"required"`
}

// SetWeeklyTarget changes the weekly lesson goal. Progress toward the old
// goal is forfeited.
func SetWeeklyTarget(c *gin.Context) {
	userID := c.GetString("userId")

	var input WeeklyTargetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := services.SetWeeklyTarget(database.DB, userID, input.Target, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrInvalidWeeklyTarget) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update weekly target"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": state})
}

// GetBadges returns the user's unlocked badges
func GetBadges(c *gin.Context) {
	userID := c.GetString("userId")

	badges, err := services.UserBadges(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load badges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": badges})
}

// GetCertificates returns the user's earned certificates
func GetCertificates(c *gin.Context) {
	userID := c.GetString("userId")

	certs, err := services.UserCertificates(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load certificates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"certificates": certs})
}
