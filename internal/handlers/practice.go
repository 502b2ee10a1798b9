package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/database"
	"github.com/pcrims/finpath-backend/internal/services"
)

// GetPracticeQuiz returns a track's end-of-track assessment questions.
func GetPracticeQuiz(c *gin.Context) {
	trackID := c.Param("trackId")

	questions, err := services.PracticeQuestions(database.DB, trackID)
	if err != nil {
		if errors.Is(err, services.ErrTrackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Track not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch practice quiz"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

type PracticeInput struct {
	Answers []int `json:"answers" binding:"required"`
}

// SubmitPracticeQuiz scores a practice quiz attempt. Unlike lesson
// completion, the certificate is gated on the score (>= 70%).
func SubmitPracticeQuiz(c *gin.Context) {
	userID := c.GetString("userId")
	trackID := c.Param("trackId")

	var input PracticeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.SubmitPractice(database.DB, userID, trackID, input.Answers, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrTrackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Track not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to score practice quiz"})
		return
	}

	c.JSON(http.StatusOK, result)
}
