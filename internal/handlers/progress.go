package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/database"
	"github.com/pcrims/finpath-backend/internal/services"
)

type AnswerInput struct {
	Question int `json:"question" binding:"min=0"`
	Choice   int `json:"choice" binding:"min=0"`
}

// RecordAnswer stores one quiz answer and returns immediate correctness
// feedback.
func RecordAnswer(c *gin.Context) {
	userID := c.GetString("userId")
	trackID := c.Param("trackId")
	chapterID := c.Param("chapterId")
	lessonID := c.Param("lessonId")

	var input AnswerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.RecordAnswer(database.DB, userID, trackID, chapterID, lessonID, input.Question, input.Choice)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLessonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		case errors.Is(err, services.ErrInvalidQuestion), errors.Is(err, services.ErrInvalidChoice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record answer"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// CompleteLesson finishes a lesson once every question has an answer.
// Completion is answer-presence, not correctness: XP is awarded either way.
func CompleteLesson(c *gin.Context) {
	userID := c.GetString("userId")
	trackID := c.Param("trackId")
	chapterID := c.Param("chapterId")
	lessonID := c.Param("lessonId")

	result, err := services.CompleteLesson(database.DB, userID, trackID, chapterID, lessonID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLessonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		case errors.Is(err, services.ErrUnanswered):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Answer every question before finishing the lesson"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete lesson"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProgress returns every lesson progress row for the user
func GetProgress(c *gin.Context) {
	userID := c.GetString("userId")

	rows, err := services.GetProgress(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": rows})
}

// GetTrackProgress returns completed/total/pct for one track
func GetTrackProgress(c *gin.Context) {
	userID := c.GetString("userId")
	trackID := c.Param("trackId")

	progress, err := services.GetTrackProgress(database.DB, userID, trackID)
	if err != nil {
		if errors.Is(err, services.ErrTrackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Track not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch track progress"})
		return
	}

	c.JSON(http.StatusOK, progress)
}
