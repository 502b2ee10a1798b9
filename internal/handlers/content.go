package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/database"
	"github.com/pcrims/finpath-backend/internal/models"
	"github.com/pcrims/finpath-backend/internal/services"
	"gorm.io/gorm"
)

// Content catalog endpoints. The catalog is read-only at runtime, so
// anonymous responses carry cache headers friendly to the client's offline
// service worker (cache-first with network refill). Signed-in requests get
// per-user completion flags merged in and are not publicly cacheable.

func setContentCacheHeaders(c *gin.Context, version string) {
	c.Header("Cache-Control", "public, max-age=300")
	c.Header("ETag", fmt.Sprintf(`"catalog-%s"`, version))
}

func chapterOrder(db *gorm.DB) *gorm.DB {
	return db.Order("chapters.position")
}

func lessonOrder(db *gorm.DB) *gorm.DB {
	return db.Order("lessons.position")
}

func questionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("questions.position")
}

// ListTracks returns every track with its chapters and lessons (no quiz
// bodies; those come with the lesson).
func ListTracks(c *gin.Context) {
	var tracks []models.Track
	if err := database.DB.
		Preload("Chapters", chapterOrder).
		Preload("Chapters.Lessons", lessonOrder).
		Order("position").
		Find(&tracks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tracks"})
		return
	}

	setContentCacheHeaders(c, "v1")
	c.JSON(http.StatusOK, gin.H{"tracks": tracks})
}

func GetTrack(c *gin.Context) {
	trackID := c.Param("trackId")

	var track models.Track
	if err := database.DB.
		Preload("Chapters", chapterOrder).
		Preload("Chapters.Lessons", lessonOrder).
		First(&track, "id = ?", trackID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Track not found"})
		return
	}

	userID := c.GetString("userId")
	if userID == "" {
		setContentCacheHeaders(c, "v1")
		c.JSON(http.StatusOK, gin.H{"track": track})
		return
	}

	var rows []models.LessonProgress
	if err := database.DB.
		Where("user_id = ? AND track_id = ? AND complete = ?", userID, trackID, true).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
		return
	}
	completed := make([]string, 0, len(rows))
	for _, row := range rows {
		completed = append(completed, row.LessonID)
	}

	c.Header("Cache-Control", "private, no-store")
	c.JSON(http.StatusOK, gin.H{"track": track, "completedLessons": completed})
}

// GetLesson returns one lesson with its quiz. Question answer keys are not
// serialized; correctness feedback comes from the progress endpoints.
func GetLesson(c *gin.Context) {
	trackID := c.Param("trackId")
	chapterID := c.Param("chapterId")
	lessonID := c.Param("lessonId")

	var lesson models.Lesson
	if err := database.DB.
		Preload("Questions", questionOrder).
		First(&lesson, "id = ? AND chapter_id = ? AND track_id = ?", lessonID, chapterID, trackID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}

	userID := c.GetString("userId")
	if userID == "" {
		setContentCacheHeaders(c, "v1")
		c.JSON(http.StatusOK, gin.H{"lesson": lesson})
		return
	}

	done, err := services.IsDone(database.DB, userID, trackID, chapterID, lessonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
		return
	}

	c.Header("Cache-Control", "private, no-store")
	c.JSON(http.StatusOK, gin.H{"lesson": lesson, "complete": done})
}
