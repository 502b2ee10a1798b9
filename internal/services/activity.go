package services

import (
	"github.com/pcrims/finpath-backend/internal/models"
	"github.com/pcrims/finpath-backend/pkg/logger"
	"gorm.io/gorm"
)

// LogActivity appends an entry to the activity feed. Best-effort: a write
// failure is logged and otherwise ignored so it never fails the operation
// that produced it.
func LogActivity(db *gorm.DB, actorID string, activityType models.ActivityType, targetID string, message string) {
	activity := models.UserActivity{
		Type:     activityType,
		ActorID:  actorID,
		TargetID: targetID,
		Message:  message,
	}

	if err := db.Create(&activity).Error; err != nil {
		logger.Error().Err(err).Str("actor_id", actorID).Msg("Failed to log activity")
	}
}

// RecentActivity returns the latest feed entries, newest first.
func RecentActivity(db *gorm.DB, activityType string, limit int) ([]models.UserActivity, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := db.Model(&models.UserActivity{}).Preload("Actor")
	if activityType != "" {
		query = query.Where("type = ?", activityType)
	}

	var activities []models.UserActivity
	err := query.Order("created_at desc").Limit(limit).Find(&activities).Error
	return activities, err
}
