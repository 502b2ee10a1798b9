package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityType string

const (
	ActivityNewUser       ActivityType = "NEW_USER"
	ActivityLessonDone    ActivityType = "LESSON_COMPLETE"
	ActivityBadgeUnlocked ActivityType = "BADGE_UNLOCKED"
	ActivityCertificate   ActivityType = "CERTIFICATE_EARNED"
	ActivityWeeklyTier    ActivityType = "WEEKLY_TIER"
)

type UserActivity struct {
	ID        string       `gorm:"primaryKey;type:text" json:"id"`
	Type      ActivityType `gorm:"type:text;not null" json:"type"`
	ActorID   string       `gorm:"index;not null" json:"actorId"`
	Actor     User         `gorm:"foreignKey:ActorID" json:"actor"`
	TargetID  string       `gorm:"index" json:"targetId"` // lesson, badge or track id
	Message   string       `json:"message"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (UserActivity) TableName() string {
	return "user_activities"
}

func (ua *UserActivity) BeforeCreate(tx *gorm.DB) (err error) {
	if ua.ID == "" {
		ua.ID = uuid.New().String()
	}
	if ua.CreatedAt.IsZero() {
		ua.CreatedAt = time.Now()
	}
	return
}
