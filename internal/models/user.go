package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Image    string `json:"image"`

	Role Role `gorm:"type:text;default:'USER'" json:"role"`

	// Onboarding questionnaire outcome
	OnboardingCompleted bool   `gorm:"default:false" json:"onboardingCompleted"`
	RecommendedTrackID  string `json:"recommendedTrackId"`

	Password string `json:"-"`
}
