package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Certificate records a passed end-of-track practice quiz. Append-only.
type Certificate struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	UserID    string    `gorm:"index;not null" json:"userId"`
	TrackID   string    `json:"trackId"`
	TrackName string    `json:"trackName"`
	ScorePct  int       `json:"scorePct"`
	EarnedAt  time.Time `json:"date"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.EarnedAt.IsZero() {
		c.EarnedAt = time.Now()
	}
	return
}
