package models

import "time"

// Badge is a system-defined achievement. Condition names the stat the badge
// is evaluated against; Threshold is the value that unlocks it.
type Badge struct {
	ID          string `gorm:"primaryKey;type:text" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"` // Name of the Lucide icon
	Condition   string `json:"condition"`
	Threshold   int    `json:"threshold"`
}

// Stat names badges can be conditioned on
const (
	BadgeCondXPEarned   = "xp_earned"
	BadgeCondStreakDays = "streak_days"
	BadgeCondTotalXP    = "total_xp"
)

type UserBadge struct {
	UserID     string    `gorm:"primaryKey;type:text" json:"userId"`
	BadgeID    string    `gorm:"primaryKey;type:text" json:"badgeId"`
	UnlockedAt time.Time `json:"unlockedAt"`

	Badge Badge `gorm:"foreignKey:BadgeID" json:"badge"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}
