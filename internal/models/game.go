package models

import "time"

// WeeklyTier is a threshold within the weekly challenge that grants bonus XP
// once, the first time completed lessons reach its target.
type WeeklyTier struct {
	Target   int  `json:"target"`
	RewardXP int  `json:"rewardXp"`
	Awarded  bool `json:"awarded"`
}

// WeeklyChallenge is the current week's lesson-count goal. WeekID is the
// Monday of the week as YYYY-MM-DD and acts as a partition key: when the
// wall-clock week no longer matches, the whole record is replaced with a
// fresh default (hard reset, no carry-over).
type WeeklyChallenge struct {
	WeekID    string       `json:"weekId"`
	Target    int          `json:"target"`
	Completed int          `json:"completed"`
	Tiers     []WeeklyTier `json:"tiers"`
	Done      bool         `json:"done"`
}

// DefaultWeekly returns a freshly initialized challenge for the given week.
func DefaultWeekly(weekID string) WeeklyChallenge {
	return WeeklyChallenge{
		WeekID:    weekID,
		Target:    5,
		Completed: 0,
		Tiers: []WeeklyTier{
			{Target: 3, RewardXP: 30},
			{Target: 5, RewardXP: 50},
			{Target: 7, RewardXP: 100},
		},
	}
}

// GameState holds one user's gamification record: XP, daily streak, and the
// weekly challenge. Badges and certificates live in their own tables.
type GameState struct {
	UserID    string    `gorm:"primaryKey;type:text" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	XP     int `gorm:"default:0" json:"xp"`
	Streak int `gorm:"default:0" json:"streak"`

	// UTC day id (YYYY-MM-DD) of the last active day; empty when never active
	LastActive string `json:"lastActive"`

	Weekly WeeklyChallenge `gorm:"serializer:json" json:"weekly"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (GameState) TableName() string {
	return "game_states"
}
