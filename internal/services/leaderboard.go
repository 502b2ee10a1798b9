package services

import (
	"time"

	"github.com/pcrims/finpath-backend/internal/database"
	"github.com/pcrims/finpath-backend/internal/models"
	"gorm.io/gorm"
)

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	XP       int    `json:"xp"`
	Streak   int    `json:"streak"`
}

const (
	leaderboardCacheKey = "leaderboard:xp"
	leaderboardTTL      = 30 * time.Second
)

// InvalidateLeaderboard clears the cached leaderboard (call on XP changes)
func InvalidateLeaderboard() {
	_ = database.CacheInvalidate(leaderboardCacheKey)
}

// GetLeaderboard returns the top users by XP. Served from the Redis cache
// when fresh; recomputed from game_states otherwise.
func GetLeaderboard(db *gorm.DB, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}

	var cached []LeaderboardEntry
	if err := database.CacheGet(leaderboardCacheKey, &cached); err == nil && len(cached) >= limit {
		return cached[:limit], nil
	}

	var states []models.GameState
	if err := db.Preload("User").
		Order("xp desc").
		Limit(100).
		Find(&states).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(states))
	for i, s := range states {
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			UserID:   s.UserID,
			Username: s.User.Username,
			Name:     s.User.Name,
			Avatar:   s.User.Image,
			XP:       s.XP,
			Streak:   s.Streak,
		})
	}

	_ = database.CacheSet(leaderboardCacheKey, entries, leaderboardTTL)

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
