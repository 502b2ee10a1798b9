package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/pcrims/finpath-backend/internal/models"
	"github.com/pcrims/finpath-backend/pkg/logger"
	"gorm.io/gorm"
)

// The gamification state machine. All operations load the user's GameState
// row, apply a transition, and save inside a transaction; a missing or
// partially populated row materializes as a fresh default state, so a fresh
// install and a corrupted record are indistinguishable.

var ErrInvalidWeeklyTarget = errors.New("weekly target must be 3, 5 or 7")

// loadOrCreateState fetches the user's state, creating a default row when
// none exists. The weekly challenge is normalized on every load: a missing
// week id or a stale one is replaced with a fresh default for the current
// week (hard reset, tiers unawarded, completed zero).
func loadOrCreateState(tx *gorm.DB, userID string, now time.Time) (*models.GameState, error) {
	var state models.GameState
	err := tx.First(&state, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		state = models.GameState{
			UserID: userID,
			Weekly: models.DefaultWeekly(WeekID(now)),
		}
		if err := tx.Create(&state).Error; err != nil {
			return nil, err
		}
		return &state, nil
	}
	if err != nil {
		return nil, err
	}

	if state.Weekly.WeekID != WeekID(now) {
		state.Weekly = models.DefaultWeekly(WeekID(now))
		if err := tx.Save(&state).Error; err != nil {
			return nil, err
		}
	}
	return &state, nil
}

// RefreshState runs the once-per-session-load transitions: the streak
// recompute against today/yesterday and the weekly rollover. Calling it again
// on the same day is a no-op.
func RefreshState(db *gorm.DB, userID string, now time.Time) (*models.GameState, error) {
	var state *models.GameState
	err := db.Transaction(func(tx *gorm.DB) error {
		s, err := loadOrCreateState(tx, userID, now)
		if err != nil {
			return err
		}

		today := DayID(now)
		if s.LastActive != today {
			if s.LastActive == Yesterday(now) {
				s.Streak++
			} else {
				s.Streak = 1
			}
			s.LastActive = today
			if err := tx.Save(s).Error; err != nil {
				return err
			}
		}
		state = s
		return nil
	})
	return state, err
}

// applyAward mutates state in place: adds XP, marks today active, and unlocks
// any badges whose condition is now met. Returns the newly unlocked badges.
// The caller is responsible for saving state.
func applyAward(tx *gorm.DB, state *models.GameState, amount int, now time.Time) ([]models.Badge, error) {
	state.XP += amount
	state.LastActive = DayID(now)
	return unlockEarnedBadges(tx, state, now)
}

// unlockEarnedBadges evaluates every badge definition against the user's
// current stats and inserts the missing UserBadge rows. Re-awarding a badge
// already held is a no-op.
func unlockEarnedBadges(tx *gorm.DB, state *models.GameState, now time.Time) ([]models.Badge, error) {
	var existingIDs []string
	if err := tx.Model(&models.UserBadge{}).
		Where("user_id = ?", state.UserID).
		Pluck("badge_id", &existingIDs).Error; err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	stats := map[string]int{
		models.BadgeCondXPEarned:   1, // any award qualifies
		models.BadgeCondStreakDays: state.Streak,
		models.BadgeCondTotalXP:    state.XP,
	}

	var defs []models.Badge
	if err := tx.Find(&defs).Error; err != nil {
		return nil, err
	}

	var unlocked []models.Badge
	for _, badge := range defs {
		if existing[badge.ID] {
			continue
		}
		progress, ok := stats[badge.Condition]
		if !ok || progress < badge.Threshold {
			continue
		}

		userBadge := models.UserBadge{
			UserID:     state.UserID,
			BadgeID:    badge.ID,
			UnlockedAt: now,
		}
		if err := tx.Create(&userBadge).Error; err != nil {
			return nil, err
		}
		unlocked = append(unlocked, badge)
		LogActivity(tx, state.UserID, models.ActivityBadgeUnlocked, badge.ID,
			fmt.Sprintf("unlocked the %q badge", badge.Name))
	}
	return unlocked, nil
}

// AwardXP adds XP to the user's total and unlocks any earned badges.
func AwardXP(db *gorm.DB, userID string, amount int, now time.Time) (*models.GameState, []models.Badge, error) {
	var state *models.GameState
	var unlocked []models.Badge
	err := db.Transaction(func(tx *gorm.DB) error {
		s, err := loadOrCreateState(tx, userID, now)
		if err != nil {
			return err
		}
		badges, err := applyAward(tx, s, amount, now)
		if err != nil {
			return err
		}
		if err := tx.Save(s).Error; err != nil {
			return err
		}
		state, unlocked = s, badges
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	InvalidateLeaderboard()
	return state, unlocked, nil
}

// RecordLessonComplete counts one lesson toward the weekly challenge. Every
// unawarded tier whose target is reached fires its bonus XP in the same call;
// a tier awards at most once. Once the challenge is done, further completions
// are a no-op.
func RecordLessonComplete(db *gorm.DB, userID string, now time.Time) (*models.GameState, []models.Badge, error) {
	var state *models.GameState
	var unlocked []models.Badge
	err := db.Transaction(func(tx *gorm.DB) error {
		s, err := loadOrCreateState(tx, userID, now)
		if err != nil {
			return err
		}
		if s.Weekly.Done {
			state = s
			return nil
		}

		s.Weekly.Completed++
		for i := range s.Weekly.Tiers {
			t := &s.Weekly.Tiers[i]
			if !t.Awarded && s.Weekly.Completed >= t.Target {
				t.Awarded = true
				badges, err := applyAward(tx, s, t.RewardXP, now)
				if err != nil {
					return err
				}
				unlocked = append(unlocked, badges...)
				LogActivity(tx, userID, models.ActivityWeeklyTier, s.Weekly.WeekID,
					fmt.Sprintf("hit the %d-lesson weekly tier for %d bonus XP", t.Target, t.RewardXP))
			}
		}
		s.Weekly.Done = s.Weekly.Completed >= s.Weekly.Target

		if err := tx.Save(s).Error; err != nil {
			return err
		}
		state = s
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	InvalidateLeaderboard()
	return state, unlocked, nil
}

// SetWeeklyTarget replaces the weekly goal. Changing the goal forfeits
// progress toward the old one: completed resets to zero and every tier
// resets to unawarded.
func SetWeeklyTarget(db *gorm.DB, userID string, target int, now time.Time) (*models.GameState, error) {
	if target != 3 && target != 5 && target != 7 {
		return nil, ErrInvalidWeeklyTarget
	}

	var state *models.GameState
	err := db.Transaction(func(tx *gorm.DB) error {
		s, err := loadOrCreateState(tx, userID, now)
		if err != nil {
			return err
		}
		s.Weekly.Target = target
		s.Weekly.Completed = 0
		s.Weekly.Done = false
		for i := range s.Weekly.Tiers {
			s.Weekly.Tiers[i].Awarded = false
		}
		if err := tx.Save(s).Error; err != nil {
			return err
		}
		state = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("user_id", userID).Int("target", target).Msg("weekly target changed")
	return state, nil
}

// UserBadges returns the user's unlocked badges, newest first.
func UserBadges(db *gorm.DB, userID string) ([]models.UserBadge, error) {
	var badges []models.UserBadge
	err := db.Preload("Badge").
		Where("user_id = ?", userID).
		Order("unlocked_at desc").
		Find(&badges).Error
	return badges, err
}

// UserCertificates returns the user's certificates, newest first.
func UserCertificates(db *gorm.DB, userID string) ([]models.Certificate, error) {
	var certs []models.Certificate
	err := db.Where("user_id = ?", userID).
		Order("earned_at desc").
		Find(&certs).Error
	return certs, err
}
