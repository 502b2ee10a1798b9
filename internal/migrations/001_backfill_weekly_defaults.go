package migrations

import (
	"time"

	"github.com/pcrims/finpath-backend/internal/models"
	"github.com/pcrims/finpath-backend/internal/services"
	"gorm.io/gorm"
)

// Migration001BackfillWeeklyDefaults repairs game state rows whose weekly
// challenge was never initialized (rows imported from clients that predate
// the weekly challenge). Earlier app versions orphaned such state on key
// bumps; here it is migrated in place instead.
func Migration001BackfillWeeklyDefaults() Migration {
	return Migration{
		ID:   "001_backfill_weekly_defaults",
		Name: "Backfill default weekly challenge on legacy game states",
		Up: func(db *gorm.DB) error {
			var states []models.GameState
			if err := db.Find(&states).Error; err != nil {
				return err
			}

			weekID := services.WeekID(time.Now())
			for i := range states {
				if states[i].Weekly.WeekID != "" && len(states[i].Weekly.Tiers) > 0 {
					continue
				}
				states[i].Weekly = models.DefaultWeekly(weekID)
				if err := db.Save(&states[i]).Error; err != nil {
					return err
				}
			}
			return nil
		},
		Down: func(db *gorm.DB) error {
			// Backfill only; nothing to undo
			return nil
		},
	}
}
