package migrations

import "gorm.io/gorm"

// Migration002AddPerformanceIndexes adds indexes for the hot read paths:
// per-track progress percentages, certificate lists and the activity feed.
func Migration002AddPerformanceIndexes() Migration {
	return Migration{
		ID:        "002_add_performance_indexes",
		Name:      "Add performance indexes for progress and feed queries",
		DependsOn: []string{"001_backfill_weekly_defaults"},
		Up: func(db *gorm.DB) error {
			stmts := []string{
				`CREATE INDEX IF NOT EXISTS idx_lesson_progress_user_track ON lesson_progress (user_id, track_id)`,
				`CREATE INDEX IF NOT EXISTS idx_certificates_user_earned ON certificates (user_id, earned_at DESC)`,
				`CREATE INDEX IF NOT EXISTS idx_user_activities_created ON user_activities (created_at DESC)`,
			}
			for _, stmt := range stmts {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
		Down: func(db *gorm.DB) error {
			stmts := []string{
				`DROP INDEX IF EXISTS idx_lesson_progress_user_track`,
				`DROP INDEX IF EXISTS idx_certificates_user_earned`,
				`DROP INDEX IF EXISTS idx_user_activities_created`,
			}
			for _, stmt := range stmts {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
	}
}
