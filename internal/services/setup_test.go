package services

import (
	"testing"

	"github.com/pcrims/finpath-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite DB with the full schema and the
// system badge definitions.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Track{},
		&models.Chapter{},
		&models.Lesson{},
		&models.Question{},
		&models.GameState{},
		&models.Badge{},
		&models.UserBadge{},
		&models.Certificate{},
		&models.LessonProgress{},
		&models.UserActivity{},
	); err != nil {
		t.Fatalf("failed to migrate test DB: %v", err)
	}

	badges := []models.Badge{
		{ID: "first-steps", Name: "First Steps", Condition: models.BadgeCondXPEarned, Threshold: 1},
		{ID: "three-day-streak", Name: "3-Day Streak", Condition: models.BadgeCondStreakDays, Threshold: 3},
		{ID: "century-xp", Name: "Century XP", Condition: models.BadgeCondTotalXP, Threshold: 100},
	}
	for _, b := range badges {
		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("failed to seed badge %s: %v", b.ID, err)
		}
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	user := models.User{ID: id, Username: id, Email: id + "@example.com", Name: id}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", id, err)
	}
}

// seedTestCatalog creates one track with one chapter and two lessons
// (two questions and one question respectively).
func seedTestCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	track := models.Track{ID: "foundations", Name: "Foundations"}
	chapter := models.Chapter{ID: "mindset", TrackID: "foundations", Title: "Money Mindset"}
	lessons := []models.Lesson{
		{ID: "why-literacy", ChapterID: "mindset", TrackID: "foundations", Title: "Why Literacy", XP: 10, Position: 0,
			Body: []string{"Money skills compound."}},
		{ID: "goals", ChapterID: "mindset", TrackID: "foundations", Title: "Goals", XP: 15, Position: 1,
			Body: []string{"Use numbers and dates."}},
	}
	questions := []models.Question{
		{ID: "why-literacy-q0", LessonID: "why-literacy", Prompt: "Money skills help avoid fees.",
			Choices: []string{"Yes", "No"}, CorrectIndex: 0, Position: 0},
		{ID: "why-literacy-q1", LessonID: "why-literacy", Prompt: "Literacy only matters for high earners.",
			Choices: []string{"False", "True"}, CorrectIndex: 0, Position: 1},
		{ID: "goals-q0", LessonID: "goals", Prompt: "Which is a long-term goal?",
			Choices: []string{"Retirement", "A trip next year"}, CorrectIndex: 0, Position: 0},
	}

	for _, row := range []interface{}{&track, &chapter} {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("failed to seed catalog: %v", err)
		}
	}
	for i := range lessons {
		if err := db.Create(&lessons[i]).Error; err != nil {
			t.Fatalf("failed to seed lesson: %v", err)
		}
	}
	for i := range questions {
		if err := db.Create(&questions[i]).Error; err != nil {
			t.Fatalf("failed to seed question: %v", err)
		}
	}
}
