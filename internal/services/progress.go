package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pcrims/finpath-backend/internal/models"
	"gorm.io/gorm"
)

// Per-lesson progress tracking, keyed by the normalized composite
// (user, track, chapter, lesson).

var (
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrInvalidQuestion = errors.New("question index out of range")
	ErrInvalidChoice   = errors.New("choice index out of range")
	ErrUnanswered      = errors.New("lesson has unanswered questions")
)

// findLesson resolves a catalog lesson by its composite address.
func findLesson(db *gorm.DB, trackID, chapterID, lessonID string) (*models.Lesson, error) {
	var lesson models.Lesson
	err := db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.position")
	}).First(&lesson, "id = ? AND chapter_id = ? AND track_id = ?", lessonID, chapterID, trackID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

type AnswerResult struct {
	Correct       bool   `json:"correct"`
	CorrectChoice string `json:"correctChoice"`
	Explain       string `json:"explain,omitempty"`
}

// RecordAnswer stores one answer on the lesson's progress row, creating the
// row on first answer. Answers can be revised until the lesson is finished;
// a completed lesson's answers are frozen. Returns immediate correctness
// feedback for the client.
func RecordAnswer(db *gorm.DB, userID, trackID, chapterID, lessonID string, questionIndex, choice int) (*AnswerResult, error) {
	lesson, err := findLesson(db, trackID, chapterID, lessonID)
	if err != nil {
		return nil, err
	}
	if questionIndex < 0 || questionIndex >= len(lesson.Questions) {
		return nil, ErrInvalidQuestion
	}
	question := lesson.Questions[questionIndex]
	if choice < 0 || choice >= len(question.Choices) {
		return nil, ErrInvalidChoice
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		progress, err := loadOrCreateProgress(tx, userID, trackID, chapterID, lessonID)
		if err != nil {
			return err
		}
		if progress.Complete {
			return nil // answers frozen once finished
		}
		progress.Answers[questionIndex] = choice
		return tx.Save(progress).Error
	})
	if err != nil {
		return nil, err
	}

	result := &AnswerResult{
		Correct:       choice == question.CorrectIndex,
		CorrectChoice: question.Choices[question.CorrectIndex],
	}
	if !result.Correct {
		result.Explain = question.Explain
	}
	return result, nil
}

func loadOrCreateProgress(tx *gorm.DB, userID, trackID, chapterID, lessonID string) (*models.LessonProgress, error) {
	var progress models.LessonProgress
	err := tx.First(&progress,
		"user_id = ? AND track_id = ? AND chapter_id = ? AND lesson_id = ?",
		userID, trackID, chapterID, lessonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = models.LessonProgress{
			UserID:    userID,
			TrackID:   trackID,
			ChapterID: chapterID,
			LessonID:  lessonID,
			Answers:   map[int]int{},
		}
		if err := tx.Create(&progress).Error; err != nil {
			return nil, err
		}
		return &progress, nil
	}
	if err != nil {
		return nil, err
	}
	if progress.Answers == nil {
		progress.Answers = map[int]int{}
	}
	return &progress, nil
}

type CompletionResult struct {
	AlreadyComplete bool `json:"alreadyComplete"`
	CorrectCount    int  `json:"correct"`
	Total           int  `json:"total"`
	ScorePct        int  `json:"scorePct"`
	XPAwarded       int  `json:"xpAwarded"`

	State     *models.GameState `json:"game"`
	NewBadges []models.Badge    `json:"newBadges,omitempty"`
}

// CompleteLesson finishes a lesson. Every quiz question must have a recorded
// answer; correctness does not matter. The first completion marks the row
// complete, awards the lesson's XP and counts it toward the weekly challenge.
// Re-finishing an already complete lesson just replays the score.
func CompleteLesson(db *gorm.DB, userID, trackID, chapterID, lessonID string, now time.Time) (*CompletionResult, error) {
	lesson, err := findLesson(db, trackID, chapterID, lessonID)
	if err != nil {
		return nil, err
	}

	var progress models.LessonProgress
	if err := db.First(&progress,
		"user_id = ? AND track_id = ? AND chapter_id = ? AND lesson_id = ?",
		userID, trackID, chapterID, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnanswered
		}
		return nil, err
	}
	if !AllAnswered(lesson.Questions, progress.Answers) {
		return nil, ErrUnanswered
	}

	correct, total, pct := Score(lesson.Questions, progress.Answers)
	result := &CompletionResult{
		CorrectCount: correct,
		Total:        total,
		ScorePct:     pct,
	}

	if progress.Complete {
		result.AlreadyComplete = true
		state, err := RefreshState(db, userID, now)
		if err != nil {
			return nil, err
		}
		result.State = state
		return result, nil
	}

	// The completion mark and its rewards commit in one transaction
	err = db.Transaction(func(tx *gorm.DB) error {
		progress.Complete = true
		progress.CompletedAt = &now
		if err := tx.Save(&progress).Error; err != nil {
			return err
		}

		_, badges, err := AwardXP(tx, userID, lesson.XP, now)
		if err != nil {
			return err
		}
		state, moreBadges, err := RecordLessonComplete(tx, userID, now)
		if err != nil {
			return err
		}

		result.XPAwarded = lesson.XP
		result.State = state
		result.NewBadges = append(badges, moreBadges...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	LogActivity(db, userID, models.ActivityLessonDone, lesson.ID,
		fmt.Sprintf("completed %q (%d/%d correct)", lesson.Title, correct, total))
	return result, nil
}

// GetProgress returns every progress row for the user.
func GetProgress(db *gorm.DB, userID string) ([]models.LessonProgress, error) {
	var rows []models.LessonProgress
	err := db.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

// IsDone reports whether a single lesson is complete.
func IsDone(db *gorm.DB, userID, trackID, chapterID, lessonID string) (bool, error) {
	var progress models.LessonProgress
	err := db.Select("complete").First(&progress,
		"user_id = ? AND track_id = ? AND chapter_id = ? AND lesson_id = ?",
		userID, trackID, chapterID, lessonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return progress.Complete, nil
}

type TrackProgress struct {
	TrackID   string `json:"trackId"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Pct       int    `json:"pct"`
}

// GetTrackProgress reports completed lessons over total lessons for one
// track, as a rounded percentage. A track with zero completions is 0%.
func GetTrackProgress(db *gorm.DB, userID, trackID string) (*TrackProgress, error) {
	var total int64
	if err := db.Model(&models.Lesson{}).Where("track_id = ?", trackID).Count(&total).Error; err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrTrackNotFound
	}

	var completed int64
	if err := db.Model(&models.LessonProgress{}).
		Where("user_id = ? AND track_id = ? AND complete = ?", userID, trackID, true).
		Count(&completed).Error; err != nil {
		return nil, err
	}

	return &TrackProgress{
		TrackID:   trackID,
		Completed: int(completed),
		Total:     int(total),
		Pct:       int(math.Round(float64(completed) * 100 / float64(total))),
	}, nil
}
