package services

import (
	"testing"

	"github.com/pcrims/finpath-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRecordAnswer_CorrectAnswerFeedback(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")
	seedTestCatalog(t, db)

	result, err := RecordAnswer(db, "u1", "foundations", "mindset", "why-literacy", 0, 0)
	assert.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, "Yes", result.CorrectChoice)
	assert.Empty(t, result.Explain)
}

func TestRecordAnswer_WrongAnswerStillRecorded(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")
	seedTestCatalog(t, db)

	result, err := RecordAnswer(db, "u1", "foundations", "mindset", "why-literacy", 0, 1)
	assert.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, "Yes", result.CorrectChoice)

	var progress models.LessonProgress
	err = db.First(&progress,
		"user_id = ? AND track_id = ? AND chapter_id = ? AND lesson_id = ?",
		"u1", "foundations", "mindset", "why-literacy").Error
	assert.NoError(t, err)
	assert.Equal(t, 1, progress.Answers[0])
	assert.False(t, progress.Complete)
}

func TestRecordAnswer_RevisingAnAnswer(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")
	seedTestCatalog(t, db)

	_, err := RecordAnswer(db, "u1", "foundations", "mindset", "why-literacy", 0, 1)
	assert.NoError(t, err)
	_, err = RecordAnswer(db, "u1", "foundations", "mindset", "why-literacy", 0, 0)
	assert.NoError(t, err)

	var progress models.LessonProgress
	assert.NoError(t, db.First(&progress,
		"user_id = ? AND track_id = ? AND chapter_id = ? AND lesson_id = ?",
		"u1", "foundations", "mindset", "why-literacy").Error)
	assert.Equal(t, 0, progress.Answers[0])
	assert.Len(t, progress.Answers, 1)
}

func TestRecordAnswer_ValidatesIndexes(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")
	seedTestCatalog(t, db)

	_, err := RecordAnswer(db, "u1", "foundations", "mindset", "why-literacy", 5, 0)
	assert.ErrorIs(t, err, ErrInvalidQuestion)

	_, err = RecordAnswer(db, "u1", "foundations", "mindset", "why-literacy", 0, 9)
	assert.ErrorIs(t, err, ErrInvalidChoice)

	_, err = RecordAnswer(db, "u1", "foundations", "mindset", "nope", 0, 0)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestCompleteLesson_RequiresAllAnswers(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")
	seedTestCatalog(t, db)

	_, err := RecordAnswer(db, "u1", "foundations", "mindset", "why-literacy", 0, 0)
	assert.NoError(t, err)

	_, err = CompleteLesson(db, "u1", "foundations", "mindset", "why-literacy", wednesday)
	assert.ErrorIs(t, err, ErrUnanswered)
}

func TestCompleteLesson_AwardsXPRegardlessOfScore(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")
	seedTestCatalog(t, db)

	// One right, one wrong
	_, err := RecordAnswer(db, "u1", "foundations", "mindset", "why-literacy", 0, 0)
	assert.NoError(t, err)
	_, err = RecordAnswer(db, "u1", "foundations", "mindset", "why-literacy", 1, 1)
	assert.NoError(t, err)

	result, err := CompleteLesson(db, "u1", "foundations", "mindset", "why-literacy", wednesday)
	assert.NoError(t, err)
	assert.False(t, result.AlreadyComplete)
	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 50, result.ScorePct)
	assert.Equal(t, 10, result.XPAwarded)
	assert.Equal(t, 10, result.State.XP)
	assert.Equal(t, 1, result.State.Weekly.Completed)
}

func TestCompleteLesson_NoDoubleAward(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")
	seedTestCatalog(t, db)

	_, err := RecordAnswer(db, "u1", "foundations", "mindset", "goals", 0, 0)
	assert.NoError(t, err)

	first, err := CompleteLesson(db, "u1", "foundations", "mindset", "goals", wednesday)
	assert.NoError(t, err)
	assert.Equal(t, 15, first.XPAwarded)

	second, err := CompleteLesson(db, "u1", "foundations", "mindset", "goals", wednesday)
	assert.NoError(t, err)
	assert.True(t, second.AlreadyComplete)
	assert.Equal(t, 0, second.XPAwarded)
	assert.Equal(t, 15, second.State.XP)
	assert.Equal(t, 1, second.State.Weekly.Completed)
	assert.Equal(t, 100, second.ScorePct)
}

func TestCompleteLesson_FreezesAnswers(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")
	seedTestCatalog(t, db)

	_, err := RecordAnswer(db, "u1", "foundations", "mindset", "goals", 0, 0)
	assert.NoError(t, err)
	_, err = CompleteLesson(db, "u1", "foundations", "mindset", "goals", wednesday)
	assert.NoError(t, err)

	_, err = RecordAnswer(db, "u1", "foundations", "mindset", "goals", 0, 1)
	assert.NoError(t, err)

	var progress models.LessonProgress
	assert.NoError(t, db.First(&progress,
		"user_id = ? AND track_id = ? AND chapter_id = ? AND lesson_id = ?",
		"u1", "foundations", "mindset", "goals").Error)
	assert.Equal(t, 0, progress.Answers[0])
}

func TestCompleteLesson_RollsBackWhenAwardFails(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")
	seedTestCatalog(t, db)

	_, err := RecordAnswer(db, "u1", "foundations", "mindset", "goals", 0, 0)
	assert.NoError(t, err)

	// Dropping the game state table makes the XP award fail mid-completion
	assert.NoError(t, db.Migrator().DropTable(&models.GameState{}))

	_, err = CompleteLesson(db, "u1", "foundations", "mindset", "goals", wednesday)
	assert.Error(t, err)

	var progress models.LessonProgress
	assert.NoError(t, db.First(&progress,
		"user_id = ? AND track_id = ? AND chapter_id = ? AND lesson_id = ?",
		"u1", "foundations", "mindset", "goals").Error)
	assert.False(t, progress.Complete)
	assert.Nil(t, progress.CompletedAt)
}

func TestIsDone(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")
	seedTestCatalog(t, db)

	done, err := IsDone(db, "u1", "foundations", "mindset", "goals")
	assert.NoError(t, err)
	assert.False(t, done)

	_, err = RecordAnswer(db, "u1", "foundations", "mindset", "goals", 0, 0)
	assert.NoError(t, err)
	_, err = CompleteLesson(db, "u1", "foundations", "mindset", "goals", wednesday)
	assert.NoError(t, err)

	done, err = IsDone(db, "u1", "foundations", "mindset", "goals")
	assert.NoError(t, err)
	assert.True(t, done)
}

func TestGetTrackProgress_Monotone(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")
	seedTestCatalog(t, db)

	tp, err := GetTrackProgress(db, "u1", "foundations")
	assert.NoError(t, err)
	assert.Equal(t, 0, tp.Completed)
	assert.Equal(t, 2, tp.Total)
	assert.Equal(t, 0, tp.Pct)

	_, err = RecordAnswer(db, "u1", "foundations", "mindset", "goals", 0, 0)
	assert.NoError(t, err)
	_, err = CompleteLesson(db, "u1", "foundations", "mindset", "goals", wednesday)
	assert.NoError(t, err)

	tp, err = GetTrackProgress(db, "u1", "foundations")
	assert.NoError(t, err)
	assert.Equal(t, 1, tp.Completed)
	assert.Equal(t, 50, tp.Pct)

	for _, q := range []int{0, 1} {
		_, err = RecordAnswer(db, "u1", "foundations", "mindset", "why-literacy", q, 0)
		assert.NoError(t, err)
	}
	_, err = CompleteLesson(db, "u1", "foundations", "mindset", "why-literacy", wednesday)
	assert.NoError(t, err)

	tp, err = GetTrackProgress(db, "u1", "foundations")
	assert.NoError(t, err)
	assert.Equal(t, 2, tp.Completed)
	assert.Equal(t, 100, tp.Pct)
}

func TestGetTrackProgress_UnknownTrack(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1")
	seedTestCatalog(t, db)

	_, err := GetTrackProgress(db, "u1", "ghosts")
	assert.ErrorIs(t, err, ErrTrackNotFound)
}
