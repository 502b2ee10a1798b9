package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pcrims/finpath-backend/internal/models"
	"gorm.io/gorm"
)

// Quiz scoring. Correctness is evaluated against each question's stored
// answer key, never against choice position.

// CertificatePassPct is the practice-quiz score that earns a certificate.
const CertificatePassPct = 70

var ErrTrackNotFound = errors.New("track not found")

// Score counts answers matching the answer key. pct is rounded to the
// nearest integer; an empty question set scores zero.
func Score(questions []models.Question, answers map[int]int) (correct, total, pct int) {
	total = len(questions)
	if total == 0 {
		return 0, 0, 0
	}
	for i, q := range questions {
		if choice, ok := answers[i]; ok && choice == q.CorrectIndex {
			correct++
		}
	}
	pct = int(math.Round(float64(correct) * 100 / float64(total)))
	return correct, total, pct
}

// AllAnswered reports whether every question has a recorded answer.
// Completion is answer-presence, not correctness.
func AllAnswered(questions []models.Question, answers map[int]int) bool {
	for i := range questions {
		if _, ok := answers[i]; !ok {
			return false
		}
	}
	return true
}

// PracticeQuestions returns a track's end-of-track assessment: every lesson
// quiz question in the track, in catalog order.
func PracticeQuestions(db *gorm.DB, trackID string) ([]models.Question, error) {
	var count int64
	if err := db.Model(&models.Track{}).Where("id = ?", trackID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrTrackNotFound
	}

	var questions []models.Question
	err := db.Joins("JOIN lessons ON lessons.id = questions.lesson_id").
		Where("lessons.track_id = ?", trackID).
		Order("lessons.position, questions.position").
		Find(&questions).Error
	return questions, err
}

type PracticeResult struct {
	TrackID     string              `json:"trackId"`
	Correct     int                 `json:"correct"`
	Total       int                 `json:"total"`
	ScorePct    int                 `json:"scorePct"`
	Passed      bool                `json:"passed"`
	Certificate *models.Certificate `json:"certificate,omitempty"`
}

// SubmitPractice scores a track's practice quiz. A score at or above
// CertificatePassPct appends a certificate; below it, nothing is recorded.
// Unlike lesson completion, the reward here is gated on the score.
func SubmitPractice(db *gorm.DB, userID, trackID string, answers []int, now time.Time) (*PracticeResult, error) {
	var track models.Track
	if err := db.First(&track, "id = ?", trackID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackNotFound
		}
		return nil, err
	}

	questions, err := PracticeQuestions(db, trackID)
	if err != nil {
		return nil, err
	}

	answerMap := make(map[int]int, len(answers))
	for i, choice := range answers {
		answerMap[i] = choice
	}
	correct, total, pct := Score(questions, answerMap)

	result := &PracticeResult{
		TrackID:  trackID,
		Correct:  correct,
		Total:    total,
		ScorePct: pct,
		Passed:   pct >= CertificatePassPct,
	}
	if !result.Passed {
		return result, nil
	}

	cert := models.Certificate{
		UserID:    userID,
		TrackID:   trackID,
		TrackName: track.Name,
		ScorePct:  pct,
		EarnedAt:  now,
	}
	if err := db.Create(&cert).Error; err != nil {
		return nil, err
	}
	result.Certificate = &cert

	LogActivity(db, userID, models.ActivityCertificate, trackID,
		fmt.Sprintf("passed the %s practice quiz with %d%%", track.Name, pct))
	return result, nil
}
