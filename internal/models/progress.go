package models

import "time"

// LessonProgress is one user's record for one lesson, keyed by the normalized
// composite (user, track, chapter, lesson). Created on first answer. Complete
// flips true only once every quiz question has a recorded answer and the user
// finishes the lesson; it is never unset.
type LessonProgress struct {
	UserID    string `gorm:"primaryKey;type:text" json:"userId"`
	TrackID   string `gorm:"primaryKey;type:text" json:"trackId"`
	ChapterID string `gorm:"primaryKey;type:text" json:"chapterId"`
	LessonID  string `gorm:"primaryKey;type:text" json:"lessonId"`

	Complete bool `gorm:"default:false" json:"complete"`

	// question index -> chosen choice index
	Answers map[int]int `gorm:"serializer:json" json:"answers"`

	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}
