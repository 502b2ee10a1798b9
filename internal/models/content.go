package models

// Content catalog: track -> chapter -> lesson -> question. Authored at build
// time, seeded by cmd/seeder, and consumed read-only at runtime.

type Track struct {
	ID       string    `gorm:"primaryKey;type:text" json:"id"`
	Name     string    `json:"name"`
	Tagline  string    `json:"tagline"`
	Position int       `json:"position"`
	Chapters []Chapter `gorm:"foreignKey:TrackID" json:"chapters,omitempty"`
}

type Chapter struct {
	ID       string   `gorm:"primaryKey;type:text" json:"id"`
	TrackID  string   `gorm:"index;not null" json:"trackId"`
	Title    string   `json:"title"`
	Position int      `json:"position"`
	Lessons  []Lesson `gorm:"foreignKey:ChapterID" json:"lessons,omitempty"`
}

type Lesson struct {
	ID        string   `gorm:"primaryKey;type:text" json:"id"`
	ChapterID string   `gorm:"index;not null" json:"chapterId"`
	TrackID   string   `gorm:"index;not null" json:"trackId"`
	Title     string   `json:"title"`
	XP        int      `json:"xp"`
	Body      []string `gorm:"serializer:json" json:"body"`
	CTA       string   `json:"cta"`
	LearnMore string   `json:"learnMore,omitempty"`
	Position  int      `json:"position"`

	Questions []Question `gorm:"foreignKey:LessonID" json:"quiz,omitempty"`
}

// Question carries an explicit answer key. The authored content marks the
// first choice correct, but reordering choices no longer breaks scoring.
type Question struct {
	ID       string   `gorm:"primaryKey;type:text" json:"id"`
	LessonID string   `gorm:"index;not null" json:"lessonId"`
	Prompt   string   `json:"text"`
	Choices  []string `gorm:"serializer:json" json:"choices"`
	Explain  string   `json:"explain,omitempty"`
	Position int      `json:"position"`

	// Never serialized to clients; scoring is server-side
	CorrectIndex int `json:"-"`
}
