package model

import "time"

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Question is one generated multiple-choice item. Options always holds
// exactly four strings and Correct is the zero-based index into them.
// swagger:model Question
type Question struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation,omitempty"`
}

// Test is one completed attempt. Rows are written once at submission
// and never mutated. Answers is parallel to Questions; -1 marks an
// unanswered position.
// swagger:model Test
type Test struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         string     `gorm:"size:128;index;not null" json:"userId"`
	Difficulty     Difficulty `gorm:"type:enum('beginner','intermediate','advanced');not null" json:"difficulty"`
	Duration       int        `gorm:"not null" json:"duration"` // minutes
	Questions      []Question `gorm:"serializer:json;type:json;not null" json:"questions"`
	Answers        []int      `gorm:"serializer:json;type:json;not null" json:"answers"`
	Score          int        `gorm:"not null" json:"score"` // 0-100
	CorrectAnswers int        `gorm:"not null" json:"correctAnswers"`
	TotalQuestions int        `gorm:"not null" json:"totalQuestions"`
	TimeSpent      int        `gorm:"not null" json:"timeSpent"` // seconds
	CompletedAt    time.Time  `gorm:"autoCreateTime" json:"completedAt"`
}

func (Test) TableName() string {
	return "tests"
}
