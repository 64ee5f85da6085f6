package model

import "encoding/json"

// ReadingExercise 阅读练习，含文章与题目
// swagger:model ReadingExercise
type ReadingExercise struct {
	UUIDBase
	Title       string            `gorm:"size:255;not null" json:"title"`
	Description string            `gorm:"type:text" json:"description"`
	Difficulty  Difficulty        `gorm:"size:20;index" json:"difficulty"`
	Category    string            `gorm:"size:20;index" json:"category"`
	Passage     string            `gorm:"type:text;not null" json:"passage"`
	WordCount   int               `json:"wordCount"`
	IsPublished bool              `gorm:"default:false;index" json:"isPublished"`
	Order       int               `gorm:"default:0" json:"order"`
	Questions   []ReadingQuestion `gorm:"foreignKey:ExerciseID" json:"questions,omitempty"`
}

func (ReadingExercise) TableName() string {
	return "reading_exercises"
}

// swagger:model ReadingQuestion
type ReadingQuestion struct {
	UUIDBase
	ExerciseID     string          `gorm:"type:varchar(36);index;not null" json:"exerciseId"`
	QuestionNumber int             `gorm:"not null" json:"questionNumber"`
	QuestionType   QuestionType    `gorm:"size:30;not null" json:"questionType"`
	QuestionText   string          `gorm:"type:text;not null" json:"questionText"`
	Options        json.RawMessage `gorm:"type:json" json:"options"`
	CorrectAnswer  string          `gorm:"type:text;not null" json:"-"`
	Explanation    string          `gorm:"type:text" json:"explanation"`
	Points         int             `gorm:"default:1" json:"points"`
}

func (ReadingQuestion) TableName() string {
	return "reading_questions"
}
