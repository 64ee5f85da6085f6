package model

import "encoding/json"

// ListeningExercise 听力练习，含音频与题目
// swagger:model ListeningExercise
type ListeningExercise struct {
	UUIDBase
	Title       string              `gorm:"size:255;not null" json:"title"`
	Description string              `gorm:"type:text" json:"description"`
	Difficulty  Difficulty          `gorm:"size:20;index" json:"difficulty"` // easy, medium, hard
	Category    string              `gorm:"size:20;index" json:"category"`   // academic, general
	AudioURL    string              `gorm:"size:255" json:"audioUrl"`
	Duration    int                 `json:"duration"` // 音频时长（秒）
	Transcript  string              `gorm:"type:text" json:"transcript"`
	IsPublished bool                `gorm:"default:false;index" json:"isPublished"`
	Order       int                 `gorm:"default:0" json:"order"`
	Questions   []ListeningQuestion `gorm:"foreignKey:ExerciseID" json:"questions,omitempty"`
}

func (ListeningExercise) TableName() string {
	return "listening_exercises"
}

// swagger:model ListeningQuestion
type ListeningQuestion struct {
	UUIDBase
	ExerciseID     string          `gorm:"type:varchar(36);index;not null" json:"exerciseId"`
	QuestionNumber int             `gorm:"not null" json:"questionNumber"` // 题号，从1开始
	QuestionType   QuestionType    `gorm:"size:30;not null" json:"questionType"`
	QuestionText   string          `gorm:"type:text;not null" json:"questionText"`
	Options        json.RawMessage `gorm:"type:json" json:"options"` // JSON: []string
	CorrectAnswer  string          `gorm:"type:text;not null" json:"-"`
	Explanation    string          `gorm:"type:text" json:"explanation"`
	Points         int             `gorm:"default:1" json:"points"`
}

func (ListeningQuestion) TableName() string {
	return "listening_questions"
}
