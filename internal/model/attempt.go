package model

import "encoding/json"

// ListeningAttempt 听力作答记录
// swagger:model ListeningAttempt
type ListeningAttempt struct {
	UUIDBase
	UserID     uint            `gorm:"index;not null" json:"userId"`
	ExerciseID string          `gorm:"type:varchar(36);index;not null" json:"exerciseId"`
	Answers    json.RawMessage `gorm:"type:json" json:"answers"` // JSON: map[questionID]answer
	Score      float64         `gorm:"not null" json:"score"`    // 雅思分档 2.5-9
	Correct    int             `gorm:"not null" json:"correct"`
	Total      int             `gorm:"not null" json:"total"`
	TimeSpent  int             `gorm:"default:0" json:"timeSpent"` // 秒
	Completed  bool            `gorm:"not null" json:"completed"`

	User     User              `gorm:"foreignKey:UserID" json:"-"`
	Exercise ListeningExercise `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
}

func (ListeningAttempt) TableName() string {
	return "listening_attempts"
}

// ReadingAttempt 阅读作答记录
// swagger:model ReadingAttempt
type ReadingAttempt struct {
	UUIDBase
	UserID     uint            `gorm:"index;not null" json:"userId"`
	ExerciseID string          `gorm:"type:varchar(36);index;not null" json:"exerciseId"`
	Answers    json.RawMessage `gorm:"type:json" json:"answers"`
	Score      float64         `gorm:"not null" json:"score"`
	Correct    int             `gorm:"not null" json:"correct"`
	Total      int             `gorm:"not null" json:"total"`
	TimeSpent  int             `gorm:"default:0" json:"timeSpent"`
	Completed  bool            `gorm:"not null" json:"completed"`

	User     User            `gorm:"foreignKey:UserID" json:"-"`
	Exercise ReadingExercise `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
}

func (ReadingAttempt) TableName() string {
	return "reading_attempts"
}

// WritingAttempt 写作提交记录，Feedback 为 AI 评阅结果
// swagger:model WritingAttempt
type WritingAttempt struct {
	UUIDBase
	UserID    uint            `gorm:"index;not null" json:"userId"`
	TaskID    string          `gorm:"type:varchar(36);index;not null" json:"taskId"`
	Content   string          `gorm:"type:text;not null" json:"content"`
	WordCount int             `gorm:"not null" json:"wordCount"`
	Score     float64         `gorm:"not null" json:"score"`
	Feedback  json.RawMessage `gorm:"type:json" json:"feedback"`
	TimeSpent int             `gorm:"default:0" json:"timeSpent"`
	Completed bool            `gorm:"not null" json:"completed"`

	User User        `gorm:"foreignKey:UserID" json:"-"`
	Task WritingTask `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}

func (WritingAttempt) TableName() string {
	return "writing_attempts"
}

// SpeakingAttempt 口语提交记录，音频转写后由 AI 评阅
// swagger:model SpeakingAttempt
type SpeakingAttempt struct {
	UUIDBase
	UserID     uint            `gorm:"index;not null" json:"userId"`
	ExerciseID string          `gorm:"type:varchar(36);index;not null" json:"exerciseId"`
	AudioURL   string          `gorm:"size:255" json:"audioUrl"`
	Transcript string          `gorm:"type:text" json:"transcript"`
	Score      float64         `gorm:"not null" json:"score"`
	Feedback   json.RawMessage `gorm:"type:json" json:"feedback"`
	TimeSpent  int             `gorm:"default:0" json:"timeSpent"`
	Completed  bool            `gorm:"not null" json:"completed"`

	User     User             `gorm:"foreignKey:UserID" json:"-"`
	Exercise SpeakingExercise `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
}

func (SpeakingAttempt) TableName() string {
	return "speaking_attempts"
}
