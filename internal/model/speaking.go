package model

import "encoding/json"

// SpeakingExercise 口语练习（Part 1 / 2 / 3）
// swagger:model SpeakingExercise
type SpeakingExercise struct {
	UUIDBase
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Part        int             `gorm:"not null;index" json:"part"` // 1, 2, 3
	Difficulty  Difficulty      `gorm:"size:20;index" json:"difficulty"`
	Category    string          `gorm:"size:20;index" json:"category"`
	Topic       string          `gorm:"size:100;index" json:"topic"`
	Questions   json.RawMessage `gorm:"type:json" json:"questions"`  // JSON: []string 提问列表
	CueCard     string          `gorm:"type:text" json:"cueCard"`    // Part 2 话题卡
	PrepTime    int             `gorm:"default:60" json:"prepTime"`  // 准备时间（秒）
	SpeakTime   int             `gorm:"default:120" json:"speakTime"` // 作答时间（秒）
	IsPublished bool            `gorm:"default:false;index" json:"isPublished"`
	Order       int             `gorm:"default:0" json:"order"`
}

func (SpeakingExercise) TableName() string {
	return "speaking_exercises"
}
