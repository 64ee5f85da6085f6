package model

// WritingTask 写作任务（Task 1 / Task 2）
// swagger:model WritingTask
type WritingTask struct {
	UUIDBase
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	TaskType     int        `gorm:"not null;index" json:"taskType"` // 1 或 2
	Difficulty   Difficulty `gorm:"size:20;index" json:"difficulty"`
	Category     string     `gorm:"size:20;index" json:"category"`
	Prompt       string     `gorm:"type:text;not null" json:"prompt"`
	ImageURL     string     `gorm:"size:255" json:"imageUrl"` // Task 1 图表
	MinWords     int        `gorm:"default:150" json:"minWords"`
	TimeLimit    int        `gorm:"default:20" json:"timeLimit"` // 建议用时（分钟）
	SampleAnswer string     `gorm:"type:text" json:"sampleAnswer"`
	IsPublished  bool       `gorm:"default:false;index" json:"isPublished"`
	Order        int        `gorm:"default:0" json:"order"`
}

func (WritingTask) TableName() string {
	return "writing_tasks"
}
