package model

// MonthlyAnalytics 按自然月聚合的学习数据，(user_id, month, year) 唯一
// swagger:model MonthlyAnalytics
type MonthlyAnalytics struct {
	UUIDBase
	UserID        uint     `gorm:"not null;uniqueIndex:idx_user_month_year" json:"userId"`
	Month         int      `gorm:"not null;uniqueIndex:idx_user_month_year" json:"month"` // 1-12
	Year          int      `gorm:"not null;uniqueIndex:idx_user_month_year" json:"year"`
	ExercisesDone int      `gorm:"default:0" json:"exercisesDone"`
	StudyTime     int      `gorm:"default:0" json:"studyTime"` // 分钟
	ListeningAvg  *float64 `json:"listeningAvg"`               // 无记录时为 null
	ReadingAvg    *float64 `json:"readingAvg"`
	WritingAvg    *float64 `json:"writingAvg"`
	SpeakingAvg   *float64 `json:"speakingAvg"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (MonthlyAnalytics) TableName() string {
	return "monthly_analytics"
}
