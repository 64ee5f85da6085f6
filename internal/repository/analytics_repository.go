package repository

import (
	"ielts_prep_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// Upsert 写入月度聚合，(user_id, month, year) 冲突时覆盖聚合列
func (r *AnalyticsRepository) Upsert(analytics *model.MonthlyAnalytics) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"exercises_done", "study_time",
			"listening_avg", "reading_avg", "writing_avg", "speaking_avg",
			"updated_at",
		}),
	}).Create(analytics).Error
}

// FindByUserMonth 查询某用户某月的聚合记录
func (r *AnalyticsRepository) FindByUserMonth(userID uint, month, year int) (*model.MonthlyAnalytics, error) {
	var analytics model.MonthlyAnalytics
	err := r.DB.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		First(&analytics).Error
	if err != nil {
		return nil, err
	}
	return &analytics, nil
}

// ListByUserYear 查询某用户全年的聚合记录，按月份排序
func (r *AnalyticsRepository) ListByUserYear(userID uint, year int) ([]model.MonthlyAnalytics, error) {
	var records []model.MonthlyAnalytics
	err := r.DB.Where("user_id = ? AND year = ?", userID, year).
		Order("month ASC").
		Find(&records).Error
	return records, err
}
