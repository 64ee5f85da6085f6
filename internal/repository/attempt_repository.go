package repository

import (
	"fmt"
	"time"

	"ielts_prep_backend/internal/model"

	"gorm.io/gorm"
)

// ModuleStats 某一模块的作答数量与平均分
type ModuleStats struct {
	Count    int64
	AvgScore *float64 // 无记录时为 nil
	Time     int64    // time_spent 合计（秒）
}

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) CreateListening(attempt *model.ListeningAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) CreateReading(attempt *model.ReadingAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) CreateWriting(attempt *model.WritingAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) CreateSpeaking(attempt *model.SpeakingAttempt) error {
	return r.DB.Create(attempt).Error
}

// FindListeningByID 查询作答记录并校验归属用户
func (r *AttemptRepository) FindListeningByID(id string, userID uint) (*model.ListeningAttempt, error) {
	var attempt model.ListeningAttempt
	err := r.DB.Preload("Exercise").Where("id = ? AND user_id = ?", id, userID).First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *AttemptRepository) FindReadingByID(id string, userID uint) (*model.ReadingAttempt, error) {
	var attempt model.ReadingAttempt
	err := r.DB.Preload("Exercise").Where("id = ? AND user_id = ?", id, userID).First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *AttemptRepository) FindWritingByID(id string, userID uint) (*model.WritingAttempt, error) {
	var attempt model.WritingAttempt
	err := r.DB.Preload("Task").Where("id = ? AND user_id = ?", id, userID).First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *AttemptRepository) FindSpeakingByID(id string, userID uint) (*model.SpeakingAttempt, error) {
	var attempt model.SpeakingAttempt
	err := r.DB.Preload("Exercise").Where("id = ? AND user_id = ?", id, userID).First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func attemptTable(module model.ModuleType) (string, error) {
	switch module {
	case model.ModuleListening:
		return "listening_attempts", nil
	case model.ModuleReading:
		return "reading_attempts", nil
	case model.ModuleWriting:
		return "writing_attempts", nil
	case model.ModuleSpeaking:
		return "speaking_attempts", nil
	default:
		return "", fmt.Errorf("unknown module: %s", module)
	}
}

// ModuleStatsForRange 统计某模块在 [start, end) 内的作答数、平均分与总用时
func (r *AttemptRepository) ModuleStatsForRange(module model.ModuleType, userID uint, start, end time.Time) (*ModuleStats, error) {
	table, err := attemptTable(module)
	if err != nil {
		return nil, err
	}

	var row struct {
		Cnt int64
		Avg *float64
		Tm  *int64
	}
	err = r.DB.Table(table).
		Select("COUNT(*) as cnt, AVG(score) as avg, SUM(time_spent) as tm").
		Where("user_id = ? AND created_at >= ? AND created_at < ? AND deleted_at IS NULL", userID, start, end).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	stats := &ModuleStats{Count: row.Cnt, AvgScore: row.Avg}
	if row.Tm != nil {
		stats.Time = *row.Tm
	}
	return stats, nil
}

// ModuleStatsAllTime 统计某模块的历史作答数与平均分
func (r *AttemptRepository) ModuleStatsAllTime(module model.ModuleType, userID uint) (*ModuleStats, error) {
	table, err := attemptTable(module)
	if err != nil {
		return nil, err
	}

	var row struct {
		Cnt int64
		Avg *float64
		Tm  *int64
	}
	err = r.DB.Table(table).
		Select("COUNT(*) as cnt, AVG(score) as avg, SUM(time_spent) as tm").
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	stats := &ModuleStats{Count: row.Cnt, AvgScore: row.Avg}
	if row.Tm != nil {
		stats.Time = *row.Tm
	}
	return stats, nil
}

// RecentListening 最近的听力作答，含练习标题
func (r *AttemptRepository) RecentListening(userID uint, limit int) ([]model.ListeningAttempt, error) {
	var attempts []model.ListeningAttempt
	err := r.DB.Preload("Exercise").
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) RecentReading(userID uint, limit int) ([]model.ReadingAttempt, error) {
	var attempts []model.ReadingAttempt
	err := r.DB.Preload("Exercise").
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) RecentWriting(userID uint, limit int) ([]model.WritingAttempt, error) {
	var attempts []model.WritingAttempt
	err := r.DB.Preload("Task").
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) RecentSpeaking(userID uint, limit int) ([]model.SpeakingAttempt, error) {
	var attempts []model.SpeakingAttempt
	err := r.DB.Preload("Exercise").
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Find(&attempts).Error
	return attempts, err
}
