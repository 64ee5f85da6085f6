package service

import (
	"time"

	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/repository"
)

// AnalyticsService 维护按自然月聚合的学习数据
// 每次作答后全量重算当月各模块均分，避免增量累计造成的漂移
type AnalyticsService struct {
	AnalyticsRepo *repository.AnalyticsRepository
	AttemptRepo   *repository.AttemptRepository
}

func NewAnalyticsService(analyticsRepo *repository.AnalyticsRepository, attemptRepo *repository.AttemptRepository) *AnalyticsService {
	return &AnalyticsService{
		AnalyticsRepo: analyticsRepo,
		AttemptRepo:   attemptRepo,
	}
}

// UpdateMonthlyAnalytics 重算并写入 at 所在月份的聚合记录
func (s *AnalyticsService) UpdateMonthlyAnalytics(userID uint, at time.Time) error {
	start := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, at.Location())
	end := start.AddDate(0, 1, 0)

	analytics := &model.MonthlyAnalytics{
		UserID: userID,
		Month:  int(at.Month()),
		Year:   at.Year(),
	}

	var totalSeconds int64
	modules := []model.ModuleType{
		model.ModuleListening,
		model.ModuleReading,
		model.ModuleWriting,
		model.ModuleSpeaking,
	}
	for _, module := range modules {
		stats, err := s.AttemptRepo.ModuleStatsForRange(module, userID, start, end)
		if err != nil {
			return err
		}

		analytics.ExercisesDone += int(stats.Count)
		totalSeconds += stats.Time

		switch module {
		case model.ModuleListening:
			analytics.ListeningAvg = stats.AvgScore
		case model.ModuleReading:
			analytics.ReadingAvg = stats.AvgScore
		case model.ModuleWriting:
			analytics.WritingAvg = stats.AvgScore
		case model.ModuleSpeaking:
			analytics.SpeakingAvg = stats.AvgScore
		}
	}
	analytics.StudyTime = minutesFromSeconds(int(totalSeconds))

	return s.AnalyticsRepo.Upsert(analytics)
}

// GetMonthlyAnalytics 查询某月聚合，无记录时返回全零结构而非错误
func (s *AnalyticsService) GetMonthlyAnalytics(userID uint, month, year int) (*model.MonthlyAnalytics, error) {
	analytics, err := s.AnalyticsRepo.FindByUserMonth(userID, month, year)
	if err != nil {
		if isRecordNotFound(err) {
			return &model.MonthlyAnalytics{UserID: userID, Month: month, Year: year}, nil
		}
		return nil, err
	}
	return analytics, nil
}

// GetYearlyAnalytics 查询全年各月聚合
func (s *AnalyticsService) GetYearlyAnalytics(userID uint, year int) ([]model.MonthlyAnalytics, error) {
	return s.AnalyticsRepo.ListByUserYear(userID, year)
}
