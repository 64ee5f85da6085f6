package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/util"
	"ielts_prep_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// normalizeAnswer 判分前的答案归一化：去首尾空白并转小写
func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// countWords 以空白分词统计单词数
func countWords(text string) int {
	return len(strings.Fields(text))
}

// minutesFromSeconds 秒转分钟，四舍五入（90 秒计 2 分钟）
func minutesFromSeconds(seconds int) int {
	return int(math.Round(float64(seconds) / 60))
}

// validateTimeSpent 作答时长必须为正数秒
func validateTimeSpent(seconds int) error {
	if seconds <= 0 {
		return util.NewValidationError("timeSpent", "作答时长必须为正数秒")
	}
	return nil
}

// validateDifficultyFilter 难度筛选白名单，空值表示不筛选
func validateDifficultyFilter(difficulty string) error {
	switch model.Difficulty(difficulty) {
	case "", model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
		return nil
	}
	return util.NewValidationError("difficulty", "难度只能是 easy、medium 或 hard")
}

// validateCategoryFilter 分类筛选白名单，空值表示不筛选
func validateCategoryFilter(category string) error {
	switch category {
	case "", model.CategoryAcademic, model.CategoryGeneral:
		return nil
	}
	return util.NewValidationError("category", "分类只能是 academic 或 general")
}

// validateTaskTypeFilter 写作任务类型筛选，0 表示不筛选
func validateTaskTypeFilter(taskType int) error {
	if taskType < 0 || taskType > 2 {
		return util.NewValidationError("taskType", "任务类型只能是 1 或 2")
	}
	return nil
}

// validatePartFilter 口语部分筛选，0 表示不筛选
func validatePartFilter(part int) error {
	if part < 0 || part > 3 {
		return util.NewValidationError("part", "口语部分只能是 1-3")
	}
	return nil
}

// recordAfterAttempt 作答落库后的打卡、月度聚合与仪表盘缓存失效
// 三者都是尽力而为：失败只记日志，不回滚已保存的作答
func recordAfterAttempt(progress *ProgressService, analytics *AnalyticsService, cache *DashboardCache, userID uint, timeSpentSeconds int, now time.Time) {
	if _, err := progress.RecordStudyActivity(userID, minutesFromSeconds(timeSpentSeconds), now); err != nil {
		logger.Log.Warn("Failed to update study streak after attempt",
			zap.Uint("user_id", userID), zap.Error(err))
	}
	if err := analytics.UpdateMonthlyAnalytics(userID, now); err != nil {
		logger.Log.Warn("Failed to update monthly analytics after attempt",
			zap.Uint("user_id", userID), zap.Error(err))
	}
	if err := cache.Invalidate(context.Background(), userID); err != nil {
		logger.Log.Warn("Failed to invalidate dashboard cache after attempt",
			zap.Uint("user_id", userID), zap.Error(err))
	}
}
