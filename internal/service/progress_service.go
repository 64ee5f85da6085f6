package service

import (
	"time"

	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/repository"
	"ielts_prep_backend/pkg/logger"

	"go.uber.org/zap"
)

// ProgressService 维护连续学习天数与累计学习时长
type ProgressService struct {
	UserRepo *repository.UserRepository
}

func NewProgressService(userRepo *repository.UserRepository) *ProgressService {
	return &ProgressService{UserRepo: userRepo}
}

// RecordStudyActivity 在一次学习活动后更新打卡与学习时长
// minutes 为本次活动的时长（分钟），可以为 0
func (s *ProgressService) RecordStudyActivity(userID uint, minutes int, now time.Time) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	newStreak := NextStreak(user.CurrentStreak, user.LastStudyDate, now)
	newLongest := user.LongestStreak
	if newStreak > newLongest {
		newLongest = newStreak
	}

	if err := s.UserRepo.UpdateStreak(userID, newStreak, newLongest, now); err != nil {
		return nil, err
	}

	if minutes > 0 {
		if err := s.UserRepo.AddStudyTime(userID, minutes); err != nil {
			logger.Log.Warn("Failed to add study time",
				zap.Uint("user_id", userID),
				zap.Int("minutes", minutes),
				zap.Error(err))
		}
	}

	user.CurrentStreak = newStreak
	user.LongestStreak = newLongest
	user.LastStudyDate = &now
	return user, nil
}

// CorrectStaleStreak 读取时发现打卡已中断则归零，不重写最近学习日期
func (s *ProgressService) CorrectStaleStreak(user *model.User, now time.Time) error {
	if user.LastStudyDate == nil || user.CurrentStreak == 0 {
		return nil
	}
	if daysBetween(*user.LastStudyDate, now) < 2 {
		return nil
	}

	user.CurrentStreak = 0
	return s.UserRepo.UpdateStreak(user.ID, 0, user.LongestStreak, *user.LastStudyDate)
}
