package service

import (
	"math"

	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/repository"
	"ielts_prep_backend/internal/util"
)

// UpdateProfileRequest 个人资料更新，零值字段不修改
type UpdateProfileRequest struct {
	Name        string   `json:"name"`
	TargetScore *float64 `json:"targetScore"`
	StudyGoal   string   `json:"studyGoal"`
}

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile 更新姓名、目标分数与备考方向
// 目标分数必须在 5.0-9.0 之间且为 0.5 的整数倍
func (s *UserService) UpdateProfile(userID uint, req *UpdateProfileRequest) (*model.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.TargetScore != nil {
		score := *req.TargetScore
		if score < 5.0 || score > 9.0 || math.Mod(score*2, 1) != 0 {
			return nil, util.NewValidationError("targetScore", "目标分数必须在 5.0-9.0 之间且为 0.5 的整数倍")
		}
		user.TargetScore = score
	}
	if req.StudyGoal != "" {
		switch model.StudyGoal(req.StudyGoal) {
		case model.GoalAcademic, model.GoalGeneral:
			user.StudyGoal = model.StudyGoal(req.StudyGoal)
		default:
			return nil, util.NewValidationError("studyGoal", "备考方向只能是 academic 或 general")
		}
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
