package service

import (
	"time"

	"ielts_prep_backend/internal/config"
	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/repository"
	"ielts_prep_backend/internal/util"
	"ielts_prep_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	StudyGoal string `json:"studyGoal"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ExternalLoginRequest 外部身份提供方的登录事件
type ExternalLoginRequest struct {
	ExternalID string `json:"externalId" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type AuthService struct {
	UserRepo *repository.UserRepository
	Config   *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, Config: cfg}
}

func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if _, err := s.UserRepo.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	goal := model.GoalAcademic
	if req.StudyGoal == string(model.GoalGeneral) {
		goal = model.GoalGeneral
	}

	user := &model.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      model.Student,
		StudyGoal: goal,
		LastLogin: time.Now(),
		LastSeen:  time.Now(),
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	user, err := s.UserRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, util.ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, util.ErrInvalidCredential
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		logger.Log.Warn("Failed to update last login", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	return s.issueToken(user)
}

// LoginExternal 外部身份首次登录时创建学员档案，之后登录复用
func (s *AuthService) LoginExternal(req *ExternalLoginRequest) (*AuthResponse, error) {
	user, err := s.UserRepo.FindByExternalID(req.ExternalID)
	if err != nil {
		if !isRecordNotFound(err) {
			return nil, err
		}

		user = &model.User{
			ExternalID: req.ExternalID,
			Name:       req.Name,
			Email:      req.Email,
			Role:       model.Student,
			StudyGoal:  model.GoalAcademic,
			LastLogin:  time.Now(),
			LastSeen:   time.Now(),
		}
		if err := s.UserRepo.Create(user); err != nil {
			return nil, err
		}
		logger.Log.Info("Created user from external login",
			zap.String("external_id", req.ExternalID), zap.Uint("user_id", user.ID))
	} else {
		if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
			logger.Log.Warn("Failed to update last login", zap.Uint("user_id", user.ID), zap.Error(err))
		}
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *model.User) (*AuthResponse, error) {
	token, err := util.GenerateJWT(user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: user}, nil
}
