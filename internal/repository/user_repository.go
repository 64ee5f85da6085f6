package repository

import (
	"ielts_prep_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

// FindByExternalID 按身份提供方标识查找用户
func (r *UserRepository) FindByExternalID(externalID string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("external_id = ?", externalID).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// UpdateStreak 更新连续学习天数与最近学习日期
func (r *UserRepository) UpdateStreak(userID uint, currentStreak, longestStreak int, lastStudyDate time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"current_streak":  currentStreak,
			"longest_streak":  longestStreak,
			"last_study_date": lastStudyDate,
		}).Error
}

// AddStudyTime 累加学习时长（分钟）
func (r *UserRepository) AddStudyTime(userID uint, minutes int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("total_study_time", gorm.Expr("total_study_time + ?", minutes)).
		Error
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", time.Now()).
		Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).
		Error
}
