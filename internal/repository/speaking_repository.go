package repository

import (
	"ielts_prep_backend/internal/model"

	"gorm.io/gorm"
)

type SpeakingRepository struct {
	DB *gorm.DB
}

func NewSpeakingRepository(db *gorm.DB) *SpeakingRepository {
	return &SpeakingRepository{DB: db}
}

func (r *SpeakingRepository) ListPublished(part int, topic string, page, limit int) ([]model.SpeakingExercise, int64, error) {
	var exercises []model.SpeakingExercise
	var total int64

	query := r.DB.Model(&model.SpeakingExercise{}).Where("is_published = ?", true)
	if part > 0 {
		query = query.Where("part = ?", part)
	}
	if topic != "" {
		query = query.Where("topic = ?", topic)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("`order` ASC, created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&exercises).Error
	return exercises, total, err
}

func (r *SpeakingRepository) FindByID(id string) (*model.SpeakingExercise, error) {
	var exercise model.SpeakingExercise
	err := r.DB.First(&exercise, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *SpeakingRepository) Create(exercise *model.SpeakingExercise) error {
	return r.DB.Create(exercise).Error
}

func (r *SpeakingRepository) Update(exercise *model.SpeakingExercise) error {
	return r.DB.Save(exercise).Error
}

func (r *SpeakingRepository) Delete(id string) error {
	return r.DB.Delete(&model.SpeakingExercise{}, "id = ?", id).Error
}
