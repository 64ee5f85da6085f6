package repository

import (
	"ielts_prep_backend/internal/model"

	"gorm.io/gorm"
)

type ReadingRepository struct {
	DB *gorm.DB
}

func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{DB: db}
}

func (r *ReadingRepository) ListPublished(difficulty, category string, page, limit int) ([]model.ReadingExercise, int64, error) {
	var exercises []model.ReadingExercise
	var total int64

	query := r.DB.Model(&model.ReadingExercise{}).Where("is_published = ?", true)
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("`order` ASC, created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&exercises).Error
	return exercises, total, err
}

func (r *ReadingRepository) FindByID(id string) (*model.ReadingExercise, error) {
	var exercise model.ReadingExercise
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("question_number ASC")
	}).First(&exercise, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *ReadingRepository) Create(exercise *model.ReadingExercise) error {
	return r.DB.Create(exercise).Error
}

func (r *ReadingRepository) Update(exercise *model.ReadingExercise) error {
	return r.DB.Save(exercise).Error
}

func (r *ReadingRepository) Delete(id string) error {
	return r.DB.Select("Questions").Delete(&model.ReadingExercise{UUIDBase: model.UUIDBase{ID: id}}).Error
}
